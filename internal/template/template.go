// Package template holds the catalog of hand-authored site templates and the
// matcher that scores specs against it. Templates are loaded once and
// immutable for the life of the process.
package template

import (
	"strings"

	"github.com/sitesmith/sitesmith/internal/toon"
)

// Template is one immutable catalog entry. The prototype Spec is used only
// for scoring, never fully validated. Code contains {{variable}} placeholders
// declared in Variables.
type Template struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Spec        toon.Spec `yaml:"spec"`
	Code        string    `yaml:"code"`
	Variables   []string  `yaml:"variables"`
	Tags        []string  `yaml:"tags"`
}

// Library is a fixed, ordered template catalog. Order matters: ties in match
// scores resolve to the earlier entry.
type Library struct {
	templates []Template
}

// NewLibrary returns a library over the given templates. Pass Builtin() for
// the stock catalog.
func NewLibrary(templates []Template) *Library {
	return &Library{templates: templates}
}

// All returns every template in catalog order.
func (l *Library) All() []Template {
	out := make([]Template, len(l.templates))
	copy(out, l.templates)
	return out
}

// Len returns the number of templates in the catalog.
func (l *Library) Len() int { return len(l.templates) }

// ByID returns the template with the given id, or false.
func (l *Library) ByID(id string) (Template, bool) {
	for _, t := range l.templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// SearchByTags returns every template carrying at least one of the given
// tags, in catalog order. Tag comparison is case-insensitive on the query
// side; catalog tags are stored lowercase.
func (l *Library) SearchByTags(tags []string) []Template {
	var out []Template
	for _, t := range l.templates {
		if hasAnyTag(t.Tags, tags) {
			out = append(out, t)
		}
	}
	return out
}

func hasAnyTag(have, query []string) bool {
	for _, q := range query {
		q = strings.ToLower(q)
		for _, h := range have {
			if h == q {
				return true
			}
		}
	}
	return false
}
