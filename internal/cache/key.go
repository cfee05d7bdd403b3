// Package cache provides deterministic cache keys for notation strings and a
// read-through cache manager over a pluggable key-value store.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"sort"
	"strings"
	"time"
)

// Key prefixes, one per value class, so related keys group under a common
// namespace.
const (
	PrefixSite     = "site:"
	PrefixNotation = "toon:"
	PrefixTemplate = "template:"
	PrefixStats    = "stats:"
)

// TTLs per value class.
const (
	TTLSite     = 7 * 24 * time.Hour
	TTLNotation = 30 * 24 * time.Hour
	TTLTemplate = 90 * 24 * time.Hour
	TTLStats    = time.Hour
)

// BuildKey joins a prefix and parts into a store key.
func BuildKey(prefix string, parts ...string) string {
	return prefix + strings.Join(parts, ":")
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	sectionsRe   = regexp.MustCompile(`s:\[([^\]]+)\]`)
)

// Normalize canonicalizes a notation string for cache keying: all whitespace
// is stripped, the string is lowercased, and the entries of the first s:[...]
// group are sorted so section order does not fragment the cache.
//
// The sort splits on every comma, so a section carrying a {ly:...} qualifier
// sorts on its raw text rather than its section code. Equivalent specs that
// differ only in qualified-section order can therefore still miss each other.
// Accepted: the common case is bare section lists, and changing the rule
// would invalidate every existing key.
func Normalize(notation string) string {
	normalized := whitespaceRe.ReplaceAllString(notation, "")
	normalized = strings.ToLower(normalized)

	if m := sectionsRe.FindStringSubmatchIndex(normalized); m != nil {
		entries := strings.Split(normalized[m[2]:m[3]], ",")
		sort.Strings(entries)
		normalized = normalized[:m[2]] + strings.Join(entries, ",") + normalized[m[3]:]
	}

	return normalized
}

// Key derives the cache key for a notation string: normalize, sha256, keep
// the first 16 hex characters, prefix with the notation namespace.
func Key(notation string) string {
	sum := sha256.Sum256([]byte(Normalize(notation)))
	return BuildKey(PrefixNotation, hex.EncodeToString(sum[:])[:16])
}
