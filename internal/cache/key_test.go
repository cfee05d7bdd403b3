package cache

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		notation string
		want     string
	}{
		{
			name:     "strips whitespace",
			notation: "lp { st:min | s:[h, f] }",
			want:     "lp{st:min|s:[f,h]}",
		},
		{
			name:     "lowercases",
			notation: "LP{ST:MIN}",
			want:     "lp{st:min}",
		},
		{
			name:     "sorts sections",
			notation: "lp{s:[h,f,ct]}",
			want:     "lp{s:[ct,f,h]}",
		},
		{
			name:     "no sections group untouched",
			notation: "lp{st:min}",
			want:     "lp{st:min}",
		},
		{
			name:     "qualified sections sort on raw text",
			notation: "lp{s:[h{ly:ctr},f{ly:gr3}]}",
			want:     "lp{s:[f{ly:gr3},h{ly:ctr}]}",
		},
		{
			name:     "colors group is not sorted",
			notation: "lp{s:[h,f]|c:[wht,blu]}",
			want:     "lp{s:[f,h]|c:[wht,blu]}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.notation); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.notation, got, tt.want)
			}
		})
	}
}

func TestKeyInsensitiveToCaseAndOrder(t *testing.T) {
	a := Key("lp{s:[h,f,ct]}")
	b := Key("LP{ S:[ CT, F, H ] }")
	if a != b {
		t.Errorf("equivalent notations keyed differently: %q vs %q", a, b)
	}
	if a != "toon:a9ab625c2cd7b850" {
		t.Errorf("key = %q, want toon:a9ab625c2cd7b850", a)
	}
}

func TestKeyFormat(t *testing.T) {
	key := Key("pf{st:cre|s:[h,g,ct]}")
	if !strings.HasPrefix(key, PrefixNotation) {
		t.Fatalf("key %q missing %q prefix", key, PrefixNotation)
	}
	hash := strings.TrimPrefix(key, PrefixNotation)
	if len(hash) != 16 {
		t.Errorf("hash length = %d, want 16", len(hash))
	}
	for _, r := range hash {
		if !strings.ContainsRune("0123456789abcdef", r) {
			t.Errorf("non-hex rune %q in hash %q", r, hash)
		}
	}
}

func TestKeyDistinguishesSpecs(t *testing.T) {
	if Key("lp{s:[h,f]}") == Key("lp{s:[h,g]}") {
		t.Error("different specs produced the same key")
	}
}
