package genai

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readFixture(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return string(b)
}

func TestExtractCode_GoldenTaggedFence(t *testing.T) {
	got := extractCode(readFixture(t, "response_tagged_fence.txt"))

	if !strings.HasPrefix(got, "export default function Page()") {
		t.Errorf("extracted code should start at the component:\n%s", got)
	}
	if strings.Contains(got, "Tailwind utility classes") {
		t.Error("prose after the fence leaked into the code")
	}
	if strings.Contains(got, "```") {
		t.Error("fence markers leaked into the code")
	}
}

func TestExtractCode_GoldenUntaggedFence(t *testing.T) {
	got := extractCode(readFixture(t, "response_untagged_fence.txt"))

	want := "export default function Page() {\n  return <main className=\"dark bg-zinc-900 text-white\">Updated</main>\n}"
	if got != want {
		t.Errorf("extracted = %q, want %q", got, want)
	}
}

func TestExtractCode_GoldenBareComponentDropsPreamble(t *testing.T) {
	// Without fences, extraction starts at the component definition; leading
	// imports are lost. Pinned so a future fix is a deliberate change.
	got := extractCode(readFixture(t, "response_bare_code.txt"))

	if !strings.HasPrefix(got, "export default function Page()") {
		t.Errorf("extracted code should start at the component:\n%s", got)
	}
	if strings.Contains(got, "import { useState }") {
		t.Error("unfenced preamble should be dropped by the tail rule")
	}
}
