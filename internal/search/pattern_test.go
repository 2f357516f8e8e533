package search

import (
	"regexp"
	"strings"
	"testing"
)

func TestBuildPatternEscapesSpecials(t *testing.T) {
	p := buildPattern([]string{"a.b*c(d)"}, true)
	if p == nil {
		t.Fatal("expected a pattern")
	}
	re := regexp.MustCompile(p.src)
	if !re.MatchString("xx a.b*c(d) yy") {
		t.Error("escaped pattern should match its own text")
	}
	if re.MatchString("aXbYcZdW") {
		t.Error("escaped pattern must match literally, not as regexp")
	}
}

func TestBuildPatternTrimsSurroundingWhitespace(t *testing.T) {
	p := buildPattern([]string{"  foo "}, true)
	if p == nil {
		t.Fatal("expected a pattern")
	}
	if p.src != "foo" {
		t.Errorf("src = %q, want %q", p.src, "foo")
	}
}

func TestBuildPatternAllWhitespaceShortCircuits(t *testing.T) {
	for _, lines := range [][]string{
		nil,
		{""},
		{"   "},
		{" \t", "", "  "},
	} {
		if p := buildPattern(lines, false); p != nil {
			t.Errorf("buildPattern(%q) = %q, want nil", lines, p.src)
		}
	}
}

func TestBuildPatternCollapsesWhitespaceRuns(t *testing.T) {
	p := buildPattern([]string{"foo \t bar", "baz"}, false)
	if p == nil {
		t.Fatal("expected a pattern")
	}
	want := `foo\s+bar\s+baz`
	if p.src != want {
		t.Errorf("src = %q, want %q", p.src, want)
	}
	re := regexp.MustCompile(p.src)
	for _, hay := range []string{"foo bar baz", "foo  bar\nbaz", "foo\tbar \n baz"} {
		if !re.MatchString(hay) {
			t.Errorf("pattern should match %q", hay)
		}
	}
	if re.MatchString("foobarbaz") {
		t.Error("wildcard requires at least one whitespace character")
	}
}

func TestBuildPatternStrictSpacingKeepsRuns(t *testing.T) {
	p := buildPattern([]string{"foo  bar"}, true)
	if p == nil {
		t.Fatal("expected a pattern")
	}
	re := regexp.MustCompile(p.src)
	if !re.MatchString("foo  bar") {
		t.Error("strict pattern should match identical spacing")
	}
	if re.MatchString("foo bar") {
		t.Error("strict pattern must not match different spacing")
	}
}

func TestFoldedSrcComputedOnce(t *testing.T) {
	p := buildPattern([]string{"FooBar"}, true)
	first := p.foldedSrc()
	if first != "foobar" {
		t.Errorf("foldedSrc = %q", first)
	}
	// mutate the cache to prove the second call does not recompute
	p.folded = "sentinel"
	if got := p.foldedSrc(); got != "sentinel" {
		t.Errorf("second foldedSrc = %q, want cached value", got)
	}
}

func TestFoldCasePreservesRuneCounts(t *testing.T) {
	for _, text := range []string{"ABC", "ŻÓŁW", "İstanbul", "mIxEd 123"} {
		folded := foldCase(text)
		if runeLen(folded) != runeLen(text) {
			t.Errorf("foldCase(%q) changed rune count: %q", text, folded)
		}
	}
}

func TestCollapseSpacingLeavesEscapedTextAlone(t *testing.T) {
	src := regexp.QuoteMeta(`a\sb`)
	if got := collapseSpacing(src); got != src {
		t.Errorf("collapseSpacing(%q) = %q, want unchanged", src, got)
	}
}

func TestSplitSourceNeverCutsTokens(t *testing.T) {
	// escaped specials and whitespace wildcards across chunk boundaries
	var sb strings.Builder
	for i := 0; i < 120; i++ {
		sb.WriteString(`\.`)
		sb.WriteString(whitespaceRun)
		sb.WriteString("ab")
	}
	src := sb.String()
	chunks := splitSource(src, chunkTargetSize)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	if strings.Join(chunks, "") != src {
		t.Fatal("chunks must concatenate back to the source")
	}
	for i, c := range chunks {
		if strings.HasSuffix(c, `\`) || strings.HasSuffix(c, `\s`) {
			t.Errorf("chunk %d ends inside a token: %q", i, c[len(c)-4:])
		}
		if _, err := regexp.Compile(c); err != nil {
			t.Errorf("chunk %d does not compile: %v", i, err)
		}
	}
}
