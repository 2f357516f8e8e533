package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	apppkg "github.com/kk-code-lab/selscan/internal/app"
	"github.com/kk-code-lab/selscan/internal/search"
)

func usage() {
	fmt.Fprint(os.Stderr, `selscan - highlight every occurrence of the selected text

USAGE:
    selscan [OPTIONS] FILE...

Move with arrows or hjkl. Start a selection with v (span), V (lines), or
Ctrl-V (block); every occurrence of the selected text elsewhere in the
visible windows is highlighted as you extend it. Esc drops the selection,
Tab cycles buffers, q quits.

OPTIONS:
`)
	flag.PrintDefaults()
}

func main() {
	// UTF-8 fallback keeps non-ASCII text readable on limited terminals
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	var (
		strictSpacing = flag.Bool("strict-spacing", false, "match whitespace exactly instead of collapsing runs")
		ignoreCase    = flag.String("ignore-case", "", `case-insensitive kinds: "all" or a comma-separated list like "go,txt"`)
		windows       = flag.String("windows", string(search.PolicyAllOpen), "candidate-window policy: current-buffer-only, same-kind-as-current, all-open")
		minChars      = flag.Int("min-chars", 2, "skip selections shorter than this many characters")
		maxLines      = flag.Int("max-lines", 200, "skip selections taller than this many lines")
		maxBlockWidth = flag.Int("max-block-width", 120, "skip block selections wider than this many columns")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	cfg := search.Config{
		MinSelectedChars: *minChars,
		MaxSelectedLines: *maxLines,
		StrictSpacing:    *strictSpacing,
		CaseFold:         parseCaseFold(*ignoreCase),
		MaxBlockWidth:    *maxBlockWidth,
		Policy:           search.WindowPolicy(*windows),
	}

	app, err := apppkg.New(cfg, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "selscan: %v\n", err)
		os.Exit(1)
	}
	app.Run()
}

func parseCaseFold(spec string) search.CaseFoldRule {
	spec = strings.TrimSpace(spec)
	switch spec {
	case "":
		return search.CaseFoldRule{}
	case "all":
		return search.CaseFoldRule{All: true}
	}
	kinds := make(map[string]bool)
	for _, kind := range strings.Split(spec, ",") {
		if kind = strings.TrimSpace(kind); kind != "" {
			kinds[kind] = true
		}
	}
	return search.CaseFoldRule{Kinds: kinds}
}
