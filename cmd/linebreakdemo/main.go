// Package main provides a CLI harness for exercising the greedy line
// breaker against a scenario file describing a paragraph's text, style
// runs and line width.
//
// Usage:
//
//	linebreakdemo scenario.yaml
//	linebreakdemo scenario.toml
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/halvorsen/linebreak"
)

// styleSpec is one style run as described in a scenario file.
type styleSpec struct {
	Start              int     `yaml:"start" toml:"start"`
	End                int     `yaml:"end" toml:"end"`
	Size               float64 `yaml:"size" toml:"size"`
	LetterSpacing      float64 `yaml:"letter_spacing" toml:"letter_spacing"`
	Locale             string  `yaml:"locale" toml:"locale"`
	HyphenationAllowed bool    `yaml:"hyphenation_allowed" toml:"hyphenation_allowed"`
	WordStyle          string  `yaml:"word_style" toml:"word_style"`
}

// replacementSpec is one replacement run as described in a scenario
// file: an atomic span (e.g. an inline image) with an externally
// supplied advance.
type replacementSpec struct {
	Start   int     `yaml:"start" toml:"start"`
	End     int     `yaml:"end" toml:"end"`
	Advance float64 `yaml:"advance" toml:"advance"`
}

// scenario is the on-disk shape of a demo input file.
type scenario struct {
	Text         string            `yaml:"text" toml:"text"`
	Width        float64           `yaml:"width" toml:"width"`
	Styles       []styleSpec       `yaml:"styles" toml:"styles"`
	Replacements []replacementSpec `yaml:"replacements" toml:"replacements"`
}

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: linebreakdemo <scenario.yaml|scenario.toml>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		log.Fatalf("linebreakdemo: %v", err)
	}
}

func run(path string) error {
	sc, err := loadScenario(path)
	if err != nil {
		return fmt.Errorf("loading scenario: %w", err)
	}

	locales := linebreak.NewLocaleListCache()
	builder := linebreak.NewMeasuredTextBuilder()

	styles := sc.Styles
	if len(styles) == 0 {
		styles = []styleSpec{{Start: 0, End: len(sc.Text), Size: 16, WordStyle: "none"}}
	}
	for _, s := range styles {
		builder.AddStyleRun(s.Start, s.End, linebreak.StyleRun{
			Size:               linebreak.Advance(s.Size),
			LetterSpacing:      linebreak.Advance(s.LetterSpacing),
			LocaleListID:       locales.Intern(s.Locale),
			HyphenationAllowed: s.HyphenationAllowed,
			LineBreakWordStyle: parseWordStyle(s.WordStyle),
		})
	}
	for _, r := range sc.Replacements {
		builder.AddReplacementRun(r.Start, r.End, linebreak.Advance(r.Advance), 0)
	}

	mt, err := builder.Build(sc.Text, demoAdvancer{}, nil, linebreak.BuildFlags{})
	if err != nil {
		return fmt.Errorf("building measured text: %w", err)
	}

	result, err := linebreak.BreakLineGreedy(mt, linebreak.RectangleWidth(sc.Width), linebreak.DefaultHyphenatorMap(), locales, nil, false)
	if err != nil {
		return fmt.Errorf("breaking lines: %w", err)
	}

	for i, line := range result.Lines {
		fmt.Printf("%3d [%4.0fpx] %q\n", i, float64(line.Width), sc.Text[line.TrimmedRange.Start:line.TrimmedRange.End])
	}
	return nil
}

func loadScenario(path string) (scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return scenario{}, err
	}

	var sc scenario
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &sc)
	case ".toml":
		err = toml.Unmarshal(data, &sc)
	default:
		return scenario{}, fmt.Errorf("unsupported scenario format %q", filepath.Ext(path))
	}
	return sc, err
}

func parseWordStyle(s string) linebreak.LineBreakWordStyle {
	switch strings.ToLower(s) {
	case "phrase":
		return linebreak.LineBreakWordStylePhrase
	case "auto":
		return linebreak.LineBreakWordStyleAuto
	default:
		return linebreak.LineBreakWordStyleNone
	}
}

// demoAdvancer is a synthetic Advancer standing in for a real shaper:
// every rune advances by a fixed fraction of the run's font size, so
// the demo can run without loading actual font data.
type demoAdvancer struct{}

func (demoAdvancer) Advances(text string, run linebreak.StyleRun) []linebreak.Advance {
	seg := text[run.Range.Start:run.Range.End]
	out := make([]linebreak.Advance, len(seg))
	for i, r := range seg {
		width := run.Size * 6 / 10
		if r == ' ' || r == '\t' {
			width = run.Size * 3 / 10
		}
		out[i] = width
	}
	return out
}

func (demoAdvancer) Extent(run linebreak.StyleRun) linebreak.Extent {
	return linebreak.Extent{
		Ascent:  -run.Size * 8 / 10,
		Descent: run.Size * 2 / 10,
	}
}
