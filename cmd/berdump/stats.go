package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/urfave/cli/v2"
	"github.com/usnistgov/berdecode/ber"
	"github.com/usnistgov/berdecode/core/runningstat"
	"go.uber.org/zap"
)

// elementStats summarizes the decoded elements of all documents.
type elementStats struct {
	Documents int                  `json:"documents"`
	Elements  int                  `json:"elements"`
	MaxDepth  int                  `json:"maxDepth"`
	Types     map[string]int       `json:"types"`
	Payload   runningstat.Snapshot `json:"payload"`
}

// statsPrinter collects elementStats instead of printing each element.
type statsPrinter struct {
	w       io.Writer
	format  string
	stats   elementStats
	payload runningstat.RunningStat
}

func newStatsPrinter(w io.Writer, cfg dumpConfig) *statsPrinter {
	return &statsPrinter{
		w:      w,
		format: cfg.Format,
		stats: elementStats{
			Types: map[string]int{},
		},
	}
}

func typeKey(h ber.Header) string {
	if h.Class == ber.ClassUniversal {
		return h.UniversalType().String()
	}
	return fmt.Sprintf("%s %d", h.Class, h.Tag)
}

func (p *statsPrinter) Print(doc document, elements []ber.Element) error {
	p.stats.Documents++
	return ber.Walk(elements, func(path []int, element *ber.Element) error {
		p.stats.Elements++
		if len(path) > p.stats.MaxDepth {
			p.stats.MaxDepth = len(path)
		}
		p.stats.Types[typeKey(element.Header)]++
		if !element.IsConstructed() {
			p.payload.Push(uint64(element.Length))
		}
		return nil
	})
}

func (p *statsPrinter) Flush() error {
	p.stats.Payload = p.payload.Read()
	if p.format == formatJSON {
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(p.stats)
	}

	fmt.Fprintf(p.w, "documents %d\n", p.stats.Documents)
	fmt.Fprintf(p.w, "elements %d\n", p.stats.Elements)
	fmt.Fprintf(p.w, "max-depth %d\n", p.stats.MaxDepth)
	if s := p.stats.Payload; s.Count > 0 {
		fmt.Fprintf(p.w, "primitive-length count %d min %d max %d mean %.1f stdev %.1f\n",
			s.Count, *s.Min, *s.Max, s.Mean, s.Stdev)
	}

	types := make([]string, 0, len(p.stats.Types))
	for typ := range p.stats.Types {
		types = append(types, typ)
	}
	sort.Strings(types)
	for _, typ := range types {
		if _, e := fmt.Fprintf(p.w, "type %s %d\n", typ, p.stats.Types[typ]); e != nil {
			return e
		}
	}
	return nil
}

func init() {
	defineCommand(func() *cli.Command {
		return &cli.Command{
			Name:      "stats",
			Usage:     "Decode BER/DER files and summarize element types and sizes.",
			ArgsUsage: "[FILE...]",
			Flags:     makeConfigFlags(),
			Action: func(c *cli.Context) error {
				cfg, e := makeConfig(c)
				if e != nil {
					return e
				}
				logger.Debug("stats", zap.Any("config", cfg), zap.Strings("files", c.Args().Slice()))
				return newDumper(cfg, appStdin(c), newStatsPrinter(c.App.Writer, cfg)).Run(c.Args().Slice())
			},
		}
	})
}
