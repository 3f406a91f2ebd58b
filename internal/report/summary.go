package report

import (
	"context"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/AquaponicsSim_Go/internal/simulation"
)

// SummaryWriter prints aggregate results with locale-aware number formatting
type SummaryWriter struct {
	w     io.Writer
	lang  language.Tag
	title cases.Caser
}

// NewSummaryWriter prints to w in English
func NewSummaryWriter(w io.Writer) *SummaryWriter {
	return NewSummaryWriterFor(w, language.English)
}

// NewSummaryWriterFor prints to w using lang for numbers and titles
func NewSummaryWriterFor(w io.Writer, lang language.Tag) *SummaryWriter {
	return &SummaryWriter{w: w, lang: lang, title: cases.Title(lang)}
}

// stickyPrinter keeps the first write error and skips later writes
type stickyPrinter struct {
	p   *message.Printer
	w   io.Writer
	err error
}

func (sp *stickyPrinter) printf(format string, args ...any) {
	if sp.err != nil {
		return
	}
	_, sp.err = sp.p.Fprintf(sp.w, format, args...)
}

// Export implements Exporter
func (s *SummaryWriter) Export(_ context.Context, batch *simulation.Batch) error {
	out := &stickyPrinter{p: message.NewPrinter(s.lang), w: s.w}
	stats := batch.AggregateStats

	out.printf("=== Simulation Summary ===\n")
	out.printf("Total games: %d\n", stats.TotalGames)
	out.printf("Avg execution time: %.2f ms\n", stats.AvgExecutionTimeMs)

	out.printf("\nOutcomes:\n")
	for _, outcome := range sortedKeys(stats.Outcomes) {
		n := stats.Outcomes[outcome]
		out.printf("  %s: %d (%.1f%%)\n", s.label(outcome), n, percent(n, stats.TotalGames))
	}

	out.printf("\nBy strategy:\n")
	names := make([]string, 0, len(stats.ByStrategy))
	for name := range stats.ByStrategy {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		st := stats.ByStrategy[name]
		out.printf("  %s: %d games, avg %.1f days, avg $%.2f\n", s.label(name), st.Count, st.AvgDays, st.AvgMoney)
		for _, outcome := range sortedKeys(st.Outcomes) {
			n := st.Outcomes[outcome]
			out.printf("    %s: %d (%.1f%%)\n", s.label(outcome), n, percent(n, st.Count))
		}
	}
	return out.err
}

// label turns time_limit into Time Limit
func (s *SummaryWriter) label(key string) string {
	return s.title.String(strings.ReplaceAll(key, "_", " "))
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) * 100 / float64(total)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
