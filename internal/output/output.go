// Package output provides formatted output rendering for compression
// reports. It supports text, JSON, table and YAML formats.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/bimmerbailey/cssmin/internal/enhance"
)

// Format represents an output format type.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
)

// ParseFormat converts a string to a Format, defaulting to text.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	case "table":
		return FormatTable
	case "yaml", "yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// Report is the outcome of compressing one stylesheet.
type Report struct {
	File       string             `json:"file" yaml:"file"`
	Output     string             `json:"output,omitempty" yaml:"output,omitempty"`
	Statistics enhance.Statistics `json:"statistics" yaml:"statistics"`
	Error      string             `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the file could not be compressed.
func (r Report) Failed() bool {
	return r.Error != ""
}

// Writer handles writing formatted output.
type Writer struct {
	w        io.Writer
	format   Format
	colorize bool
}

// New creates a new output Writer. Colour is off until SetColorMode
// enables it.
func New(w io.Writer, format Format) *Writer {
	return &Writer{w: w, format: format}
}

// SetColorMode decides whether text output is styled.
func (wr *Writer) SetColorMode(mode ColorMode) {
	wr.colorize = shouldColorize(mode, wr.w)
}

// WriteReports outputs reports in the configured format.
func (wr *Writer) WriteReports(reports []Report) error {
	switch wr.format {
	case FormatJSON:
		return wr.WriteJSON(reports)
	case FormatYAML:
		return wr.WriteYAML(reports)
	case FormatTable:
		return wr.writeTable(reports)
	default:
		return wr.writeText(reports)
	}
}

// WriteJSON outputs any value as indented JSON.
func (wr *Writer) WriteJSON(v any) error {
	enc := json.NewEncoder(wr.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteYAML outputs any value as YAML.
func (wr *Writer) WriteYAML(v any) error {
	enc := yaml.NewEncoder(wr.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func (wr *Writer) writeText(reports []Report) error {
	st := newStyles(wr.colorize)

	for _, r := range reports {
		if r.Failed() {
			fmt.Fprintf(wr.w, "%s %s\n", st.file.Render(r.File), st.err.Render("error: "+r.Error))
			continue
		}

		s := r.Statistics
		line := fmt.Sprintf("%s %d -> %d bytes %s",
			st.file.Render(r.File), s.OriginalSize, s.CompressedSize,
			st.ok.Render(fmt.Sprintf("(%.2f%% smaller)", s.CompressionRatio)))
		if s.GzipSize > 0 {
			line += st.muted.Render(fmt.Sprintf(" gzip %d, zstd %d", s.GzipSize, s.ZstdSize))
		}
		if r.Output != "" {
			line += st.muted.Render(" -> " + r.Output)
		}
		if s.FallbackUsed {
			line += " " + st.warn.Render("[fallback]")
		}
		fmt.Fprintln(wr.w, line)

		if counters := passCounters(s); counters != "" {
			fmt.Fprintln(wr.w, "  "+st.muted.Render(counters))
		}
	}

	if len(reports) > 1 {
		total := Summarize(reports)
		fmt.Fprintf(wr.w, "%s %d files, %d -> %d bytes (%.2f%% smaller)\n",
			st.file.Render("total"), total.Files, total.OriginalSize, total.CompressedSize, total.Ratio)
	}
	return nil
}

func (wr *Writer) writeTable(reports []Report) error {
	tw := tabwriter.NewWriter(wr.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tORIGINAL\tCOMPRESSED\tRATIO\tGZIP\tNOTE")
	fmt.Fprintln(tw, "----\t--------\t----------\t-----\t----\t----")

	for _, r := range reports {
		if r.Failed() {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\t%s\n", r.File, truncate(r.Error, 60))
			continue
		}

		s := r.Statistics
		note := ""
		if s.FallbackUsed {
			note = "fallback"
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.2f%%\t%d\t%s\n",
			r.File, s.OriginalSize, s.CompressedSize, s.CompressionRatio, s.GzipSize, note)
	}

	return tw.Flush()
}

// Totals aggregates a set of reports.
type Totals struct {
	Files          int     `json:"files" yaml:"files"`
	Failed         int     `json:"failed" yaml:"failed"`
	OriginalSize   int     `json:"original_size" yaml:"original_size"`
	CompressedSize int     `json:"compressed_size" yaml:"compressed_size"`
	Ratio          float64 `json:"compression_ratio" yaml:"compression_ratio"`
}

// Summarize adds up the sizes of the successful reports.
func Summarize(reports []Report) Totals {
	var t Totals
	for _, r := range reports {
		t.Files++
		if r.Failed() {
			t.Failed++
			continue
		}
		t.OriginalSize += r.Statistics.OriginalSize
		t.CompressedSize += r.Statistics.CompressedSize
	}
	t.Ratio = enhance.Ratio(t.OriginalSize, t.CompressedSize)
	return t
}

func passCounters(s enhance.Statistics) string {
	var parts []string
	add := func(n int, label string) {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, label))
		}
	}
	add(s.SelectorsMerged, "selectors merged")
	add(s.PropertiesOptimized, "properties optimized")
	add(s.ColorsConverted, "colors converted")
	add(s.CommentsRemoved, "comments removed")
	return strings.Join(parts, ", ")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
