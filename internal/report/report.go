// SPDX-License-Identifier: MIT

// Package report collects labelled numeric results into titled sections and
// renders them either as styled console text (lipgloss) or as a YAML
// document (yaml.v3). Sections and entries keep insertion order.
package report

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/numlab/matrix"
	"github.com/katalvlaran/numlab/stats"
)

// Output formats accepted by Render.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Default decimal places.
const (
	DefaultFloatPrecision  = 6
	DefaultStatsPrecision  = 4
	DefaultMatrixPrecision = 2
)

// ErrUnknownFormat is returned by Render for anything but text or yaml.
var ErrUnknownFormat = errors.New("report: unknown output format")

// Entry is one labelled result. Text is what the console shows; Value is
// what the YAML document carries.
type Entry struct {
	Label string
	Text  string
	Value any
}

// Section groups entries under a title.
type Section struct {
	Title   string
	Entries []Entry
}

// Report is an ordered list of sections.
type Report struct {
	sections        []*Section
	floatPrecision  int
	statsPrecision  int
	matrixPrecision int
}

// Option configures a Report.
type Option func(*Report)

// WithStatsPrecision sets the decimals used by AddSummary.
// Panics if p < 0.
func WithStatsPrecision(p int) Option {
	if p < 0 {
		panic(fmt.Sprintf("report: WithStatsPrecision(%d): precision must be >= 0", p))
	}

	return func(r *Report) { r.statsPrecision = p }
}

// WithMatrixPrecision sets the decimals used by AddMatrix.
// Panics if p < 0.
func WithMatrixPrecision(p int) Option {
	if p < 0 {
		panic(fmt.Sprintf("report: WithMatrixPrecision(%d): precision must be >= 0", p))
	}

	return func(r *Report) { r.matrixPrecision = p }
}

// New returns an empty Report.
func New(opts ...Option) *Report {
	r := &Report{
		floatPrecision:  DefaultFloatPrecision,
		statsPrecision:  DefaultStatsPrecision,
		matrixPrecision: DefaultMatrixPrecision,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(r)
		}
	}

	return r
}

// Section returns the section with the given title, creating it at the end
// when absent.
func (r *Report) Section(title string) *Section {
	for _, s := range r.sections {
		if s.Title == title {
			return s
		}
	}
	s := &Section{Title: title}
	r.sections = append(r.sections, s)

	return s
}

// Sections returns the sections in insertion order.
func (r *Report) Sections() []*Section { return r.sections }

func (r *Report) add(title string, e Entry) {
	s := r.Section(title)
	s.Entries = append(s.Entries, e)
}

// AddFloat records a scalar.
func (r *Report) AddFloat(title, label string, v float64) {
	r.add(title, Entry{Label: label, Text: formatFloat(v, r.floatPrecision), Value: v})
}

// AddText records a free-form string.
func (r *Report) AddText(title, label, text string) {
	r.add(title, Entry{Label: label, Text: text, Value: text})
}

// AddInts records a sequence of big integers, e.g. Fibonacci terms.
func (r *Report) AddInts(title, label string, values []*big.Int) {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	// YAML keeps exact digits by carrying them as strings.
	r.add(title, Entry{Label: label, Text: strings.Join(parts, " "), Value: parts})
}

// AddSummary records every field of a statistics summary.
func (r *Report) AddSummary(title string, s stats.Summary) {
	p := r.statsPrecision
	r.add(title, Entry{Label: "count", Text: strconv.Itoa(s.Count), Value: s.Count})
	r.add(title, Entry{Label: "mean", Text: formatFloat(s.Mean, p), Value: s.Mean})
	r.add(title, Entry{Label: "median", Text: formatFloat(s.Median, p), Value: s.Median})
	r.add(title, Entry{Label: "std_dev", Text: formatFloat(s.StdDev, p), Value: s.StdDev})
	r.add(title, Entry{Label: "min", Text: formatFloat(s.Min, p), Value: s.Min})
	r.add(title, Entry{Label: "max", Text: formatFloat(s.Max, p), Value: s.Max})
}

// AddMatrix records a matrix; the text form has one bracketed row per line.
func (r *Report) AddMatrix(title, label string, m matrix.Matrix) error {
	text, err := matrix.Format(m, r.matrixPrecision)
	if err != nil {
		return fmt.Errorf("AddMatrix(%s): %w", label, err)
	}
	rows, err := matrix.ToRows(m)
	if err != nil {
		return fmt.Errorf("AddMatrix(%s): %w", label, err)
	}
	r.add(title, Entry{Label: label, Text: strings.TrimRight(text, "\n"), Value: rows})

	return nil
}

// Root is the YAML form of a complex root.
type Root struct {
	Re float64 `yaml:"re"`
	Im float64 `yaml:"im"`
}

// AddRoots records complex roots; real roots print without an imaginary part.
func (r *Report) AddRoots(title, label string, roots []complex128) {
	texts := make([]string, len(roots))
	values := make([]Root, len(roots))
	for i, z := range roots {
		texts[i] = formatComplex(z, r.floatPrecision)
		values[i] = Root{Re: real(z), Im: imag(z)}
	}
	text := strings.Join(texts, ", ")
	if len(roots) == 0 {
		text = "none found"
	}
	r.add(title, Entry{Label: label, Text: text, Value: values})
}

// Render writes the report to w in the given format.
func (r *Report) Render(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case FormatText:
		return r.renderText(w)
	case FormatYAML:
		return r.renderYAML(w)
	}

	return fmt.Errorf("Render(%q): %w", format, ErrUnknownFormat)
}

func (r *Report) renderText(w io.Writer) error {
	re := lipgloss.NewRenderer(w)
	titleStyle := re.NewStyle().Bold(true).Foreground(colorTitle)
	labelStyle := re.NewStyle().Foreground(colorLabel)

	width := 0
	for _, s := range r.sections {
		for _, e := range s.Entries {
			width = max(width, lipgloss.Width(e.Label))
		}
	}
	labelStyle = labelStyle.Width(width + 2)

	var sb strings.Builder
	for i, s := range r.sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(titleStyle.Render(s.Title))
		sb.WriteString("\n")
		for _, e := range s.Entries {
			lines := strings.Split(e.Text, "\n")
			sb.WriteString(labelStyle.Render(e.Label + ":"))
			sb.WriteString(lines[0])
			sb.WriteString("\n")
			pad := strings.Repeat(" ", width+2)
			for _, line := range lines[1:] {
				sb.WriteString(pad)
				sb.WriteString(line)
				sb.WriteString("\n")
			}
		}
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

// renderYAML emits a mapping of section title to a mapping of label to value,
// built as nodes so key order follows insertion order.
func (r *Report) renderYAML(w io.Writer) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range r.sections {
		body := &yaml.Node{Kind: yaml.MappingNode}
		for _, e := range s.Entries {
			val := &yaml.Node{}
			if err := val.Encode(e.Value); err != nil {
				return fmt.Errorf("encode %s.%s: %w", s.Title, e.Label, err)
			}
			body.Content = append(body.Content, scalar(e.Label), val)
		}
		doc.Content = append(doc.Content, scalar(s.Title), body)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return enc.Close()
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func formatFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

func formatComplex(z complex128, prec int) string {
	re, im := real(z), imag(z)
	if im == 0 {
		return formatFloat(re, prec)
	}
	sign := "+"
	if im < 0 {
		sign = "-"
		im = -im
	}

	return formatFloat(re, prec) + sign + formatFloat(im, prec) + "i"
}
