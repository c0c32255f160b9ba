// Package describe produces accessibility label text for line series and
// their area fills, with numbers formatted for the reader's locale.
//
// Example:
//
//	label := describe.Series(language.German, s)
//	// "Umsatz, stepped line, 1.024 values from 0,5 to 12,25, filled to Kosten"
package describe

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/gogpu/chart"
)

// unnamed labels series that have no Label of their own.
const unnamed = "Unnamed series"

// Series describes one series: its label, interpolation, sample count, Y
// range and fill target.
func Series(tag language.Tag, s *chart.Series) string {
	p := message.NewPrinter(tag)
	return describe(p, s)
}

// Chart describes every visible series in order, prefixed by a summary.
func Chart(tag language.Tag, series []*chart.Series) string {
	p := message.NewPrinter(tag)

	var parts []string
	for _, s := range series {
		if s == nil || s.Hidden {
			continue
		}
		parts = append(parts, describe(p, s))
	}

	switch len(parts) {
	case 0:
		return "Line chart, no data"
	case 1:
		return "Line chart with 1 series. " + parts[0]
	default:
		return p.Sprintf("Line chart with %d series. ", len(parts)) + strings.Join(parts, ". ")
	}
}

func describe(p *message.Printer, s *chart.Series) string {
	label := labelOf(s)

	var b strings.Builder
	b.WriteString(label)
	b.WriteString(", ")
	b.WriteString(s.Mode.String())
	b.WriteString(" line")

	n := count(s.Data)
	switch n {
	case 0:
		b.WriteString(", no values")
	case 1:
		b.WriteString(", 1 value")
	default:
		b.WriteString(p.Sprintf(", %d values", n))
	}

	if minY, maxY, ok := chart.Extent(s.Data); ok {
		if minY == maxY {
			b.WriteString(p.Sprintf(" at %v", decimal(minY)))
		} else {
			b.WriteString(p.Sprintf(" from %v to %v", decimal(minY), decimal(maxY)))
		}
	}

	if s.Fill != nil && s.Fill.Brush != nil {
		if s.Fill.Boundary != nil {
			b.WriteString(", filled to ")
			b.WriteString(labelOf(s.Fill.Boundary))
		} else {
			b.WriteString(", filled to baseline")
		}
	}
	return b.String()
}

func labelOf(s *chart.Series) string {
	if l := strings.TrimSpace(s.Label); l != "" {
		return l
	}
	return unnamed
}

// count returns the number of resolvable samples.
func count(ds chart.DataSet) int {
	if ds == nil {
		return 0
	}
	n := 0
	for i := 0; i < ds.Len(); i++ {
		if _, ok := ds.SampleAt(i); ok {
			n++
		}
	}
	return n
}

func decimal(v float64) number.Formatter {
	return number.Decimal(v, number.MaxFractionDigits(2))
}
