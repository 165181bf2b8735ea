// Package record defines the closed set of data variants that flow through a
// processing pipeline. Stages branch on the concrete variant; any variant a
// stage does not specially interpret falls through to a generic arm, so adding
// a variant degrades behavior instead of breaking it.
package record

import (
	"fmt"
	"sort"
	"strings"
)

// Kind discriminates the record variants.
type Kind string

const (
	KindStructured Kind = "structured"
	KindDelimited  Kind = "delimited"
	KindSeries     Kind = "series"
	KindSummary    Kind = "summary"
)

// Record is the unit of data passed between pipeline stages. The interface is
// sealed: only the variants defined in this package implement it.
type Record interface {
	fmt.Stringer
	Kind() Kind
	sealed()
}

// Structured is a key-value mapping, e.g. a sensor reading with a value and a
// unit.
type Structured map[string]any

func (Structured) Kind() Kind { return KindStructured }
func (Structured) sealed()    {}

// String renders the mapping with sorted keys so traces are deterministic.
func (s Structured) String() string {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var builder strings.Builder
	builder.WriteString("{")
	for index, key := range keys {
		if index > 0 {
			builder.WriteString(", ")
		}
		fmt.Fprintf(&builder, "%s: %v", key, s[key])
	}
	builder.WriteString("}")
	return builder.String()
}

// Value returns the numeric "value" field if present. Integer and float
// encodings are both accepted.
func (s Structured) Value() (float64, bool) {
	raw, ok := s["value"]
	if !ok {
		return 0, false
	}
	switch number := raw.(type) {
	case float64:
		return number, true
	case float32:
		return float64(number), true
	case int:
		return float64(number), true
	case int64:
		return float64(number), true
	}
	return 0, false
}

// Unit returns the "unit" field, or fallback when absent or not a string.
func (s Structured) Unit(fallback string) string {
	raw, ok := s["unit"]
	if !ok {
		return fallback
	}
	unit, ok := raw.(string)
	if !ok {
		return fallback
	}
	return unit
}

// Delimited is a flat text line, e.g. a CSV-style row.
type Delimited string

func (Delimited) Kind() Kind       { return KindDelimited }
func (Delimited) sealed()          {}
func (d Delimited) String() string { return string(d) }

// Series is an ordered sequence of numeric readings.
type Series []float64

func (Series) Kind() Kind { return KindSeries }
func (Series) sealed()    {}

func (s Series) String() string {
	parts := make([]string, len(s))
	for index, reading := range s {
		parts[index] = fmt.Sprintf("%v", reading)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Mean returns the arithmetic mean of the readings, zero for an empty series.
func (s Series) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	var total float64
	for _, reading := range s {
		total += reading
	}
	return total / float64(len(s))
}

// Summary is the derived result a terminal stage produces. It is a Record so
// it can flow through the same chain type; stages that meet it take their
// generic arm.
type Summary string

func (Summary) Kind() Kind       { return KindSummary }
func (Summary) sealed()          {}
func (s Summary) String() string { return string(s) }
