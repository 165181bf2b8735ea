package nexus

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/temirov/nexus/internal/record"
)

// buildRecord is the flag-level record producer. The pipeline core performs
// no parsing of serialized formats; whatever minimal splitting happens here
// stays on the CLI side of that boundary.
func buildRecord(format string, data string) (record.Record, error) {
	switch format {
	case formatStructured:
		return buildStructuredRecord(data)
	case formatDelimited:
		return record.Delimited(data), nil
	case formatSeries:
		return buildSeriesRecord(data)
	}
	return nil, fmt.Errorf("unknown record format %q (want %s, %s or %s)",
		format, formatStructured, formatDelimited, formatSeries)
}

// buildStructuredRecord parses "k=v,k=v" pairs. Values that parse as numbers
// become float64 so the output stage can read them as readings.
func buildStructuredRecord(data string) (record.Record, error) {
	structured := record.Structured{}
	if strings.TrimSpace(data) == "" {
		return structured, nil
	}
	for _, pair := range strings.Split(data, ",") {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("structured data needs k=v pairs, got %q", pair)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" {
			return nil, fmt.Errorf("structured data has an empty key in %q", pair)
		}
		if number, numberErr := strconv.ParseFloat(value, 64); numberErr == nil {
			structured[key] = number
		} else {
			structured[key] = value
		}
	}
	return structured, nil
}

func buildSeriesRecord(data string) (record.Record, error) {
	if strings.TrimSpace(data) == "" {
		return record.Series{}, nil
	}
	parts := strings.Split(data, ",")
	readings := make(record.Series, 0, len(parts))
	for _, part := range parts {
		reading, parseErr := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if parseErr != nil {
			return nil, fmt.Errorf("series data needs numbers, got %q", part)
		}
		readings = append(readings, reading)
	}
	return readings, nil
}
