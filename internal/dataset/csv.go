package dataset

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"
)

// readRows parses an embedded CSV, skipping the header row. Rows that are
// malformed or shorter than minCols are logged and skipped; fn is called
// with trimmed fields for the rest.
func readRows(name, data string, minCols int, fn func(fields []string) bool) {
	reader := csv.NewReader(strings.NewReader(data))
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		log().Error().Err(err).Str("file", name).Msg("failed to read CSV header")
		return
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log().Warn().Err(err).Str("file", name).Msg("skipping malformed CSV row")
			continue
		}
		if len(record) < minCols {
			log().Warn().Str("file", name).Int("columns", len(record)).Msg("skipping short CSV row")
			continue
		}

		fields := make([]string, len(record))
		for i, f := range record {
			fields[i] = strings.TrimSpace(f)
		}
		if !fn(fields) {
			log().Warn().Str("file", name).Strs("row", fields).Msg("skipping invalid CSV row")
		}
	}
}

// parseNonNegative parses a finite, non-negative float.
func parseNonNegative(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
