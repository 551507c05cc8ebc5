package geom

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReadCSV reads segments from a CSV with x1,y1,x2,y2 columns.
// Column detection is case-insensitive; the header row is required.
func ReadCSV(r io.Reader) ([]Line, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}
	idx := map[string]int{"x1": -1, "y1": -1, "x2": -1, "y2": -1}
	for i, h := range recs[0] {
		k := strings.ToLower(strings.TrimSpace(h))
		if j, ok := idx[k]; ok && j == -1 {
			idx[k] = i
		}
	}
	for k, i := range idx {
		if i == -1 {
			return nil, fmt.Errorf("csv: column %s not found", k)
		}
	}
	var lines []Line
	for n, row := range recs[1:] {
		text := strings.Join(row, ",")
		get := func(k string) string {
			if idx[k] >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx[k]])
		}
		l, err := ParseSegment(get("x1") + "," + get("y1") + " -> " + get("x2") + "," + get("y2"))
		if err != nil {
			// report the raw row, not the rebuilt segment
			return nil, &SyntaxError{Line: n + 2, Text: text, Err: errors.Unwrap(err)}
		}
		lines = append(lines, l)
	}
	if len(lines) == 0 {
		return nil, errors.New("csv: no segments parsed")
	}
	return lines, nil
}
