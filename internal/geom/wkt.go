package geom

import (
	"errors"
	"strconv"
	"strings"
)

// ParseWKT parses LINESTRING and MULTILINESTRING geometries, one per line.
// Every linestring must have exactly two vertices with integer coordinates.
func ParseWKT(wkt string) ([]Line, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return nil, errors.New("empty wkt")
	}
	parseTuples := func(block string) [][2]float64 {
		var out [][2]float64
		for _, tup := range strings.Split(block, ",") {
			parts := strings.Fields(strings.TrimSpace(tup))
			if len(parts) < 2 {
				continue
			}
			x, e1 := strconv.ParseFloat(parts[0], 64)
			y, e2 := strconv.ParseFloat(parts[1], 64)
			if e1 != nil || e2 != nil {
				continue
			}
			out = append(out, [2]float64{x, y})
		}
		return out
	}
	var lines []Line
	for _, stmt := range strings.Split(s, "\n") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		up := strings.ToUpper(stmt)
		switch {
		case strings.HasPrefix(up, "MULTILINESTRING"):
			i := strings.Index(stmt, "((")
			j := strings.LastIndex(stmt, "))")
			if i < 0 || j <= i {
				return nil, errors.New("wkt multilinestring: invalid")
			}
			// normalize spaces around part separators
			parts := strings.ReplaceAll(stmt[i+2:j], "), (", "),(")
			parts = strings.ReplaceAll(parts, ") , (", "),(")
			for _, part := range strings.Split(parts, "),(") {
				l, err := segmentFromVertices(stmt, parseTuples(part))
				if err != nil {
					return nil, err
				}
				lines = append(lines, l)
			}
		case strings.HasPrefix(up, "LINESTRING"):
			i := strings.Index(stmt, "(")
			j := strings.LastIndex(stmt, ")")
			if i < 0 || j <= i {
				return nil, errors.New("wkt linestring: invalid")
			}
			l, err := segmentFromVertices(stmt, parseTuples(stmt[i+1:j]))
			if err != nil {
				return nil, err
			}
			lines = append(lines, l)
		default:
			return nil, errors.New("unsupported wkt type")
		}
	}
	if len(lines) == 0 {
		return nil, errors.New("wkt: no segments parsed")
	}
	return lines, nil
}
