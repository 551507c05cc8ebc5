package geom

import (
	"encoding/json"
	"errors"
	"io"
)

// ReadGeoJSON extracts segments from LineString and MultiLineString geometries.
// Supports bare geometries, Feature and FeatureCollection. Other geometry
// types are ignored.
func ReadGeoJSON(r io.Reader) ([]Line, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	var (
		lines    []Line
		firstErr error
	)
	parsePoint := func(v any) (pt [2]float64, ok bool) {
		if a, ok := v.([]any); ok && len(a) >= 2 {
			x, xok := a[0].(float64)
			y, yok := a[1].(float64)
			if xok && yok {
				return [2]float64{x, y}, true
			}
		}
		return [2]float64{}, false
	}
	parseLineString := func(v any) (ls [][2]float64, ok bool) {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		for _, el := range arr {
			if pt, ok := parsePoint(el); ok {
				ls = append(ls, pt)
			}
		}
		return ls, true
	}
	addLine := func(ls [][2]float64) {
		if firstErr != nil {
			return
		}
		b, _ := json.Marshal(ls)
		l, err := segmentFromVertices(string(b), ls)
		if err != nil {
			firstErr = err
			return
		}
		lines = append(lines, l)
	}
	walkGeom := func(g map[string]any) {
		gt, _ := g["type"].(string)
		switch gt {
		case "LineString":
			if ls, ok := parseLineString(g["coordinates"]); ok {
				addLine(ls)
			}
		case "MultiLineString":
			if arr, ok := g["coordinates"].([]any); ok {
				for _, el := range arr {
					if ls, ok := parseLineString(el); ok {
						addLine(ls)
					}
				}
			}
		}
	}
	t, _ := raw["type"].(string)
	switch t {
	case "Feature":
		if g, ok := raw["geometry"].(map[string]any); ok {
			walkGeom(g)
		}
	case "FeatureCollection":
		if fs, ok := raw["features"].([]any); ok {
			for _, f := range fs {
				if fm, ok := f.(map[string]any); ok {
					if g, ok := fm["geometry"].(map[string]any); ok {
						walkGeom(g)
					}
				}
			}
		}
	case "":
		return nil, errors.New("invalid geojson: missing type")
	default:
		walkGeom(raw)
	}
	if firstErr != nil {
		return nil, firstErr
	}
	if len(lines) == 0 {
		return nil, errors.New("no line geometries found")
	}
	return lines, nil
}
