package geom

import (
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"
)

// ReadKML extracts segments from Placemark > LineString > coordinates.
// KML coordinates are "x,y[,alt]"; altitude is ignored.
func ReadKML(r io.Reader) ([]Line, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	type kmlLineString struct {
		Coordinates string `xml:"coordinates"`
	}
	type kmlPlacemark struct {
		LineString *kmlLineString `xml:"LineString"`
	}
	type kmlDoc struct {
		Placemarks []kmlPlacemark `xml:"Document>Placemark"`
		Bare       []kmlPlacemark `xml:"Placemark"`
	}

	var doc kmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	var lines []Line
	for _, pm := range append(doc.Placemarks, doc.Bare...) {
		if pm.LineString == nil {
			continue
		}
		var pts [][2]float64
		// tuples are separated by whitespace
		for _, tuple := range strings.Fields(pm.LineString.Coordinates) {
			vals := strings.Split(tuple, ",")
			if len(vals) < 2 {
				continue
			}
			x, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
			y, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
			if err1 != nil || err2 != nil {
				continue
			}
			pts = append(pts, [2]float64{x, y})
		}
		l, err := segmentFromVertices(strings.TrimSpace(pm.LineString.Coordinates), pts)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	if len(lines) == 0 {
		return nil, errors.New("kml: no linestrings found")
	}
	return lines, nil
}
