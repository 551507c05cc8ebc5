package geom

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const canonical = `0,9 -> 5,9
8,0 -> 0,8
9,4 -> 3,4
2,2 -> 2,1
7,0 -> 7,4
6,4 -> 2,0
0,9 -> 2,9
3,4 -> 1,4
0,0 -> 8,8
5,5 -> 8,2
`

func TestParseSegment(t *testing.T) {
	l, err := ParseSegment("  0,9 -> 5,9 ")
	require.NoError(t, err)
	assert.Equal(t, Line{Start: Point{0, 9}, End: Point{5, 9}}, l)

	l, err = ParseSegment("999,0->0,999")
	require.NoError(t, err)
	assert.Equal(t, Line{Start: Point{999, 0}, End: Point{0, 999}}, l)
}

func TestParseSegmentErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"1,2 3,4",
		"1000,0 -> 0,0",
		"a,b -> c,d",
		"1,2 -> 3",
		"-1,2 -> 3,2",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseSegment(in)
			require.ErrorIs(t, err, ErrMalformed)
		})
	}

	_, err := ParseSegment("0,0 -> 2,1")
	require.ErrorIs(t, err, ErrMalformed)
	require.ErrorIs(t, err, ErrSlope)
}

func TestReadSegments(t *testing.T) {
	lines, err := ReadSegments(strings.NewReader(canonical + "\n\n"))
	require.NoError(t, err)
	require.Len(t, lines, 10)
	assert.Equal(t, Line{Start: Point{5, 5}, End: Point{8, 2}}, lines[9])
}

func TestReadSegmentsLineNumber(t *testing.T) {
	_, err := ReadSegments(strings.NewReader("0,9 -> 5,9\n\noops\n"))
	var se *SyntaxError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 3, se.Line)
	assert.Equal(t, "oops", se.Text)
	assert.Equal(t, `line 3: "oops": malformed segment`, err.Error())
}

func TestReadCSV(t *testing.T) {
	lines, err := ReadCSV(strings.NewReader("X1, Y1, X2, Y2\n0,9,5,9\n8,0,0,8\n"))
	require.NoError(t, err)
	want := []Line{
		{Start: Point{0, 9}, End: Point{5, 9}},
		{Start: Point{8, 0}, End: Point{0, 8}},
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("ReadCSV mismatch (-want +got):\n%s", diff)
	}

	_, err = ReadCSV(strings.NewReader("a,b\n1,2\n"))
	assert.ErrorContains(t, err, "not found")

	_, err = ReadCSV(strings.NewReader("x1,y1,x2,y2\n0,0,2,1\n"))
	var se *SyntaxError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 2, se.Line)
	assert.ErrorIs(t, err, ErrSlope)
}

func TestParseWKT(t *testing.T) {
	lines, err := ParseWKT("LINESTRING (0 9, 5 9)\nMULTILINESTRING ((8 0, 0 8), (9 4, 3 4))\n")
	require.NoError(t, err)
	want := []Line{
		{Start: Point{0, 9}, End: Point{5, 9}},
		{Start: Point{8, 0}, End: Point{0, 8}},
		{Start: Point{9, 4}, End: Point{3, 4}},
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("ParseWKT mismatch (-want +got):\n%s", diff)
	}

	_, err = ParseWKT("POINT (1 2)")
	assert.Error(t, err)
	_, err = ParseWKT("LINESTRING (0 0, 1 1, 2 2)")
	assert.ErrorIs(t, err, ErrMalformed)
	_, err = ParseWKT("LINESTRING (0.5 0, 1 0)")
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestReadGeoJSON(t *testing.T) {
	doc := `{"type":"FeatureCollection","features":[
		{"type":"Feature","geometry":{"type":"LineString","coordinates":[[7,0],[7,4]]}},
		{"type":"Feature","geometry":{"type":"Point","coordinates":[1,1]}},
		{"type":"Feature","geometry":{"type":"MultiLineString","coordinates":[[[0,0],[8,8]],[[5,5],[8,2]]]}}
	]}`
	lines, err := ReadGeoJSON(strings.NewReader(doc))
	require.NoError(t, err)
	want := []Line{
		{Start: Point{7, 0}, End: Point{7, 4}},
		{Start: Point{0, 0}, End: Point{8, 8}},
		{Start: Point{5, 5}, End: Point{8, 2}},
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("ReadGeoJSON mismatch (-want +got):\n%s", diff)
	}

	_, err = ReadGeoJSON(strings.NewReader(`{"type":"Point","coordinates":[1,1]}`))
	assert.Error(t, err)
	_, err = ReadGeoJSON(strings.NewReader(`{"coordinates":[1,1]}`))
	assert.ErrorContains(t, err, "missing type")
}

func TestReadKML(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2"><Document>
  <Placemark><LineString><coordinates>2,2,0 2,1,0</coordinates></LineString></Placemark>
  <Placemark><Point><coordinates>1,1</coordinates></Point></Placemark>
</Document></kml>`
	lines, err := ReadKML(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []Line{{Start: Point{2, 2}, End: Point{2, 1}}}, lines)
}

func TestLoadSegments(t *testing.T) {
	dir := t.TempDir()
	native := filepath.Join(dir, "vents.txt")
	require.NoError(t, os.WriteFile(native, []byte(canonical), 0o644))
	lines, err := LoadSegments(native)
	require.NoError(t, err)
	assert.Len(t, lines, 10)

	bare := filepath.Join(dir, "input")
	require.NoError(t, os.WriteFile(bare, []byte("1,1 -> 1,3\n"), 0o644))
	lines, err = LoadSegments(bare)
	require.NoError(t, err)
	assert.Len(t, lines, 1)

	bad := filepath.Join(dir, "vents.shp")
	require.NoError(t, os.WriteFile(bad, nil, 0o644))
	_, err = LoadSegments(bad)
	assert.ErrorContains(t, err, "unsupported file")

	broken := filepath.Join(dir, "broken.txt")
	require.NoError(t, os.WriteFile(broken, []byte("1,1 -> 2,3\n"), 0o644))
	_, err = LoadSegments(broken)
	assert.ErrorIs(t, err, ErrSlope)
	assert.ErrorContains(t, err, "broken.txt")

	assert.True(t, Supported("a.GeoJSON"))
	assert.False(t, Supported("a.shp"))
}
