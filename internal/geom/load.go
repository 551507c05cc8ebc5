package geom

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Extensions lists the file extensions LoadSegments understands.
var Extensions = []string{".txt", ".csv", ".wkt", ".geojson", ".json", ".kml"}

// Supported reports whether path has an extension LoadSegments can read.
// Files without an extension are read in the native format.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return true
	}
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// LoadSegments reads a segment file, choosing the format by extension.
func LoadSegments(path string) ([]Line, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	lines, err := readByExt(strings.ToLower(filepath.Ext(path)), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return lines, nil
}

func readByExt(ext string, r io.Reader) ([]Line, error) {
	switch ext {
	case "", ".txt":
		return ReadSegments(r)
	case ".csv":
		return ReadCSV(r)
	case ".wkt":
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return ParseWKT(string(data))
	case ".geojson", ".json":
		return ReadGeoJSON(r)
	case ".kml":
		return ReadKML(r)
	}
	return nil, fmt.Errorf("unsupported file: %s", ext)
}
