package geom

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformed is matched by every SyntaxError.
var ErrMalformed = errors.New("malformed segment")

// SyntaxError describes a segment that could not be read.
type SyntaxError struct {
	Line int // 1-based, 0 when not read from a stream
	Text string
	Err  error
}

func (e *SyntaxError) Error() string {
	msg := ErrMalformed.Error()
	if e.Err != nil && !errors.Is(e.Err, ErrMalformed) {
		msg = e.Err.Error()
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %q: %s", e.Line, e.Text, msg)
	}
	return fmt.Sprintf("%q: %s", e.Text, msg)
}

func (e *SyntaxError) Is(target error) bool { return target == ErrMalformed }

func (e *SyntaxError) Unwrap() error { return e.Err }

var segmentRE = regexp.MustCompile(`^(\d{1,3}),(\d{1,3})\s*->\s*(\d{1,3}),(\d{1,3})$`)

// ParseSegment reads "x1,y1 -> x2,y2" where every value has 1 to 3 digits.
func ParseSegment(s string) (Line, error) {
	text := strings.TrimSpace(s)
	m := segmentRE.FindStringSubmatch(text)
	if m == nil {
		return Line{}, &SyntaxError{Text: text}
	}
	var v [4]int
	for i := range v {
		// the pattern guarantees at most three digits
		v[i], _ = strconv.Atoi(m[i+1])
	}
	l := Line{Start: Point{X: v[0], Y: v[1]}, End: Point{X: v[2], Y: v[3]}}
	if err := l.Validate(); err != nil {
		return Line{}, &SyntaxError{Text: text, Err: err}
	}
	return l, nil
}

// ReadSegments parses one segment per line. Blank lines are skipped.
func ReadSegments(r io.Reader) ([]Line, error) {
	var lines []Line
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		l, err := ParseSegment(text)
		if err != nil {
			var se *SyntaxError
			if errors.As(err, &se) {
				se.Line = n
			}
			return nil, err
		}
		lines = append(lines, l)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// ParseSegments is ReadSegments over a string, used for pasted input.
func ParseSegments(s string) ([]Line, error) {
	return ReadSegments(strings.NewReader(s))
}

// segmentFromVertices turns a two-vertex path into a validated Line.
func segmentFromVertices(src string, pts [][2]float64) (Line, error) {
	if len(pts) != 2 {
		return Line{}, &SyntaxError{Text: src, Err: fmt.Errorf("expected 2 vertices, got %d", len(pts))}
	}
	var v [4]int
	for i, f := range []float64{pts[0][0], pts[0][1], pts[1][0], pts[1][1]} {
		if f != float64(int(f)) {
			return Line{}, &SyntaxError{Text: src, Err: fmt.Errorf("non-integer coordinate %g", f)}
		}
		v[i] = int(f)
	}
	l := Line{Start: Point{X: v[0], Y: v[1]}, End: Point{X: v[2], Y: v[3]}}
	if err := l.Validate(); err != nil {
		return Line{}, &SyntaxError{Text: src, Err: err}
	}
	return l, nil
}
