package tilegrid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrMalformedToken = errors.New("malformed tile token")
	ErrShortSource    = errors.New("tile source shorter than grid")
	ErrExcessTokens   = errors.New("tile source longer than grid")
	ErrSourceMismatch = errors.New("visual and behavior sources differ in length")
)

// LoadError describes how a tile source was degraded while loading. The grid
// returned alongside it is still usable: cells that were not read are Air.
type LoadError struct {
	Source    string // "visual" or "behavior"
	Expected  int    // width*height
	Read      int    // tokens accepted before reading stopped
	Line      int    // line of the malformed token, 0 if none
	Token     string // the malformed token, if any
	Mismatch  bool   // visual and behavior token counts disagree
	Visual    int    // tokens accepted from the visual source
	Truncated bool
	Excess    bool
	ReadErr   error // underlying I/O error, if any
}

func (e *LoadError) Error() string {
	var parts []string
	if e.Token != "" {
		parts = append(parts, fmt.Sprintf("%s source line %d: bad token %q", e.Source, e.Line, e.Token))
	}
	if e.Truncated {
		parts = append(parts, fmt.Sprintf("%s source has %d of %d cells", e.Source, e.Read, e.Expected))
	}
	if e.Excess {
		parts = append(parts, fmt.Sprintf("%s source has more than %d cells", e.Source, e.Expected))
	}
	if e.Mismatch {
		parts = append(parts, fmt.Sprintf("visual source has %d cells, behavior source %d", e.Visual, e.Read))
	}
	if e.ReadErr != nil {
		parts = append(parts, e.ReadErr.Error())
	}
	if len(parts) == 0 {
		return "tile source degraded"
	}
	return strings.Join(parts, "; ")
}

func (e *LoadError) Unwrap() []error {
	var errs []error
	if e.Token != "" {
		errs = append(errs, ErrMalformedToken)
	}
	if e.Truncated {
		errs = append(errs, ErrShortSource)
	}
	if e.Excess {
		errs = append(errs, ErrExcessTokens)
	}
	if e.Mismatch {
		errs = append(errs, ErrSourceMismatch)
	}
	if e.ReadErr != nil {
		errs = append(errs, e.ReadErr)
	}
	return errs
}

// Parse reads the two parallel row-encoded sources of a level. visual may be
// nil; its IDs are only counted. The returned grid is never nil. A non-nil
// error is a *LoadError and means some cells fell back to Air.
func Parse(visual, behavior io.Reader, width, height int) (*Grid, error) {
	expected := width * height
	if expected < 0 {
		expected = 0
	}

	codes, scan := readCodes(behavior, expected)
	grid := New(width, height, codes)

	lerr := scan.asError("behavior", expected)
	if visual != nil {
		_, vscan := readCodes(visual, expected)
		if vscan.read != scan.read {
			if lerr == nil {
				lerr = &LoadError{Source: "behavior", Expected: expected, Read: scan.read}
			}
			lerr.Mismatch = true
			lerr.Visual = vscan.read
		}
	}
	if lerr != nil {
		return grid, lerr
	}
	return grid, nil
}

// ParseString is Parse over in-memory sources.
func ParseString(visual, behavior string, width, height int) (*Grid, error) {
	var v io.Reader
	if visual != "" {
		v = strings.NewReader(visual)
	}
	return Parse(v, strings.NewReader(behavior), width, height)
}

type scanResult struct {
	read    int
	line    int
	token   string
	excess  bool
	readErr error
}

func (s scanResult) asError(source string, expected int) *LoadError {
	if s.token == "" && !s.excess && s.readErr == nil && s.read == expected {
		return nil
	}
	return &LoadError{
		Source:    source,
		Expected:  expected,
		Read:      s.read,
		Line:      s.line,
		Token:     s.token,
		Truncated: s.read < expected,
		Excess:    s.excess,
		ReadErr:   s.readErr,
	}
}

// readCodes stops at the first malformed token; everything after it is lost.
func readCodes(r io.Reader, limit int) ([]int, scanResult) {
	var res scanResult
	codes := make([]int, 0, limit)
	if r == nil {
		return codes, res
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		for _, raw := range strings.Split(sc.Text(), ",") {
			tok := strings.TrimSpace(raw)
			if tok == "" {
				continue
			}
			v, err := strconv.Atoi(tok)
			if err != nil || v < 0 {
				res.line = line
				res.token = tok
				res.read = len(codes)
				return codes, res
			}
			if len(codes) >= limit {
				res.excess = true
				res.read = len(codes)
				return codes, res
			}
			codes = append(codes, v)
		}
	}
	res.readErr = sc.Err()
	res.read = len(codes)
	return codes, res
}
