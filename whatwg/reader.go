package whatwg

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// EntryReader streams (pointer, scalar) entries from a WHATWG index file.
//
// Index files hold one entry per line, two whitespace-separated integers
// (decimal or 0x-prefixed hex) with optional trailing commentary. Blank
// lines are skipped; leading '#' comment lines are collected and exposed
// through Comments.
type EntryReader struct {
	scanner  *bufio.Scanner
	comments []string
}

// NewEntryReader wraps an index file.
func NewEntryReader(r io.Reader) *EntryReader {
	return &EntryReader{scanner: bufio.NewScanner(r)}
}

// Next returns the next entry as (pointer, scalar).
// It returns io.EOF when exhausted.
func (r *EntryReader) Next() (uint32, uint32, error) {
	for r.scanner.Scan() {
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			r.comments = append(r.comments, line[1:])
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			return 0, 0, fmt.Errorf("whatwg: malformed index line %q", line)
		}
		pointer, err := strconv.ParseUint(parts[0], 0, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("whatwg: malformed pointer in line %q: %w", line, err)
		}
		scalar, err := strconv.ParseUint(parts[1], 0, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("whatwg: malformed code point in line %q: %w", line, err)
		}
		return uint32(pointer), uint32(scalar), nil
	}
	if err := r.scanner.Err(); err != nil {
		return 0, 0, err
	}
	return 0, 0, io.EOF
}

// Comments returns the commentary lines seen so far, without the leading
// '#'. Index files carry their commentary up front, so after the first Next
// the slice is complete.
func (r *EntryReader) Comments() []string {
	return r.comments
}
