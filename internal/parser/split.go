// Package parser turns raw sorteo text files into flat records.
// All functions are pure; no I/O happens here.
package parser

import (
	"errors"
	"regexp"
)

// ErrNoBodySection is returned when a file has no recognizable premios
// section terminator in its header.
var ErrNoBodySection = errors.New("no premios section found in file")

// bodyHeaderRe matches the line that closes the header: either the premios
// column header row or a dashed PREMIOS divider.
var bodyHeaderRe = regexp.MustCompile(`(?i)vendido\s+por|^\s*[-=]{2,}\s*premios\b`)

// SplitHeaderBody separates the lines of a sorteo file into the header
// section (draw-level facts, including the terminator line) and the body
// section (one line per prize).
func SplitHeaderBody(lines []string) (header []string, body []string, err error) {
	for i, line := range lines {
		if bodyHeaderRe.MatchString(line) {
			return lines[:i+1], lines[i+1:], nil
		}
	}
	return nil, nil, ErrNoBodySection
}
