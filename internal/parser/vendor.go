package parser

import (
	"regexp"
	"strings"
)

var vendidoPorSepRe = regexp.MustCompile(`\s+-\s+`)

// SplitVendidoPor decomposes each premio's "vendido por" free text into
// vendedor, ciudad and departamento, expected as
// "<vendedor> - <ciudad> - <departamento>". Missing segments stay nil.
// Returns a new slice; the input is not mutated.
func SplitVendidoPor(premios []RawPremio) []RawPremio {
	out := make([]RawPremio, len(premios))
	for i, p := range premios {
		segments := vendidoPorSepRe.Split(p.VendidoPor, -1)
		p.Vendedor = segmentAt(segments, 0)
		p.Ciudad = segmentAt(segments, 1)
		p.Departamento = segmentAt(segments, 2)
		out[i] = p
	}
	return out
}

func segmentAt(segments []string, i int) *string {
	if i >= len(segments) {
		return nil
	}
	s := strings.TrimSpace(segments[i])
	if s == "" {
		return nil
	}
	return &s
}
