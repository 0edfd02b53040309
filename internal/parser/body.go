package parser

import "regexp"

// RawPremio is one winning-ticket line, untyped. Vendedor, Ciudad and
// Departamento are filled in later by SplitVendidoPor; nil means the segment
// was missing from the free text.
type RawPremio struct {
	NumeroPremiado string
	Letras         string
	Monto          string
	VendidoPor     string

	Vendedor     *string
	Ciudad       *string
	Departamento *string
}

// premioLineRe matches one prize line: ticket number, an optional letters
// code (two letters minimum, so a lone Q currency marker is never taken for
// one), the amount (optionally Q-prefixed, with thousands commas) and the
// trailing "vendido por" free text.
var premioLineRe = regexp.MustCompile(`^\s*(\d+)\s+(?:([A-Za-zÑñ]{2,5})\s+)?(?:Q\.?\s*)?([\d,]+(?:\.\d{1,2})?)\s+(\S.*?)\s*$`)

// ParseBody extracts one RawPremio per line matching the prize-line shape.
// Lines that do not match are skipped; sparse or irregular trailing content
// never fails the file.
func ParseBody(lines []string) []RawPremio {
	var premios []RawPremio
	for _, line := range lines {
		m := premioLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		premios = append(premios, RawPremio{
			NumeroPremiado: m[1],
			Letras:         m[2],
			Monto:          m[3],
			VendidoPor:     m[4],
		})
	}
	return premios
}
