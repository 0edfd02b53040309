package parser

import "regexp"

// RawSorteo holds the draw-level fields exactly as they appear in the file.
// Fields the header never declared stay empty; the silver layer owns
// defaulting and type coercion.
type RawSorteo struct {
	NumeroSorteo   string
	FechaSorteo    string
	FechaCaducidad string
	PrimerPremio   string
	SegundoPremio  string
	TercerPremio   string
	Reintegros     string
}

// Header layout is fixed but line order and spacing drift between draws, so
// every field is matched independently against the whole header.
var (
	numeroSorteoRe   = regexp.MustCompile(`(?i)sorteo\s+(?:ordinario\s+|extraordinario\s+)?(?:no\.?|#)?\s*(\d+)(?:\s|$)`)
	fechaSorteoRe    = regexp.MustCompile(`(?i)fecha\s+del\s+sorteo\s*:?\s*(\d{2}/\d{2}/\d{4})`)
	fechaCaducidadRe = regexp.MustCompile(`(?i)fecha\s+de\s+caducidad\s*:?\s*(\d{2}/\d{2}/\d{4})`)
	primerPremioRe   = regexp.MustCompile(`(?i)primer\s+premio\s*:?\s*([\d,]+)`)
	segundoPremioRe  = regexp.MustCompile(`(?i)segundo\s+premio\s*:?\s*([\d,]+)`)
	tercerPremioRe   = regexp.MustCompile(`(?i)tercer\s+premio\s*:?\s*([\d,]+)`)
	reintegrosRe     = regexp.MustCompile(`(?i)reintegros\s*:?\s*([\d]+(?:\s*,\s*[\d]+)*)`)
)

// ParseHeader extracts the draw attributes from the header lines.
// A field whose pattern matches no line is left empty, never rejected.
func ParseHeader(lines []string) RawSorteo {
	var s RawSorteo
	for _, line := range lines {
		capture(&s.NumeroSorteo, numeroSorteoRe, line)
		capture(&s.FechaSorteo, fechaSorteoRe, line)
		capture(&s.FechaCaducidad, fechaCaducidadRe, line)
		capture(&s.PrimerPremio, primerPremioRe, line)
		capture(&s.SegundoPremio, segundoPremioRe, line)
		capture(&s.TercerPremio, tercerPremioRe, line)
		capture(&s.Reintegros, reintegrosRe, line)
	}
	return s
}

// capture stores the first submatch of re in dst, keeping the first hit when
// a pattern matches more than one header line.
func capture(dst *string, re *regexp.Regexp, line string) {
	if *dst != "" {
		return
	}
	if m := re.FindStringSubmatch(line); m != nil {
		*dst = m[1]
	}
}
