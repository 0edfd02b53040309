package silver

import (
	"errors"
	"strings"

	"github.com/loteria-data/silver-transformer/internal/parser"
)

// ErrNoUsableDrawDate is returned when no fecha_sorteo in a file coerced to
// a valid date, leaving no year partition to derive.
var ErrNoUsableDrawDate = errors.New("no usable fecha_sorteo, cannot derive year partition")

// The department is forced whenever the city is the known capital alias,
// overriding whatever the vendor-field split derived.
const (
	capitalAlias        = "DE ESTA CAPITAL"
	capitalDepartamento = "GUATEMALA"
)

// Tables is the fully normalized output of one source file, tagged with the
// year partition derived from the draw date.
type Tables struct {
	Year    int
	Sorteos []SorteoRow
	Premios []PremioRow
}

// Normalize runs the normalization stages in their fixed order — vendor-field
// decomposition, capital-alias override, sentinel nulling and type coercion —
// and derives the partition year. Each stage produces new values; the raw
// records are not mutated.
func Normalize(sorteo parser.RawSorteo, premios []parser.RawPremio) (*Tables, error) {
	premios = parser.SplitVendidoPor(premios)
	premios = overrideCapital(premios)

	row := buildSorteoRow(sorteo)
	if row.FechaSorteo == nil {
		return nil, ErrNoUsableDrawDate
	}

	return &Tables{
		Year:    row.FechaSorteo.Year(),
		Sorteos: []SorteoRow{row},
		Premios: buildPremioRows(row.NumeroSorteo, premios),
	}, nil
}

// overrideCapital forces departamento to GUATEMALA wherever ciudad equals the
// capital alias, case-insensitively. Runs after decomposition and before
// coercion: it reads ciudad and writes departamento.
func overrideCapital(premios []parser.RawPremio) []parser.RawPremio {
	out := make([]parser.RawPremio, len(premios))
	for i, p := range premios {
		if p.Ciudad != nil && strings.EqualFold(strings.TrimSpace(*p.Ciudad), capitalAlias) {
			d := capitalDepartamento
			p.Departamento = &d
		}
		out[i] = p
	}
	return out
}

func buildSorteoRow(raw parser.RawSorteo) SorteoRow {
	numero, _ := CoerceInt64Default(raw.NumeroSorteo, 0)
	reintegros := splitReintegros(raw.Reintegros)

	return SorteoRow{
		NumeroSorteo:           numero,
		FechaSorteo:            CoerceDate(raw.FechaSorteo),
		FechaCaducidad:         CoerceDate(raw.FechaCaducidad),
		PrimerPremio:           CoerceInt64(raw.PrimerPremio),
		SegundoPremio:          CoerceInt64(raw.SegundoPremio),
		TercerPremio:           CoerceInt64(raw.TercerPremio),
		ReintegroPrimerPremio:  reintegros[0],
		ReintegroSegundoPremio: reintegros[1],
		ReintegroTercerPremio:  reintegros[2],
	}
}

// buildPremioRows coerces every premio column and stamps the owning sorteo's
// number on each row. Body lines carry no draw number of their own.
func buildPremioRows(numeroSorteo int64, premios []parser.RawPremio) []PremioRow {
	rows := make([]PremioRow, len(premios))
	for i, p := range premios {
		monto, _ := CoerceFloat64Default(p.Monto, 0.0)
		rows[i] = PremioRow{
			NumeroSorteo:   numeroSorteo,
			NumeroPremiado: CoerceInt64(p.NumeroPremiado),
			Letras:         CoerceString(p.Letras),
			Monto:          monto,
			Vendedor:       CoerceStringPtr(p.Vendedor),
			Ciudad:         CoerceStringPtr(p.Ciudad),
			Departamento:   CoerceStringPtr(p.Departamento),
		}
	}
	return rows
}

// splitReintegros splits the delimited reintegros text into exactly three
// nullable slots. Fewer than three values pads with nil, never an error.
func splitReintegros(raw string) [3]*int64 {
	var out [3]*int64
	if IsSentinel(raw) {
		return out
	}
	parts := strings.Split(raw, ",")
	for i := 0; i < len(out) && i < len(parts); i++ {
		out[i] = CoerceInt64(parts[i])
	}
	return out
}
