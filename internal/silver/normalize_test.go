package silver

import (
	"errors"
	"testing"

	"github.com/loteria-data/silver-transformer/internal/parser"
)

func validSorteo() parser.RawSorteo {
	return parser.RawSorteo{
		NumeroSorteo:   "1234",
		FechaSorteo:    "01/06/2024",
		FechaCaducidad: "30/08/2024",
		PrimerPremio:   "48291",
		SegundoPremio:  "17305",
		TercerPremio:   "90467",
		Reintegros:     "3,9",
	}
}

func TestNormalize_SorteoRow(t *testing.T) {
	tables, err := Normalize(validSorteo(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tables.Year != 2024 {
		t.Errorf("Year = %d, want 2024", tables.Year)
	}
	if len(tables.Sorteos) != 1 {
		t.Fatalf("expected exactly one sorteo row, got %d", len(tables.Sorteos))
	}

	row := tables.Sorteos[0]
	if row.NumeroSorteo != 1234 {
		t.Errorf("NumeroSorteo = %d, want 1234", row.NumeroSorteo)
	}
	if row.PrimerPremio == nil || *row.PrimerPremio != 48291 {
		t.Errorf("PrimerPremio = %v, want 48291", row.PrimerPremio)
	}
	if row.ReintegroPrimerPremio == nil || *row.ReintegroPrimerPremio != 3 {
		t.Errorf("ReintegroPrimerPremio = %v, want 3", row.ReintegroPrimerPremio)
	}
	if row.ReintegroSegundoPremio == nil || *row.ReintegroSegundoPremio != 9 {
		t.Errorf("ReintegroSegundoPremio = %v, want 9", row.ReintegroSegundoPremio)
	}
	if row.ReintegroTercerPremio != nil {
		t.Errorf("ReintegroTercerPremio = %d, want nil", *row.ReintegroTercerPremio)
	}
}

func TestNormalize_PremioRowsCarryDrawNumber(t *testing.T) {
	premios := []parser.RawPremio{
		{NumeroPremiado: "48291", Letras: "PDE", Monto: "150,000.00", VendidoPor: "A - B - C"},
		{NumeroPremiado: "17305", Monto: "50,000.00", VendidoPor: "D - E - F"},
	}

	tables, err := Normalize(validSorteo(), premios)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tables.Premios) != 2 {
		t.Fatalf("expected 2 premio rows, got %d", len(tables.Premios))
	}
	for i, row := range tables.Premios {
		if row.NumeroSorteo != 1234 {
			t.Errorf("premio %d: NumeroSorteo = %d, want 1234", i, row.NumeroSorteo)
		}
	}
	if tables.Premios[0].Monto != 150000.0 {
		t.Errorf("Monto = %v, want 150000", tables.Premios[0].Monto)
	}
}

func TestNormalize_CapitalAliasForcesDepartamento(t *testing.T) {
	premios := []parser.RawPremio{
		{NumeroPremiado: "1", Monto: "100", VendidoPor: "V1 - DE ESTA CAPITAL - SACATEPEQUEZ"},
		{NumeroPremiado: "2", Monto: "100", VendidoPor: "V2 - de esta capital - PETEN"},
		{NumeroPremiado: "3", Monto: "100", VendidoPor: "V3 - COBAN - ALTA VERAPAZ"},
	}

	tables, err := Normalize(validSorteo(), premios)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 2; i++ {
		row := tables.Premios[i]
		if row.Departamento == nil || *row.Departamento != "GUATEMALA" {
			t.Errorf("premio %d: Departamento should be forced to GUATEMALA, got %v", i, row.Departamento)
		}
	}
	if d := tables.Premios[2].Departamento; d == nil || *d != "ALTA VERAPAZ" {
		t.Errorf("non-capital premio should keep its departamento, got %v", d)
	}
}

func TestNormalize_SentinelsBecomeNull(t *testing.T) {
	premios := []parser.RawPremio{
		{NumeroPremiado: "N/A", Letras: "", Monto: "n/a", VendidoPor: "N/A"},
	}
	// Decomposition of a sentinel vendido_por yields one segment; the sentinel
	// nulling then erases it.
	tables, err := Normalize(validSorteo(), premios)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	row := tables.Premios[0]
	if row.NumeroPremiado != nil {
		t.Errorf("NumeroPremiado = %d, want nil", *row.NumeroPremiado)
	}
	if row.Letras != nil {
		t.Errorf("Letras = %q, want nil", *row.Letras)
	}
	if row.Monto != 0.0 {
		t.Errorf("Monto = %v, want 0.0 (never null)", row.Monto)
	}
	if row.Vendedor != nil {
		t.Errorf("Vendedor = %q, want nil", *row.Vendedor)
	}
}

func TestNormalize_UnparseableDrawNumberDefaultsToZero(t *testing.T) {
	s := validSorteo()
	s.NumeroSorteo = "???"

	tables, err := Normalize(s, []parser.RawPremio{{NumeroPremiado: "1", Monto: "100", VendidoPor: "V - C - D"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tables.Sorteos[0].NumeroSorteo != 0 {
		t.Errorf("NumeroSorteo = %d, want 0", tables.Sorteos[0].NumeroSorteo)
	}
	if tables.Premios[0].NumeroSorteo != 0 {
		t.Errorf("premio NumeroSorteo = %d, want 0", tables.Premios[0].NumeroSorteo)
	}
}

func TestNormalize_NoUsableDrawDateFailsFile(t *testing.T) {
	s := validSorteo()
	s.FechaSorteo = "99/99/9999"

	_, err := Normalize(s, nil)
	if !errors.Is(err, ErrNoUsableDrawDate) {
		t.Errorf("expected ErrNoUsableDrawDate, got %v", err)
	}

	s.FechaSorteo = ""
	_, err = Normalize(s, nil)
	if !errors.Is(err, ErrNoUsableDrawDate) {
		t.Errorf("expected ErrNoUsableDrawDate for missing date, got %v", err)
	}
}

func TestNormalize_EmptyReintegros(t *testing.T) {
	s := validSorteo()
	s.Reintegros = ""

	tables, err := Normalize(s, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row := tables.Sorteos[0]
	if row.ReintegroPrimerPremio != nil || row.ReintegroSegundoPremio != nil || row.ReintegroTercerPremio != nil {
		t.Errorf("all reintegros should be nil, got %+v", row)
	}
}

func TestSplitReintegros_PadsToThree(t *testing.T) {
	tests := []struct {
		raw  string
		want [3]*int64
	}{
		{"3,9,5", [3]*int64{i64(3), i64(9), i64(5)}},
		{"3,9", [3]*int64{i64(3), i64(9), nil}},
		{"7", [3]*int64{i64(7), nil, nil}},
		{"a,b,c", [3]*int64{nil, nil, nil}},
		{"1,2,3,4", [3]*int64{i64(1), i64(2), i64(3)}},
	}

	for _, tt := range tests {
		got := splitReintegros(tt.raw)
		for i := range got {
			switch {
			case got[i] == nil && tt.want[i] == nil:
			case got[i] == nil || tt.want[i] == nil || *got[i] != *tt.want[i]:
				t.Errorf("splitReintegros(%q)[%d] = %v, want %v", tt.raw, i, got[i], tt.want[i])
			}
		}
	}
}

func i64(v int64) *int64 { return &v }
