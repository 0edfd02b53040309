package parser

import "testing"

func TestParseHeader_AllFields(t *testing.T) {
	lines := []string{
		"LOTERIA SANTA LUCIA",
		"SORTEO ORDINARIO No. 1234",
		"FECHA DEL SORTEO: 01/06/2024",
		"FECHA DE CADUCIDAD: 30/08/2024",
		"PRIMER PREMIO: 48291",
		"SEGUNDO PREMIO: 17305",
		"TERCER PREMIO: 90467",
		"REINTEGROS: 3,9,5",
	}

	s := ParseHeader(lines)

	if s.NumeroSorteo != "1234" {
		t.Errorf("NumeroSorteo = %q, want 1234", s.NumeroSorteo)
	}
	if s.FechaSorteo != "01/06/2024" {
		t.Errorf("FechaSorteo = %q, want 01/06/2024", s.FechaSorteo)
	}
	if s.FechaCaducidad != "30/08/2024" {
		t.Errorf("FechaCaducidad = %q, want 30/08/2024", s.FechaCaducidad)
	}
	if s.PrimerPremio != "48291" {
		t.Errorf("PrimerPremio = %q, want 48291", s.PrimerPremio)
	}
	if s.SegundoPremio != "17305" {
		t.Errorf("SegundoPremio = %q, want 17305", s.SegundoPremio)
	}
	if s.TercerPremio != "90467" {
		t.Errorf("TercerPremio = %q, want 90467", s.TercerPremio)
	}
	if s.Reintegros != "3,9,5" {
		t.Errorf("Reintegros = %q, want 3,9,5", s.Reintegros)
	}
}

func TestParseHeader_MissingFieldsStayEmpty(t *testing.T) {
	lines := []string{
		"SORTEO EXTRAORDINARIO No. 88",
		"FECHA DEL SORTEO: 15/12/2023",
	}

	s := ParseHeader(lines)

	if s.NumeroSorteo != "88" {
		t.Errorf("NumeroSorteo = %q, want 88", s.NumeroSorteo)
	}
	if s.FechaSorteo != "15/12/2023" {
		t.Errorf("FechaSorteo = %q, want 15/12/2023", s.FechaSorteo)
	}
	if s.FechaCaducidad != "" || s.PrimerPremio != "" || s.Reintegros != "" {
		t.Errorf("absent fields should stay empty, got %+v", s)
	}
}

func TestParseHeader_CaseAndSpacingVariants(t *testing.T) {
	lines := []string{
		"sorteo ordinario no.  2001",
		"Fecha del Sorteo 09/01/2025",
		"reintegros  4 , 2",
	}

	s := ParseHeader(lines)

	if s.NumeroSorteo != "2001" {
		t.Errorf("NumeroSorteo = %q, want 2001", s.NumeroSorteo)
	}
	if s.FechaSorteo != "09/01/2025" {
		t.Errorf("FechaSorteo = %q, want 09/01/2025", s.FechaSorteo)
	}
	if s.Reintegros != "4 , 2" {
		t.Errorf("Reintegros = %q, want %q", s.Reintegros, "4 , 2")
	}
}

func TestParseHeader_Empty(t *testing.T) {
	s := ParseHeader(nil)
	if s != (RawSorteo{}) {
		t.Errorf("expected zero RawSorteo, got %+v", s)
	}
}
