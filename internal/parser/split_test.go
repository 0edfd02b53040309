package parser

import (
	"errors"
	"testing"
)

func TestSplitHeaderBody_Valid(t *testing.T) {
	lines := []string{
		"LOTERIA SANTA LUCIA",
		"SORTEO ORDINARIO No. 1234",
		"FECHA DEL SORTEO: 01/06/2024",
		"NUMERO  LETRAS  MONTO  VENDIDO POR",
		"48291   PDE     150,000.00  AGENCIA EL TREBOL - DE ESTA CAPITAL - GUATEMALA",
		"17305   SDA     50,000.00   LOTERIA DON CHEPE - QUETZALTENANGO - QUETZALTENANGO",
	}

	header, body, err := SplitHeaderBody(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(header) != 4 {
		t.Errorf("expected 4 header lines, got %d", len(header))
	}
	if len(body) != 2 {
		t.Errorf("expected 2 body lines, got %d", len(body))
	}
	if header[len(header)-1] != "NUMERO  LETRAS  MONTO  VENDIDO POR" {
		t.Errorf("terminator should be last header line, got %q", header[len(header)-1])
	}
}

func TestSplitHeaderBody_DashedDivider(t *testing.T) {
	lines := []string{
		"SORTEO ORDINARIO No. 1234",
		"---- PREMIOS ----",
		"48291  150,000.00  VENDOR - CITY - DEPT",
	}

	header, body, err := SplitHeaderBody(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(header) != 2 || len(body) != 1 {
		t.Errorf("expected 2 header / 1 body lines, got %d / %d", len(header), len(body))
	}
}

func TestSplitHeaderBody_NoTerminator(t *testing.T) {
	lines := []string{
		"SORTEO ORDINARIO No. 1234",
		"FECHA DEL SORTEO: 01/06/2024",
	}

	_, _, err := SplitHeaderBody(lines)
	if !errors.Is(err, ErrNoBodySection) {
		t.Errorf("expected ErrNoBodySection, got %v", err)
	}
}

func TestSplitHeaderBody_EmptyInput(t *testing.T) {
	_, _, err := SplitHeaderBody(nil)
	if !errors.Is(err, ErrNoBodySection) {
		t.Errorf("expected ErrNoBodySection, got %v", err)
	}
}

func TestSplitHeaderBody_EmptyBody(t *testing.T) {
	lines := []string{
		"SORTEO ORDINARIO No. 1234",
		"NUMERO  LETRAS  MONTO  VENDIDO POR",
	}

	_, body, err := SplitHeaderBody(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(body) != 0 {
		t.Errorf("expected empty body, got %d lines", len(body))
	}
}
