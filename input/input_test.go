package input

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return path
}

func TestParseFile_FullParameters(t *testing.T) {

	path := writeFile(t, `{
		"Credit amount": 600000,
		"Credit rate": [8.0, 7.0],
		"Expected inflation": [3.0, 4.0],
		"Acceptable monthly payment": [6000],
		"Investment interest rate": [5.0]
	}`)

	params, err := ParseFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if params.Amount != 600000 {
		t.Errorf("expected amount 600000, got %.2f", params.Amount)
	}
	// Solo se usa el primer elemento de cada arreglo
	if params.AnnualRate != 8.0 {
		t.Errorf("expected rate 8.0, got %.2f", params.AnnualRate)
	}
	if params.AnnualInflation != 3.0 {
		t.Errorf("expected inflation 3.0, got %.2f", params.AnnualInflation)
	}
	if !params.WithInvestment {
		t.Error("expected investment plan to be enabled")
	}
	if params.AcceptablePayment != 6000 || params.InvestmentRate != 5.0 {
		t.Errorf("unexpected investment plan values: %.2f, %.2f",
			params.AcceptablePayment, params.InvestmentRate)
	}
}

func TestParseFile_OptionalKeysAbsent(t *testing.T) {

	path := writeFile(t, `{
		"Credit amount": 100000,
		"Credit rate": [5.0],
		"Expected inflation": [2.0]
	}`)

	params, err := ParseFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// La ausencia de las claves opcionales desactiva los modos de inversión
	if params.WithInvestment {
		t.Error("expected investment plan to be disabled")
	}
}

func TestParseFile_MissingRequiredKey(t *testing.T) {

	cases := []struct {
		name    string
		content string
	}{
		{"no credit amount", `{"Credit rate": [5.0], "Expected inflation": [2.0]}`},
		{"no credit rate", `{"Credit amount": 1000, "Expected inflation": [2.0]}`},
		{"empty credit rate", `{"Credit amount": 1000, "Credit rate": [], "Expected inflation": [2.0]}`},
		{"no inflation", `{"Credit amount": 1000, "Credit rate": [5.0]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseFile(writeFile(t, tc.content)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseFile_InvalidJSON(t *testing.T) {

	if _, err := ParseFile(writeFile(t, `{invalid-json}`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestParseFile_MissingFile(t *testing.T) {

	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteExample_RoundTrip(t *testing.T) {

	path := filepath.Join(t.TempDir(), "example.json")
	if err := WriteExample(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	params, err := ParseFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params.Amount != 600000 || !params.WithInvestment {
		t.Errorf("unexpected example parameters: %+v", params)
	}
}
