package service

import (
	"errors"
	"math"
	"testing"
)

func TestComputeBalance_AnnuityKnownValue(t *testing.T) {

	service := NewInvestmentService()

	// 1000 al mes, 6% anual, 10 años
	balance, err := service.ComputeBalance(0, 1000, 6.0, 10)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := 163879.35
	if math.Abs(balance-expected) > 0.01 {
		t.Errorf("expected %.2f, got %.2f", expected, balance)
	}
}

func TestComputeBalance_ZeroRate(t *testing.T) {

	service := NewInvestmentService()

	balance, err := service.ComputeBalance(500, 100, 0, 1)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Sin interés el balance es el monto inicial más los aportes
	expected := 500 + 100*12.0
	if balance != expected {
		t.Errorf("expected %.2f, got %.2f", expected, balance)
	}
}

func TestComputeBalance_FractionalYears(t *testing.T) {

	service := NewInvestmentService()

	balance, err := service.ComputeBalance(0, 1000, 0, 0.5)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if balance != 6000 {
		t.Errorf("expected 6000.00, got %.2f", balance)
	}
}

func TestComputeBalance_LumpSumOnly(t *testing.T) {

	service := NewInvestmentService()

	balance, err := service.ComputeBalance(10000, 0, 12.0, 1)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 12% anual es 1% mensual durante 12 meses
	expected := roundTo2Decimals(10000 * math.Pow(1.01, 12))
	if balance != expected {
		t.Errorf("expected %.2f, got %.2f", expected, balance)
	}
}

func TestComputeBalance_InvalidArguments(t *testing.T) {

	service := NewInvestmentService()

	cases := []struct {
		name                          string
		initial, monthly, rate, years float64
	}{
		{"negative initial amount", -1, 0, 5, 1},
		{"negative contribution", 0, -100, 5, 1},
		{"negative rate", 0, 100, -5, 1},
		{"zero years", 0, 100, 5, 0},
		{"negative years", 0, 100, 5, -2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.ComputeBalance(tc.initial, tc.monthly, tc.rate, tc.years)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}
