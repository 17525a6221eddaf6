package service

import (
	"fmt"
	"math"
)

// InvestmentService models an account that compounds an initial lump sum and
// a recurring month-end contribution at a fixed annual rate.
type InvestmentService struct{}

// NewInvestmentService creates a new InvestmentService.
func NewInvestmentService() *InvestmentService {
	return &InvestmentService{}
}

// ComputeBalance returns the account balance after the given number of years
// (may be fractional), rounded to 2 decimals. Deterministic and free of side
// effects, safe for concurrent use.
func (s *InvestmentService) ComputeBalance(
	initialAmount float64,
	monthlyContribution float64,
	annualRatePercent float64,
	years float64,
) (float64, error) {

	// Validaciones: un valor negativo indica un defecto del llamador
	if initialAmount < 0 {
		return 0, fmt.Errorf("%w: monto inicial negativo", ErrInvalidArgument)
	}
	if monthlyContribution < 0 {
		return 0, fmt.Errorf("%w: aporte mensual negativo", ErrInvalidArgument)
	}
	if annualRatePercent < 0 {
		return 0, fmt.Errorf("%w: tasa de inversión negativa", ErrInvalidArgument)
	}
	if years <= 0 {
		return 0, fmt.Errorf("%w: el plazo debe ser positivo", ErrInvalidArgument)
	}

	monthlyRate := annualRatePercent / 100 / MonthsPerYear
	months := years * MonthsPerYear

	// Valor futuro del monto inicial
	initialFutureValue := initialAmount * math.Pow(1+monthlyRate, months)

	// Valor futuro de los aportes (anualidad ordinaria, aporte a fin de mes)
	var annuityFutureValue float64
	if monthlyRate == 0 {
		annuityFutureValue = monthlyContribution * months
	} else {
		annuityFutureValue = monthlyContribution *
			((math.Pow(1+monthlyRate, months) - 1) / monthlyRate)
	}

	return roundTo2Decimals(initialFutureValue + annuityFutureValue), nil
}
