package input

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"credit-planner/domain"
)

// rawParameters mirrors the parameter file layout. Rates arrive as arrays;
// only the first element of each is used.
type rawParameters struct {
	CreditAmount      *float64  `json:"Credit amount"`
	CreditRate        []float64 `json:"Credit rate"`
	ExpectedInflation []float64 `json:"Expected inflation"`
	AcceptablePayment []float64 `json:"Acceptable monthly payment"`
	InvestmentRate    []float64 `json:"Investment interest rate"`
}

// ParseFile reads and validates a JSON parameter file. The keys "Acceptable
// monthly payment" and "Investment interest rate" are optional; when either
// is absent the overpayment and investment modes are unavailable rather than
// an error.
func ParseFile(filepath string) (domain.CreditParameters, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return domain.CreditParameters{}, fmt.Errorf(
			"no se pudo leer el archivo de entrada: %w", err)
	}

	var raw rawParameters
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.CreditParameters{}, fmt.Errorf(
			"error al decodificar el archivo de entrada: %w", err)
	}

	// Validar claves requeridas
	if raw.CreditAmount == nil {
		return domain.CreditParameters{}, errors.New(
			"falta 'Credit amount' en el archivo de entrada")
	}
	if len(raw.CreditRate) == 0 {
		return domain.CreditParameters{}, errors.New(
			"'Credit rate' está vacío o ausente, agregue al menos un valor")
	}
	if len(raw.ExpectedInflation) == 0 {
		return domain.CreditParameters{}, errors.New(
			"'Expected inflation' está vacío o ausente, agregue al menos un valor")
	}

	params := domain.CreditParameters{
		Amount:          *raw.CreditAmount,
		AnnualRate:      raw.CreditRate[0],
		AnnualInflation: raw.ExpectedInflation[0],
	}

	if len(raw.AcceptablePayment) > 0 && len(raw.InvestmentRate) > 0 {
		params.AcceptablePayment = raw.AcceptablePayment[0]
		params.InvestmentRate = raw.InvestmentRate[0]
		params.WithInvestment = true
	}

	return params, nil
}

// WriteExample writes a sample parameter file, useful to bootstrap a setup.
func WriteExample(filepath string) error {
	example := map[string]interface{}{
		"Credit amount":              600000,
		"Credit rate":                []float64{8.0},
		"Expected inflation":         []float64{3.0},
		"Acceptable monthly payment": []float64{6000},
		"Investment interest rate":   []float64{5.0},
	}

	data, err := json.MarshalIndent(example, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0o644)
}
