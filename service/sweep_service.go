package service

import (
	"encoding/json"
	"fmt"
	"log"
	"math"

	"credit-planner/domain"
	"credit-planner/repository"
)

// SweepService evaluates every candidate term between MinTermYears and
// MaxTermYears for the requested calculation modes.
type SweepService struct {
	credit     *CreditService
	investment *InvestmentService
	repo       repository.SweepRepository
	cache      repository.CacheRepository
}

// NewSweepService creates a new SweepService with the given collaborators.
func NewSweepService(
	credit *CreditService,
	investment *InvestmentService,
	repo repository.SweepRepository,
	cache repository.CacheRepository,
) *SweepService {
	return &SweepService{
		credit:     credit,
		investment: investment,
		repo:       repo,
		cache:      cache,
	}
}

// CalculateSweep produces one TermResult per year in [MinTermYears,
// MaxTermYears] for the plain schedule and, when an investment plan is
// present, for the overpayment and investment-of-surplus schedules as well.
// Each year is computed independently from the parameters alone.
func (s *SweepService) CalculateSweep(
	params domain.CreditParameters,
) (domain.SweepOutput, error) {

	if err := s.validate(params); err != nil {
		return domain.SweepOutput{}, err
	}

	// Buscar en caché antes de recalcular
	key := cacheKey(params)
	if cached, ok := s.cache.Get(key); ok {
		var output domain.SweepOutput
		if err := json.Unmarshal([]byte(cached), &output); err == nil {
			return output, nil
		}
		// entrada corrupta, se recalcula
	}

	output := domain.SweepOutput{Plain: make(domain.TermResults)}
	if params.WithInvestment {
		output.Overpayment = make(domain.TermResults)
		output.WithInvestment = make(domain.TermResults)
	}

	monthlyRate := params.AnnualRate / 100 / MonthsPerYear

	for years := MinTermYears; years <= MaxTermYears; years++ {
		standard := s.credit.ComputeStandardTerm(params.Amount, monthlyRate, years)

		output.Plain[years] = domain.TermResult{
			MonthlyPayment: standard.MonthlyPayment,
			TotalCost:      standard.TotalCost,
			TotalCostAdjusted: roundTo2Decimals(AdjustForInflation(
				standard.TotalCost, params.AnnualInflation, float64(years))),
			InvestmentBalance: 0,
		}

		if !params.WithInvestment {
			continue
		}

		overpayment, err := s.credit.ComputeOverpaymentTerm(
			params.Amount, monthlyRate, years,
			params.AcceptablePayment, params.InvestmentRate)
		if err != nil {
			return domain.SweepOutput{}, err
		}

		output.Overpayment[years] = domain.TermResult{
			MonthlyPayment: overpayment.MonthlyPayment,
			TotalCost:      overpayment.TotalCost,
			TotalCostAdjusted: roundTo2Decimals(AdjustForInflation(
				overpayment.TotalCost, params.AnnualInflation, float64(years))),
			InvestmentBalance: overpayment.InvestmentBalance,
		}

		// Modo con inversión del excedente: el crédito corre el plazo completo
		// y la diferencia entre el presupuesto y la cuota se invierte cada mes
		actualPayment := math.Max(params.AcceptablePayment, standard.MonthlyPayment)
		monthlyInvestment := math.Max(0, params.AcceptablePayment-standard.MonthlyPayment)

		balance, err := s.investment.ComputeBalance(
			0, monthlyInvestment, params.InvestmentRate, float64(years))
		if err != nil {
			return domain.SweepOutput{}, err
		}

		totalCost := roundTo2Decimals(standard.TotalCost - balance)
		output.WithInvestment[years] = domain.TermResult{
			MonthlyPayment: actualPayment,
			TotalCost:      totalCost,
			TotalCostAdjusted: roundTo2Decimals(AdjustForInflation(
				totalCost, params.AnnualInflation, float64(years))),
			InvestmentBalance: balance,
		}
	}

	// Guardar y cachear el resultado (no crítico si falla)
	if data, err := json.Marshal(output); err == nil {
		if err := s.cache.Set(key, string(data)); err != nil {
			log.Printf("Warning: failed to cache sweep result: %v", err)
		}
	}
	if err := s.repo.Save(params, output); err != nil {
		log.Printf("Warning: failed to save sweep result: %v", err)
	}

	return output, nil
}

// CalculateTerm computes the plain schedule for a single term in years.
func (s *SweepService) CalculateTerm(
	params domain.CreditParameters,
	years int,
) (domain.TermResult, error) {

	if err := s.validate(params); err != nil {
		return domain.TermResult{}, err
	}
	if years < MinTermYears || years > MaxTermYears {
		return domain.TermResult{}, fmt.Errorf(
			"%w: el plazo debe estar entre %d y %d años",
			ErrInvalidArgument, MinTermYears, MaxTermYears)
	}

	monthlyRate := params.AnnualRate / 100 / MonthsPerYear
	standard := s.credit.ComputeStandardTerm(params.Amount, monthlyRate, years)

	return domain.TermResult{
		MonthlyPayment: standard.MonthlyPayment,
		TotalCost:      standard.TotalCost,
		TotalCostAdjusted: roundTo2Decimals(AdjustForInflation(
			standard.TotalCost, params.AnnualInflation, float64(years))),
		InvestmentBalance: 0,
	}, nil
}

func (s *SweepService) validate(params domain.CreditParameters) error {
	// Validaciones
	if params.Amount < 0 {
		return fmt.Errorf("%w: monto inválido", ErrInvalidArgument)
	}
	if params.Amount > MaxCreditAmount {
		return fmt.Errorf("%w: monto excede el máximo permitido de $%.2f",
			ErrInvalidArgument, MaxCreditAmount)
	}
	if params.AnnualRate < 0 {
		return fmt.Errorf("%w: tasa inválida", ErrInvalidArgument)
	}
	if params.AnnualRate > MaxInterestRate {
		return fmt.Errorf("%w: tasa excede el máximo permitido de %.2f%%",
			ErrInvalidArgument, MaxInterestRate)
	}
	if params.AnnualInflation <= MinInflationRate {
		return fmt.Errorf("%w: inflación inválida", ErrInvalidArgument)
	}

	if !params.WithInvestment {
		return nil
	}

	if params.AcceptablePayment < 0 {
		return fmt.Errorf("%w: pago mensual aceptable inválido", ErrInvalidArgument)
	}
	if params.AcceptablePayment > MaxMonthlyPayment {
		return fmt.Errorf("%w: pago mensual excede el máximo permitido de $%.2f",
			ErrInvalidArgument, MaxMonthlyPayment)
	}
	if params.InvestmentRate < 0 {
		return fmt.Errorf("%w: tasa de inversión inválida", ErrInvalidArgument)
	}
	if params.InvestmentRate > MaxInterestRate {
		return fmt.Errorf("%w: tasa de inversión excede el máximo permitido de %.2f%%",
			ErrInvalidArgument, MaxInterestRate)
	}

	return nil
}

func cacheKey(params domain.CreditParameters) string {
	return fmt.Sprintf("sweep:%g:%g:%g:%g:%g:%t",
		params.Amount,
		params.AnnualRate,
		params.AnnualInflation,
		params.AcceptablePayment,
		params.InvestmentRate,
		params.WithInvestment,
	)
}
