package service

import (
	"math"

	"credit-planner/domain"
)

// roundTo2Decimals redondea un float64 a 2 decimales
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// CreditService computes amortization schedules for a fixed-rate credit.
type CreditService struct {
	investment *InvestmentService
}

// NewCreditService creates a new CreditService with the given investment model.
func NewCreditService(investment *InvestmentService) *CreditService {
	return &CreditService{investment: investment}
}

// monthlyPayment is the unique payment such that `months` equal payments
// fully amortize `amount` at `monthlyRate` per period. With a zero rate the
// schedule degenerates to straight-line repayment.
func (s *CreditService) monthlyPayment(amount, monthlyRate float64, months int) float64 {
	if monthlyRate == 0 {
		return amount / float64(months)
	}

	rateFactor := math.Pow(1+monthlyRate, float64(months))
	return amount * (monthlyRate * rateFactor) / (rateFactor - 1)
}

// ComputeStandardTerm returns the fixed monthly payment and the nominal total
// cost for a fully amortizing credit over termYears. The payment is rounded
// to cents first so the total does not carry sub-cent artifacts across terms.
func (s *CreditService) ComputeStandardTerm(
	amount float64,
	monthlyRate float64,
	termYears int,
) domain.PaymentSchedule {

	months := termYears * MonthsPerYear
	payment := roundTo2Decimals(s.monthlyPayment(amount, monthlyRate, months))

	return domain.PaymentSchedule{
		MonthlyPayment: payment,
		TotalCost:      roundTo2Decimals(payment * float64(months)),
	}
}

// ComputeOverpaymentTerm front-loads a fixed acceptable budget and simulates
// the payoff month by month, possibly finishing before the nominal term. The
// budget freed up after an early payoff is reinvested at investmentRatePercent
// for the months left in the nominal term, and the investment gain offsets the
// total cost. Inflation adjustment of this schedule uses the nominal term,
// not the actual payoff time; the sweep applies that horizon uniformly.
func (s *CreditService) ComputeOverpaymentTerm(
	amount float64,
	monthlyRate float64,
	termYears int,
	acceptablePayment float64,
	investmentRatePercent float64,
) (domain.OverpaymentSchedule, error) {

	standard := s.ComputeStandardTerm(amount, monthlyRate, termYears)
	totalMonths := termYears * MonthsPerYear

	// Si el presupuesto no supera la cuota requerida, el sobrepago no cambia nada
	if acceptablePayment <= standard.MonthlyPayment {
		return domain.OverpaymentSchedule{
			MonthlyPayment:    standard.MonthlyPayment,
			TotalCost:         standard.TotalCost,
			InvestmentBalance: 0,
			MonthsToPayoff:    totalMonths,
		}, nil
	}

	remainingBalance := amount
	totalPaid := 0.0
	month := 0

	// Simular pagos mes a mes hasta saldar el crédito; el contador de meses
	// acota el lazo aunque el pago nunca alcance a saldarlo
	for remainingBalance > BalanceTolerance && month < totalMonths {
		interestPortion := remainingBalance * monthlyRate
		principalPortion := acceptablePayment - interestPortion

		// El pago no cubre ni el interés: el crédito no se salda a este nivel
		if principalPortion <= 0 {
			break
		}

		remainingBalance -= principalPortion
		totalPaid += acceptablePayment
		month++
	}

	investmentBalance := 0.0
	remainingMonths := totalMonths - month
	if remainingMonths > 0 && remainingBalance <= BalanceTolerance {
		balance, err := s.investment.ComputeBalance(
			0,
			acceptablePayment,
			investmentRatePercent,
			float64(remainingMonths)/MonthsPerYear,
		)
		if err != nil {
			return domain.OverpaymentSchedule{}, err
		}
		investmentBalance = balance
	}

	return domain.OverpaymentSchedule{
		MonthlyPayment:    acceptablePayment,
		TotalCost:         roundTo2Decimals(totalPaid - investmentBalance),
		InvestmentBalance: investmentBalance,
		MonthsToPayoff:    month,
	}, nil
}
