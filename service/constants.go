package service

const (
	MinTermYears  = 3
	MaxTermYears  = 30
	MonthsPerYear = 12

	MaxCreditAmount   = 1_000_000_000.0 // 1 billón
	MaxInterestRate   = 1000.0          // 1000% anual
	MaxMonthlyPayment = 100_000_000.0   // 100 millones
	MinInflationRate  = -100.0          // el factor de descuento debe ser positivo

	BalanceTolerance = 0.01 // tolerancia para considerar el crédito saldado
)
