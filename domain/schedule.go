package domain

// PaymentSchedule is the outcome of a standard fully amortizing schedule.
type PaymentSchedule struct {
	MonthlyPayment float64
	TotalCost      float64
}

// OverpaymentSchedule is the outcome of paying a fixed acceptable budget
// above the required payment. MonthsToPayoff is the full nominal term when
// no overpayment takes place.
type OverpaymentSchedule struct {
	MonthlyPayment    float64
	TotalCost         float64
	InvestmentBalance float64
	MonthsToPayoff    int
}
