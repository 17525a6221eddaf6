package domain

// CreditParameters is the validated input for one term sweep. The optional
// fields are only meaningful when WithInvestment is true; absence of the
// optional input keys disables the overpayment and investment modes.
type CreditParameters struct {
	Amount            float64 `json:"amount"`
	AnnualRate        float64 `json:"annual_rate"`
	AnnualInflation   float64 `json:"annual_inflation"`
	AcceptablePayment float64 `json:"acceptable_payment,omitempty"`
	InvestmentRate    float64 `json:"investment_rate,omitempty"`
	WithInvestment    bool    `json:"with_investment,omitempty"`
}

// TermResult holds the figures for a single term, all at cent precision.
// InvestmentBalance is 0 for the plain schedule.
type TermResult struct {
	MonthlyPayment    float64 `json:"monthly_payment"`
	TotalCost         float64 `json:"total_cost"`
	TotalCostAdjusted float64 `json:"total_cost_adjusted"`
	InvestmentBalance float64 `json:"investment_balance"`
}

// TermResults maps term length in years to its result.
type TermResults map[int]TermResult

// SweepOutput collects the results of every calculated mode. Overpayment and
// WithInvestment are nil when the sweep ran without an investment plan.
type SweepOutput struct {
	Plain          TermResults `json:"plain"`
	Overpayment    TermResults `json:"overpayment,omitempty"`
	WithInvestment TermResults `json:"with_investment,omitempty"`
}
