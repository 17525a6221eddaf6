package report

import (
	"fmt"

	"github.com/leekchan/accounting"

	"credit-planner/domain"
	"credit-planner/service"
)

var money = accounting.Accounting{Symbol: "$", Precision: 2}

// PrintParameters echoes the sweep input to the console.
func PrintParameters(params domain.CreditParameters) {
	fmt.Printf("Credit amount: %s\n", money.FormatMoney(params.Amount))
	fmt.Printf("Credit rate: %.2f%%\n", params.AnnualRate)
	fmt.Printf("Expected inflation: %.2f%%\n", params.AnnualInflation)
	if params.WithInvestment {
		fmt.Printf("Acceptable monthly payment: %s\n", money.FormatMoney(params.AcceptablePayment))
		fmt.Printf("Investment interest rate: %.2f%%\n", params.InvestmentRate)
	}
}

// PrintSweep prints one line per term for every calculated mode. The output
// is read-only presentation; the result maps are never modified here.
func PrintSweep(output domain.SweepOutput) {
	fmt.Println("\nCredit calculations:")
	printResults(output.Plain)

	if output.Overpayment != nil {
		fmt.Println("\nCredit with overpayment calculations:")
		printResults(output.Overpayment)
	}
	if output.WithInvestment != nil {
		fmt.Println("\nCredit with investment calculations:")
		printResults(output.WithInvestment)
	}
}

func printResults(results domain.TermResults) {
	for years := service.MinTermYears; years <= service.MaxTermYears; years++ {
		data, ok := results[years]
		if !ok {
			continue
		}

		line := fmt.Sprintf(
			"%d years: Monthly payment: %s, Total cost: %s, Inflation-adjusted cost: %s",
			years,
			money.FormatMoney(data.MonthlyPayment),
			money.FormatMoney(data.TotalCost),
			money.FormatMoney(data.TotalCostAdjusted),
		)
		if data.InvestmentBalance != 0 {
			line += fmt.Sprintf(", Investment balance: %s",
				money.FormatMoney(data.InvestmentBalance))
		}
		fmt.Println(line)
	}
}
