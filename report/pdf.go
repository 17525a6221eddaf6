package report

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"credit-planner/domain"
	"credit-planner/service"
)

// Chart area in mm on an A4 landscape page.
const (
	chartLeft   = 25.0
	chartRight  = 270.0
	chartTop    = 45.0
	chartBottom = 170.0
)

type chartSeries struct {
	name    string
	results domain.TermResults
	r, g, b int
}

// PDFReport renders the sweep as an inflation-adjusted-cost-versus-term line
// chart, one series per calculated mode.
type PDFReport struct {
	pdf *fpdf.Fpdf
}

func NewPDFReport() *PDFReport {
	return &PDFReport{pdf: fpdf.New("L", "mm", "A4", "")}
}

// Generate writes the chart to outputPath.
func (r *PDFReport) Generate(
	params domain.CreditParameters,
	output domain.SweepOutput,
	outputPath string,
) error {
	r.pdf.AddPage()

	r.pdf.SetFont("Arial", "B", 16)
	r.pdf.CellFormat(0, 12, "Credit Length Estimation", "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "", 10)
	subtitle := fmt.Sprintf("Amount: %.2f | Rate: %.2f%% | Inflation: %.2f%%",
		params.Amount, params.AnnualRate, params.AnnualInflation)
	if params.WithInvestment {
		subtitle += fmt.Sprintf(" | Budget: %.2f | Investment rate: %.2f%%",
			params.AcceptablePayment, params.InvestmentRate)
	}
	r.pdf.CellFormat(0, 8, subtitle, "", 1, "C", false, 0, "")

	series := []chartSeries{
		{name: "Plain credit", results: output.Plain, r: 31, g: 119, b: 180},
	}
	if output.Overpayment != nil {
		series = append(series, chartSeries{
			name: "Overpayment", results: output.Overpayment, r: 255, g: 127, b: 14})
	}
	if output.WithInvestment != nil {
		series = append(series, chartSeries{
			name: "With investment", results: output.WithInvestment, r: 44, g: 160, b: 44})
	}

	r.drawChart(series)
	r.drawLegend(series)

	return r.pdf.OutputFileAndClose(outputPath)
}

func (r *PDFReport) drawChart(series []chartSeries) {
	minCost, maxCost := costRange(series)
	if maxCost == minCost {
		maxCost = minCost + 1
	}

	// Ejes
	r.pdf.SetDrawColor(0, 0, 0)
	r.pdf.SetLineWidth(0.4)
	r.pdf.Line(chartLeft, chartTop, chartLeft, chartBottom)
	r.pdf.Line(chartLeft, chartBottom, chartRight, chartBottom)

	// Marcas del eje X: una por plazo
	r.pdf.SetFont("Arial", "", 7)
	for years := service.MinTermYears; years <= service.MaxTermYears; years++ {
		x := xForYear(years)
		r.pdf.Line(x, chartBottom, x, chartBottom+1.5)
		r.pdf.SetXY(x-4, chartBottom+2)
		r.pdf.CellFormat(8, 4, fmt.Sprintf("%d", years), "", 0, "C", false, 0, "")
	}
	r.pdf.SetXY(chartLeft, chartBottom+7)
	r.pdf.CellFormat(chartRight-chartLeft, 5, "Term (years)", "", 0, "C", false, 0, "")

	// Marcas del eje Y
	const yTicks = 5
	for i := 0; i <= yTicks; i++ {
		value := minCost + (maxCost-minCost)*float64(i)/yTicks
		y := yForCost(value, minCost, maxCost)
		r.pdf.Line(chartLeft-1.5, y, chartLeft, y)
		r.pdf.SetXY(2, y-2)
		r.pdf.CellFormat(chartLeft-4, 4, fmt.Sprintf("%.0f", value), "", 0, "R", false, 0, "")
	}

	// Series
	r.pdf.SetLineWidth(0.6)
	for _, s := range series {
		r.pdf.SetDrawColor(s.r, s.g, s.b)
		prevSet := false
		var prevX, prevY float64
		for years := service.MinTermYears; years <= service.MaxTermYears; years++ {
			data, ok := s.results[years]
			if !ok {
				continue
			}
			x := xForYear(years)
			y := yForCost(data.TotalCostAdjusted, minCost, maxCost)
			if prevSet {
				r.pdf.Line(prevX, prevY, x, y)
			}
			prevX, prevY = x, y
			prevSet = true
		}
	}
}

func (r *PDFReport) drawLegend(series []chartSeries) {
	r.pdf.SetFont("Arial", "", 9)
	x := chartLeft + 5
	y := chartTop + 3
	for _, s := range series {
		r.pdf.SetDrawColor(s.r, s.g, s.b)
		r.pdf.SetLineWidth(0.8)
		r.pdf.Line(x, y+2, x+8, y+2)
		r.pdf.SetXY(x+10, y-1)
		r.pdf.CellFormat(45, 6, s.name, "", 0, "L", false, 0, "")
		y += 6
	}
}

func costRange(series []chartSeries) (float64, float64) {
	minCost := math.Inf(1)
	maxCost := math.Inf(-1)
	for _, s := range series {
		for _, data := range s.results {
			minCost = math.Min(minCost, data.TotalCostAdjusted)
			maxCost = math.Max(maxCost, data.TotalCostAdjusted)
		}
	}
	if math.IsInf(minCost, 1) {
		return 0, 1
	}
	return minCost, maxCost
}

func xForYear(years int) float64 {
	span := float64(service.MaxTermYears - service.MinTermYears)
	return chartLeft + (chartRight-chartLeft)*float64(years-service.MinTermYears)/span
}

func yForCost(cost, minCost, maxCost float64) float64 {
	return chartBottom - (chartBottom-chartTop)*(cost-minCost)/(maxCost-minCost)
}
