package repository

import (
	"database/sql"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"credit-planner/domain"
)

// SweepRepositorySQLite persists per-term summaries in a local SQLite file.
type SweepRepositorySQLite struct {
	db *sql.DB
}

// NewSweepRepositorySQLite opens (or creates) the database at path and makes
// sure the results table exists.
func NewSweepRepositorySQLite(path string) (*SweepRepositorySQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	createSQL := `
	CREATE TABLE IF NOT EXISTS sweep_results (
		sweep_id TEXT NOT NULL,
		mode TEXT NOT NULL,
		years INTEGER NOT NULL,
		amount REAL NOT NULL,
		annual_rate REAL NOT NULL,
		annual_inflation REAL NOT NULL,
		monthly_payment REAL NOT NULL,
		total_cost REAL NOT NULL,
		total_cost_adjusted REAL NOT NULL,
		investment_balance REAL NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := db.Exec(createSQL); err != nil {
		db.Close()
		return nil, err
	}

	return &SweepRepositorySQLite{db: db}, nil
}

// Save writes one row per term and mode, all under a fresh sweep id.
func (r *SweepRepositorySQLite) Save(
	params domain.CreditParameters,
	output domain.SweepOutput,
) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
	INSERT INTO sweep_results (
		sweep_id, mode, years, amount, annual_rate, annual_inflation,
		monthly_payment, total_cost, total_cost_adjusted, investment_balance
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	sweepID := uuid.NewString()
	modes := map[string]domain.TermResults{
		"plain":           output.Plain,
		"overpayment":     output.Overpayment,
		"with_investment": output.WithInvestment,
	}

	for mode, results := range modes {
		for years, result := range results {
			_, err := stmt.Exec(
				sweepID, mode, years,
				params.Amount, params.AnnualRate, params.AnnualInflation,
				result.MonthlyPayment, result.TotalCost,
				result.TotalCostAdjusted, result.InvestmentBalance,
			)
			if err != nil {
				tx.Rollback()
				return err
			}
		}
	}

	return tx.Commit()
}

// CountResults returns the number of stored per-term rows.
func (r *SweepRepositorySQLite) CountResults() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM sweep_results`).Scan(&count)
	return count, err
}

// Close releases the underlying database handle.
func (r *SweepRepositorySQLite) Close() error {
	return r.db.Close()
}
