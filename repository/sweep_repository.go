package repository

import "credit-planner/domain"

// SweepRepository persists the aggregate per-term summaries produced by a
// sweep. Saving is best-effort from the engine's point of view: a failure is
// logged by the caller, never propagated.
type SweepRepository interface {
	Save(params domain.CreditParameters, output domain.SweepOutput) error
}
