package repository

import (
	"github.com/google/uuid"

	"credit-planner/domain"
)

// SweepRecord is one persisted sweep with its input parameters.
type SweepRecord struct {
	ID     string
	Params domain.CreditParameters
	Output domain.SweepOutput
}

// SweepRepositoryMemory is an in-memory implementation of SweepRepository.
type SweepRepositoryMemory struct {
	data []SweepRecord
}

// NewSweepRepositoryMemory creates a new in-memory sweep repository.
func NewSweepRepositoryMemory() *SweepRepositoryMemory {
	return &SweepRepositoryMemory{
		data: []SweepRecord{},
	}
}

// Save stores the sweep output in memory.
func (r *SweepRepositoryMemory) Save(
	params domain.CreditParameters,
	output domain.SweepOutput,
) error {
	r.data = append(r.data, SweepRecord{
		ID:     uuid.NewString(),
		Params: params,
		Output: output,
	})
	return nil
}

// Records returns the sweeps saved so far.
func (r *SweepRepositoryMemory) Records() []SweepRecord {
	return r.data
}
