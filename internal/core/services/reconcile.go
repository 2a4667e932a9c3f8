package services

import (
	"sort"

	"github.com/custodia-labs/contentsync-cli/internal/core/domain"
	"github.com/custodia-labs/contentsync-cli/internal/logger"
)

// Plan is the output of reconciliation: three disjoint sets of work.
type Plan struct {
	// ToCreate holds candidates whose key is not persisted yet,
	// in reader order.
	ToCreate []domain.CandidateRecord

	// ToUpdate holds candidates whose key is already persisted,
	// in reader order. Updates are unconditional: no field-level
	// diffing, every matched key is overwritten.
	ToUpdate []domain.CandidateRecord

	// ToDelete holds persisted source IDs absent from the candidate
	// set. Sorted for determinism; no ordering is guaranteed to callers.
	ToDelete []string
}

// IsEmpty reports whether the plan contains no work.
func (p *Plan) IsEmpty() bool {
	return len(p.ToCreate) == 0 && len(p.ToUpdate) == 0 && len(p.ToDelete) == 0
}

// Reconcile diffs candidate records against the persisted identity set.
// It is a pure computation: no store access, no side effects beyond a
// debug log for dropped duplicate candidates.
//
// A duplicate candidate key within one run follows the same policy as
// duplicate header columns: the first occurrence wins and later ones
// are dropped.
func Reconcile(candidates []domain.CandidateRecord, persisted []string) Plan {
	existing := make(map[string]bool, len(persisted))
	for _, id := range persisted {
		existing[id] = true
	}

	var plan Plan
	seen := make(map[string]bool, len(candidates))
	for _, cand := range candidates {
		if seen[cand.Key] {
			logger.Debug("Duplicate candidate key %q dropped (first occurrence wins)", cand.Key)
			continue
		}
		seen[cand.Key] = true

		if existing[cand.Key] {
			plan.ToUpdate = append(plan.ToUpdate, cand)
		} else {
			plan.ToCreate = append(plan.ToCreate, cand)
		}
	}

	for _, id := range persisted {
		if !seen[id] {
			plan.ToDelete = append(plan.ToDelete, id)
		}
	}
	sort.Strings(plan.ToDelete)

	return plan
}
