package scheduler

import (
	"sort"
	"time"

	"github.com/vfg2006/ads-mirror-api/internal/domain"
)

// Diff compara dois snapshots. Só entidades presentes nos dois geram
// mudança; criações e remoções não são eventos de alteração.
func Diff(previous, current domain.Snapshot, at time.Time) []domain.ChangeEvent {
	keys := make([]string, 0, len(current))
	for key := range current {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	changes := make([]domain.ChangeEvent, 0)
	for _, key := range keys {
		before, ok := previous[key]
		if !ok {
			continue
		}
		after := current[key]

		if before.Status == after.Status &&
			before.EffectiveStatus == after.EffectiveStatus &&
			before.Budget == after.Budget {
			continue
		}

		changes = append(changes, domain.ChangeEvent{
			Kind:               after.Kind,
			ID:                 after.ID,
			AccountID:          after.AccountID,
			OldStatus:          before.Status,
			NewStatus:          after.Status,
			OldEffectiveStatus: before.EffectiveStatus,
			NewEffectiveStatus: after.EffectiveStatus,
			OldBudget:          before.Budget,
			NewBudget:          after.Budget,
			DetectedAt:         at,
		})
	}

	return changes
}
