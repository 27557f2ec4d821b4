package calculator

import (
	"math"
	"sort"

	"NovaQuant/internal/model"
)

// fallbackAllocation is used when the input weights cannot be rescaled.
var fallbackAllocation = model.AllocationVector{Equities: 60, Bonds: 25, Cash: 10, Alternatives: 5}

// NormalizeAllocation rescales the four weights to sum to 100. If the total is
// zero or negative it returns the fixed fallback vector instead; there is no
// error path, the result is always a valid allocation.
func NormalizeAllocation(v model.AllocationVector) model.AllocationVector {
	total := v.Total()
	if total <= 0 {
		return fallbackAllocation
	}
	return model.AllocationVector{
		Equities:     v.Equities / total * 100,
		Bonds:        v.Bonds / total * 100,
		Cash:         v.Cash / total * 100,
		Alternatives: v.Alternatives / total * 100,
	}
}

// ComputeRebalanceActions compares the current allocation against the target
// and classifies each asset class by its drift. The result is sorted by
// descending absolute drift: the most misaligned asset always comes first,
// which callers rely on when presenting actions.
func ComputeRebalanceActions(current, target model.AllocationVector, thresholdPct float64) []model.RebalanceAction {
	entries := []struct {
		asset           string
		current, target float64
	}{
		{"equities", current.Equities, target.Equities},
		{"bonds", current.Bonds, target.Bonds},
		{"cash", current.Cash, target.Cash},
		{"alternatives", current.Alternatives, target.Alternatives},
	}

	actions := make([]model.RebalanceAction, 0, len(entries))
	for _, e := range entries {
		drift := e.current - e.target
		driftAbs := math.Abs(drift)

		action := model.RebalanceHold
		if driftAbs >= thresholdPct {
			if drift > 0 {
				action = model.RebalanceSell
			} else {
				action = model.RebalanceBuy
			}
		}

		priority := model.PriorityLow
		switch {
		case driftAbs >= 10:
			priority = model.PriorityHigh
		case driftAbs >= 6:
			priority = model.PriorityMedium
		}

		actions = append(actions, model.RebalanceAction{
			Asset:    e.asset,
			Current:  e.current,
			Target:   e.target,
			Drift:    drift,
			Action:   action,
			Priority: priority,
		})
	}

	sort.SliceStable(actions, func(i, j int) bool {
		return math.Abs(actions[i].Drift) > math.Abs(actions[j].Drift)
	})
	return actions
}
