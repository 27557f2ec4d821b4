package toolkit

import (
	"math"

	"NovaQuant/internal/calculator"
	"NovaQuant/internal/model"
)

// Default returns the planning snapshot used when nothing was saved yet.
func Default() model.GrowthToolkitData {
	return model.GrowthToolkitData{
		Version:               1,
		RiskProfile:           model.ProfileBalanced,
		HorizonYears:          20,
		EmergencyFundMonths:   6,
		MaxDrawdownPct:        25,
		SavingsRatePct:        18,
		RebalanceThresholdPct: 4,
		TargetAllocation:      model.AllocationVector{Equities: 60, Bonds: 25, Cash: 10, Alternatives: 5},
		CurrentAllocation:     model.AllocationVector{Equities: 60, Bonds: 20, Cash: 15, Alternatives: 5},
		Simulation: model.SimulationParams{
			InitialCapital:      25000,
			AnnualContribution:  9000,
			ExpectedReturnPct:   7,
			AnnualVolatilityPct: 14,
			InflationPct:        2,
			TargetCapital:       450000,
			Simulations:         1500,
		},
	}
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Normalize re-clamps every numeric field to its documented bound and
// rescales both allocations. The snapshot comes from untrusted client
// storage, so this runs on every load and every save.
func Normalize(raw model.GrowthToolkitData) model.GrowthToolkitData {
	out := raw
	out.Version = 1
	if !out.RiskProfile.Valid() {
		out.RiskProfile = model.ProfileBalanced
	}
	out.HorizonYears = clampInt(out.HorizonYears, 3, 50)
	out.EmergencyFundMonths = clampInt(out.EmergencyFundMonths, 0, 24)
	out.MaxDrawdownPct = calculator.Clamp(out.MaxDrawdownPct, 5, 70)
	out.SavingsRatePct = calculator.Clamp(out.SavingsRatePct, 0, 80)
	out.RebalanceThresholdPct = calculator.Clamp(out.RebalanceThresholdPct, 1, 20)
	out.TargetAllocation = calculator.NormalizeAllocation(out.TargetAllocation)
	out.CurrentAllocation = calculator.NormalizeAllocation(out.CurrentAllocation)

	sim := &out.Simulation
	sim.InitialCapital = math.Max(0, sim.InitialCapital)
	sim.AnnualContribution = math.Max(0, sim.AnnualContribution)
	sim.ExpectedReturnPct = calculator.Clamp(sim.ExpectedReturnPct, -20, 30)
	sim.AnnualVolatilityPct = calculator.Clamp(sim.AnnualVolatilityPct, 0, 60)
	sim.InflationPct = calculator.Clamp(sim.InflationPct, -5, 20)
	sim.TargetCapital = math.Max(1, sim.TargetCapital)
	sim.Simulations = clampInt(sim.Simulations, 100, 10000)

	return out
}
