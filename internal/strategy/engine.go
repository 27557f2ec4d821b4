package strategy

import (
	"NovaQuant/internal/calculator"
	"NovaQuant/internal/model"
)

// Evaluate combines the projector, allocation math, and guardrails into one
// advisory summary for a planning snapshot. debtRatio comes from the account
// collaborator (debt / assets); seed pins the Monte-Carlo stream.
func Evaluate(data model.GrowthToolkitData, debtRatio float64, seed int64) *model.PlanAdvice {
	deterministic := calculator.DeterministicProjection(
		data.Simulation.InitialCapital,
		data.Simulation.AnnualContribution,
		data.Simulation.ExpectedReturnPct,
		data.HorizonYears,
	)

	simulation := calculator.MonteCarloProjection(model.GrowthSimulationInput{
		InitialCapital:      data.Simulation.InitialCapital,
		AnnualContribution:  data.Simulation.AnnualContribution,
		ExpectedReturnPct:   data.Simulation.ExpectedReturnPct,
		AnnualVolatilityPct: data.Simulation.AnnualVolatilityPct,
		Years:               data.HorizonYears,
		InflationPct:        data.Simulation.InflationPct,
		TargetCapital:       data.Simulation.TargetCapital,
		Simulations:         data.Simulation.Simulations,
		Seed:                seed,
	})

	target := calculator.NormalizeAllocation(data.TargetAllocation)
	current := calculator.NormalizeAllocation(data.CurrentAllocation)
	actions := calculator.ComputeRebalanceActions(current, target, data.RebalanceThresholdPct)

	// Guardrails look at the target allocation: the question is whether the
	// plan being steered toward is coherent, not where the drift currently is.
	signals := BuildGuardrailSignals(GuardrailInput{
		RiskProfile:         data.RiskProfile,
		EmergencyFundMonths: float64(data.EmergencyFundMonths),
		DebtRatio:           debtRatio,
		SavingsRate:         data.SavingsRatePct / 100,
		Allocation:          target,
		AnnualVolatility:    data.Simulation.AnnualVolatilityPct,
	})

	return &model.PlanAdvice{
		Deterministic: deterministic,
		Simulation:    simulation,
		Actions:       actions,
		Signals:       signals,
	}
}
