package strategy

import (
	"fmt"

	"NovaQuant/internal/model"
)

// GuardrailInput is the snapshot of financial ratios the rules evaluate.
type GuardrailInput struct {
	RiskProfile         model.RiskProfile
	EmergencyFundMonths float64
	DebtRatio           float64 // debt / assets
	SavingsRate         float64 // 0..1
	Allocation          model.AllocationVector
	AnnualVolatility    float64 // percent
}

// equitiesCapByProfile caps the equities weight per risk profile.
var equitiesCapByProfile = map[model.RiskProfile]float64{
	model.ProfileConservative: 45,
	model.ProfileBalanced:     65,
	model.ProfileGrowth:       80,
	model.ProfileAggressive:   95,
}

// BuildGuardrailSignals runs every rule against the snapshot. Rules are
// independent and append in table order, so several can fire at once. When
// none fire a single "plan coherent" info signal is emitted; callers never
// receive an empty slice.
func BuildGuardrailSignals(in GuardrailInput) []model.GuardrailSignal {
	var signals []model.GuardrailSignal

	switch {
	case in.EmergencyFundMonths < 3:
		signals = append(signals, model.GuardrailSignal{
			Level:       model.LevelCritical,
			Title:       "Emergency fund too small",
			Description: "Build at least 3 months of liquid expenses before taking more risk.",
		})
	case in.EmergencyFundMonths < 6:
		signals = append(signals, model.GuardrailSignal{
			Level:       model.LevelWarning,
			Title:       "Emergency fund below target",
			Description: "A 6-month cushion makes the long-term plan more robust.",
		})
	}

	switch {
	case in.DebtRatio > 0.45:
		signals = append(signals, model.GuardrailSignal{
			Level:       model.LevelCritical,
			Title:       "Debt load too high",
			Description: "Paying down debt should come before raising equity exposure.",
		})
	case in.DebtRatio > 0.30:
		signals = append(signals, model.GuardrailSignal{
			Level:       model.LevelWarning,
			Title:       "Debt load to watch",
			Description: "Keeping debt under 30% of assets improves the growth profile.",
		})
	}

	if in.SavingsRate < 0.15 {
		signals = append(signals, model.GuardrailSignal{
			Level:       model.LevelWarning,
			Title:       "Savings rate is low",
			Description: "A savings rate above 15% helps secure growth over 10+ years.",
		})
	}

	if cap, ok := equitiesCapByProfile[in.RiskProfile]; ok && in.Allocation.Equities > cap {
		signals = append(signals, model.GuardrailSignal{
			Level:       model.LevelWarning,
			Title:       "Equity allocation may be excessive",
			Description: fmt.Sprintf("For a %s profile, keep equities near or under %.0f%%.", in.RiskProfile, cap),
		})
	}

	switch {
	case in.AnnualVolatility > 22:
		signals = append(signals, model.GuardrailSignal{
			Level:       model.LevelCritical,
			Title:       "Expected volatility is high",
			Description: "The plan targets high volatility; re-check risk tolerance and the real horizon.",
		})
	case in.AnnualVolatility > 15:
		signals = append(signals, model.GuardrailSignal{
			Level:       model.LevelWarning,
			Title:       "Volatility to watch",
			Description: "Adding defensive assets would reduce potential drawdowns.",
		})
	}

	if len(signals) == 0 {
		signals = append(signals, model.GuardrailSignal{
			Level:       model.LevelInfo,
			Title:       "Plan coherent",
			Description: "The main guardrails hold for the current configuration.",
		})
	}

	return signals
}
