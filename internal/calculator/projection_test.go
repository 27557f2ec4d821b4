package calculator

import (
	"math"
	"reflect"
	"testing"

	"NovaQuant/internal/model"
)

func TestDeterministicProjection(t *testing.T) {
	path := DeterministicProjection(1000, 100, 10, 3)
	if len(path) != 3 {
		t.Fatalf("expected 3 years, got %d", len(path))
	}
	want := []float64{1200, 1420, 1662}
	for i := range want {
		if math.Abs(path[i]-want[i]) > 1e-9 {
			t.Errorf("year %d: got %v, want %v", i, path[i], want[i])
		}
	}
}

func TestDeterministicProjection_Bounds(t *testing.T) {
	if got := DeterministicProjection(1000, 0, 5, 0); len(got) != 1 {
		t.Errorf("years below 1 should project one year, got %d", len(got))
	}
	// Negative starting capital is floored at zero.
	path := DeterministicProjection(-5000, 100, 5, 1)
	if path[0] != 100 {
		t.Errorf("expected contribution only, got %v", path[0])
	}
}

func simInput() model.GrowthSimulationInput {
	return model.GrowthSimulationInput{
		InitialCapital:      25000,
		AnnualContribution:  9000,
		ExpectedReturnPct:   7,
		AnnualVolatilityPct: 14,
		Years:               20,
		InflationPct:        2,
		TargetCapital:       450000,
		Simulations:         500,
		Seed:                42,
	}
}

func TestMonteCarloProjection_Deterministic(t *testing.T) {
	a := MonteCarloProjection(simInput())
	b := MonteCarloProjection(simInput())
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed and inputs must produce identical results")
	}

	in := simInput()
	in.Seed = 43
	c := MonteCarloProjection(in)
	if a.NominalP50 == c.NominalP50 {
		t.Error("different seeds should not share a P50")
	}
}

func TestMonteCarloProjection_ZeroSeedUsesDefault(t *testing.T) {
	in := simInput()
	in.Seed = 0
	withDefault := simInput()
	withDefault.Seed = DefaultSeed
	if !reflect.DeepEqual(MonteCarloProjection(in), MonteCarloProjection(withDefault)) {
		t.Error("seed 0 must fall back to the default seed")
	}
}

func TestMonteCarloProjection_PercentileOrdering(t *testing.T) {
	res := MonteCarloProjection(simInput())
	if !(res.NominalP10 <= res.NominalP50 && res.NominalP50 <= res.NominalP90) {
		t.Errorf("percentiles out of order: P10=%v P50=%v P90=%v", res.NominalP10, res.NominalP50, res.NominalP90)
	}
	if res.RealP50 >= res.NominalP50 {
		t.Errorf("positive inflation must discount P50: real=%v nominal=%v", res.RealP50, res.NominalP50)
	}
	want := res.NominalP50 / math.Pow(1.02, 20)
	if math.Abs(res.RealP50-want) > 1e-6 {
		t.Errorf("RealP50 got %v, want %v", res.RealP50, want)
	}
}

func TestMonteCarloProjection_Clamps(t *testing.T) {
	in := simInput()
	in.Years = 200
	in.Simulations = 5
	res := MonteCarloProjection(in)
	if len(res.MedianPath) != 80 {
		t.Errorf("years should clamp to 80, got path of %d", len(res.MedianPath))
	}

	in = simInput()
	in.Years = 0
	if res := MonteCarloProjection(in); len(res.MedianPath) != 1 {
		t.Errorf("years should clamp to 1, got path of %d", len(res.MedianPath))
	}
}

func TestMonteCarloProjection_Probability(t *testing.T) {
	in := simInput()
	in.TargetCapital = 1
	if res := MonteCarloProjection(in); res.ProbabilityToReachTarget != 1 {
		t.Errorf("trivial target should always be reached, got %v", res.ProbabilityToReachTarget)
	}

	in.TargetCapital = 1e15
	if res := MonteCarloProjection(in); res.ProbabilityToReachTarget != 0 {
		t.Errorf("unreachable target should never be reached, got %v", res.ProbabilityToReachTarget)
	}
}

func TestMonteCarloProjection_NoVolatilityMatchesDeterministic(t *testing.T) {
	in := simInput()
	in.AnnualVolatilityPct = 0
	res := MonteCarloProjection(in)
	det := DeterministicProjection(in.InitialCapital, in.AnnualContribution, in.ExpectedReturnPct, in.Years)
	for year := range det {
		if math.Abs(res.MedianPath[year]-det[year]) > 1e-6 {
			t.Fatalf("year %d: median path %v, deterministic %v", year, res.MedianPath[year], det[year])
		}
	}
}
