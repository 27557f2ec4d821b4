package calculator

import (
	"math"
	"sort"

	"NovaQuant/internal/model"
)

// DeterministicProjection compounds a fixed annual return with a yearly
// contribution and returns one balance per projected year.
func DeterministicProjection(initialCapital, annualContribution, expectedReturnPct float64, years int) []float64 {
	if years < 1 {
		years = 1
	}
	rate := expectedReturnPct / 100
	balance := math.Max(0, initialCapital)

	path := make([]float64, years)
	for year := 0; year < years; year++ {
		balance = balance*(1+rate) + annualContribution
		path[year] = balance
	}
	return path
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

// MonteCarloProjection simulates many yearly return paths around the expected
// return and summarizes terminal capital as P10/P50/P90 percentiles, the
// probability of reaching the target, and a per-year median path. Results are
// bit-identical across calls for the same seed and inputs.
func MonteCarloProjection(input model.GrowthSimulationInput) model.GrowthSimulationResult {
	years := clampInt(input.Years, 1, 80)
	sims := clampInt(input.Simulations, 50, 10000)
	mean := input.ExpectedReturnPct / 100
	sigma := math.Max(0, input.AnnualVolatilityPct/100)
	inflation := input.InflationPct / 100

	seed := input.Seed
	if seed == 0 {
		seed = DefaultSeed
	}
	rng := NewLCG(seed)

	finals := make([]float64, 0, sims)
	paths := make([][]float64, 0, sims)
	successes := 0

	for sim := 0; sim < sims; sim++ {
		balance := math.Max(0, input.InitialCapital)
		path := make([]float64, years)

		for year := 0; year < years; year++ {
			shock := rng.NormFloat64()
			yearlyReturn := mean + sigma*shock
			balance = balance*(1+yearlyReturn) + input.AnnualContribution
			path[year] = balance
		}

		finals = append(finals, balance)
		if balance >= input.TargetCapital {
			successes++
		}
		paths = append(paths, path)
	}

	sort.Float64s(finals)
	nominalP50 := Percentile(finals, 0.5)

	// Median path is a per-year cross-simulation statistic, not the path of
	// the median final balance.
	medianPath := make([]float64, years)
	yearValues := make([]float64, len(paths))
	for year := 0; year < years; year++ {
		for i, path := range paths {
			yearValues[i] = path[year]
		}
		sort.Float64s(yearValues)
		medianPath[year] = Percentile(yearValues, 0.5)
	}

	return model.GrowthSimulationResult{
		NominalP10:               Percentile(finals, 0.1),
		NominalP50:               nominalP50,
		NominalP90:               Percentile(finals, 0.9),
		RealP50:                  nominalP50 / math.Pow(1+inflation, float64(years)),
		ProbabilityToReachTarget: float64(successes) / float64(sims),
		MedianPath:               medianPath,
	}
}
