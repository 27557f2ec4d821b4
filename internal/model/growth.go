package model

// RiskProfile classifies the investor's risk tolerance.
type RiskProfile string

const (
	ProfileConservative RiskProfile = "conservative"
	ProfileBalanced     RiskProfile = "balanced"
	ProfileGrowth       RiskProfile = "growth"
	ProfileAggressive   RiskProfile = "aggressive"
)

// Valid reports whether p is one of the four known profiles.
func (p RiskProfile) Valid() bool {
	switch p {
	case ProfileConservative, ProfileBalanced, ProfileGrowth, ProfileAggressive:
		return true
	}
	return false
}

// AllocationVector holds portfolio weights per asset class, in percent.
type AllocationVector struct {
	Equities     float64 `json:"equities"`
	Bonds        float64 `json:"bonds"`
	Cash         float64 `json:"cash"`
	Alternatives float64 `json:"alternatives"`
}

// Total returns the sum of the four weights.
func (v AllocationVector) Total() float64 {
	return v.Equities + v.Bonds + v.Cash + v.Alternatives
}

// SimulationParams configures the Monte-Carlo capital projection.
type SimulationParams struct {
	InitialCapital      float64 `json:"initialCapital"`
	AnnualContribution  float64 `json:"annualContribution"`
	ExpectedReturnPct   float64 `json:"expectedReturnPct"`
	AnnualVolatilityPct float64 `json:"annualVolatilityPct"`
	InflationPct        float64 `json:"inflationPct"`
	TargetCapital       float64 `json:"targetCapital"`
	Simulations         int     `json:"simulations"`
}

// GrowthToolkitData is the planning configuration snapshot handed over by the
// client. Field values are untrusted until passed through toolkit.Normalize.
type GrowthToolkitData struct {
	Version               int              `json:"version"`
	RiskProfile           RiskProfile      `json:"riskProfile"`
	HorizonYears          int              `json:"horizonYears"`
	EmergencyFundMonths   int              `json:"emergencyFundMonths"`
	MaxDrawdownPct        float64          `json:"maxDrawdownPct"`
	SavingsRatePct        float64          `json:"savingsRatePct"`
	RebalanceThresholdPct float64          `json:"rebalanceThresholdPct"`
	TargetAllocation      AllocationVector `json:"targetAllocation"`
	CurrentAllocation     AllocationVector `json:"currentAllocation"`
	Simulation            SimulationParams `json:"simulation"`
}

// RebalanceKind is the suggested trade direction for one asset class.
type RebalanceKind string

const (
	RebalanceBuy  RebalanceKind = "buy"
	RebalanceSell RebalanceKind = "sell"
	RebalanceHold RebalanceKind = "hold"
)

// RebalancePriority ranks how urgent a rebalance action is.
type RebalancePriority string

const (
	PriorityLow    RebalancePriority = "low"
	PriorityMedium RebalancePriority = "medium"
	PriorityHigh   RebalancePriority = "high"
)

// RebalanceAction describes the drift of one asset class against its target.
type RebalanceAction struct {
	Asset    string            `json:"asset"`
	Current  float64           `json:"current"`
	Target   float64           `json:"target"`
	Drift    float64           `json:"drift"`
	Action   RebalanceKind     `json:"action"`
	Priority RebalancePriority `json:"priority"`
}

// SignalLevel is the severity of a guardrail signal.
type SignalLevel string

const (
	LevelInfo     SignalLevel = "info"
	LevelWarning  SignalLevel = "warning"
	LevelCritical SignalLevel = "critical"
)

// GuardrailSignal is one rule-engine finding about the plan's risk exposure.
type GuardrailSignal struct {
	Level       SignalLevel `json:"level"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
}

// GrowthSimulationInput parameterizes one Monte-Carlo run.
type GrowthSimulationInput struct {
	InitialCapital      float64
	AnnualContribution  float64
	ExpectedReturnPct   float64
	AnnualVolatilityPct float64
	Years               int
	InflationPct        float64
	TargetCapital       float64
	Simulations         int
	Seed                int64
}

// GrowthSimulationResult summarizes the distribution of simulated outcomes.
type GrowthSimulationResult struct {
	NominalP10               float64   `json:"nominalP10"`
	NominalP50               float64   `json:"nominalP50"`
	NominalP90               float64   `json:"nominalP90"`
	RealP50                  float64   `json:"realP50"`
	ProbabilityToReachTarget float64   `json:"probabilityToReachTarget"`
	MedianPath               []float64 `json:"medianPath"`
}

// PlanAdvice is the combined advisory output of the strategy engine.
type PlanAdvice struct {
	Deterministic []float64              `json:"deterministic"`
	Simulation    GrowthSimulationResult `json:"simulation"`
	Actions       []RebalanceAction      `json:"actions"`
	Signals       []GuardrailSignal      `json:"signals"`
}
