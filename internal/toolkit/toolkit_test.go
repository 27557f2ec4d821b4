package toolkit

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"NovaQuant/internal/model"
)

func TestNormalize_ClampsFields(t *testing.T) {
	raw := model.GrowthToolkitData{
		Version:               99,
		RiskProfile:           "reckless",
		HorizonYears:          200,
		EmergencyFundMonths:   -3,
		MaxDrawdownPct:        90,
		SavingsRatePct:        150,
		RebalanceThresholdPct: 0,
		TargetAllocation:      model.AllocationVector{Equities: 50, Bonds: 50, Cash: 50, Alternatives: 50},
		Simulation: model.SimulationParams{
			InitialCapital:      -100,
			AnnualContribution:  -50,
			ExpectedReturnPct:   99,
			AnnualVolatilityPct: -10,
			InflationPct:        40,
			TargetCapital:       0,
			Simulations:         7,
		},
	}

	out := Normalize(raw)
	if out.Version != 1 {
		t.Errorf("version %d, want 1", out.Version)
	}
	if out.RiskProfile != model.ProfileBalanced {
		t.Errorf("profile %s, want balanced", out.RiskProfile)
	}
	if out.HorizonYears != 50 {
		t.Errorf("horizon %d, want 50", out.HorizonYears)
	}
	if out.EmergencyFundMonths != 0 {
		t.Errorf("emergency months %d, want 0", out.EmergencyFundMonths)
	}
	if out.MaxDrawdownPct != 70 {
		t.Errorf("drawdown %v, want 70", out.MaxDrawdownPct)
	}
	if out.SavingsRatePct != 80 {
		t.Errorf("savings %v, want 80", out.SavingsRatePct)
	}
	if out.RebalanceThresholdPct != 1 {
		t.Errorf("threshold %v, want 1", out.RebalanceThresholdPct)
	}
	if math.Abs(out.TargetAllocation.Total()-100) > 1e-9 {
		t.Errorf("target allocation total %v, want 100", out.TargetAllocation.Total())
	}

	sim := out.Simulation
	if sim.InitialCapital != 0 || sim.AnnualContribution != 0 {
		t.Errorf("negative capital fields must floor at 0: %+v", sim)
	}
	if sim.ExpectedReturnPct != 30 {
		t.Errorf("return %v, want 30", sim.ExpectedReturnPct)
	}
	if sim.AnnualVolatilityPct != 0 {
		t.Errorf("volatility %v, want 0", sim.AnnualVolatilityPct)
	}
	if sim.InflationPct != 20 {
		t.Errorf("inflation %v, want 20", sim.InflationPct)
	}
	if sim.TargetCapital != 1 {
		t.Errorf("target %v, want 1", sim.TargetCapital)
	}
	if sim.Simulations != 100 {
		t.Errorf("simulations %d, want 100", sim.Simulations)
	}
}

func TestNormalize_KeepsValidData(t *testing.T) {
	if got := Normalize(Default()); !reflect.DeepEqual(got, Default()) {
		t.Errorf("normalizing the defaults must be a no-op: %+v", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	data, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if !reflect.DeepEqual(data, Default()) {
		t.Error("missing file should yield the defaults")
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	data, err := Load(path)
	if err != nil {
		t.Fatalf("corrupt file should not error: %v", err)
	}
	if !reflect.DeepEqual(data, Default()) {
		t.Error("corrupt file should yield the defaults")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	if err := os.WriteFile(path, []byte(`{"horizonYears": 30}`), 0644); err != nil {
		t.Fatal(err)
	}
	data, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if data.HorizonYears != 30 {
		t.Errorf("horizon %d, want 30", data.HorizonYears)
	}
	if data.RiskProfile != model.ProfileBalanced {
		t.Errorf("absent fields must keep defaults, got profile %s", data.RiskProfile)
	}
	if data.Simulation.Simulations != 1500 {
		t.Errorf("absent simulation fields must keep defaults, got %d", data.Simulation.Simulations)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	data := Default()
	data.HorizonYears = 25
	data.RiskProfile = model.ProfileGrowth
	data.Simulation.TargetCapital = 600000

	if err := Save(path, data); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(loaded, Normalize(data)) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, Normalize(data))
	}
}
