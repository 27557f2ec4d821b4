package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"NovaQuant/internal/model"
)

func TestFileStore_SeedsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "paper.json")
	fs := NewFileStore(path, 7_500_000)

	st, err := fs.Load()
	if err != nil {
		t.Fatal(err)
	}
	if st.CashCents != 7_500_000 {
		t.Errorf("cash %d, want 7500000", st.CashCents)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("first load must persist the seeded document: %v", err)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paper.json")
	fs := NewFileStore(path, 10_000_000)

	st, err := fs.Load()
	if err != nil {
		t.Fatal(err)
	}
	st.CashCents = 9_000_000
	st.RealizedPnlCents = 4_500
	st.Positions = []model.Position{
		{Symbol: "AAPL", Quantity: decimal.RequireFromString("2.5"), AvgPriceCents: 10_000},
	}
	if err := fs.Save(st); err != nil {
		t.Fatal(err)
	}

	loaded, err := fs.Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.CashCents != 9_000_000 || loaded.RealizedPnlCents != 4_500 {
		t.Errorf("loaded %+v", loaded)
	}
	if len(loaded.Positions) != 1 {
		t.Fatalf("expected 1 position, got %d", len(loaded.Positions))
	}
	if !loaded.Positions[0].Quantity.Equal(decimal.RequireFromString("2.5")) {
		t.Errorf("fractional quantity lost: %s", loaded.Positions[0].Quantity)
	}
}

func TestFileStore_CorruptFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paper.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileStore(path, 1_000_000).Load(); err == nil {
		t.Error("corrupt trading documents must surface an error, not silently reset")
	}
}

func TestMemoryStore_LoadReturnsCopy(t *testing.T) {
	ms := NewMemoryStore(1_000_000)
	st, err := ms.Load()
	if err != nil {
		t.Fatal(err)
	}
	st.CashCents = 0

	again, err := ms.Load()
	if err != nil {
		t.Fatal(err)
	}
	if again.CashCents != 1_000_000 {
		t.Error("mutating a loaded snapshot must not affect the store")
	}
}
