package trading

import (
	"testing"

	"NovaQuant/internal/model"
)

func TestPositionWithMarket_Long(t *testing.T) {
	quotes := &fixedSource{priceCents: 12_000}
	view := PositionWithMarket(model.Position{
		Symbol: "AAPL", Quantity: qty(10), AvgPriceCents: 10_000,
	}, quotes)

	if view.MarketPriceCents != 12_000 {
		t.Errorf("market price %d", view.MarketPriceCents)
	}
	if view.MarketValueCents != 120_000 {
		t.Errorf("market value %d, want 120000", view.MarketValueCents)
	}
	if view.UnrealizedPnlCents != 20_000 {
		t.Errorf("unrealized %d, want 20000", view.UnrealizedPnlCents)
	}
}

func TestPositionWithMarket_ShortCarriesSign(t *testing.T) {
	quotes := &fixedSource{priceCents: 12_000}
	view := PositionWithMarket(model.Position{
		Symbol: "AAPL", Quantity: qty(-10), AvgPriceCents: 10_000,
	}, quotes)

	if view.MarketValueCents != -120_000 {
		t.Errorf("short market value %d, want -120000", view.MarketValueCents)
	}
	// The price rose against the short.
	if view.UnrealizedPnlCents != -20_000 {
		t.Errorf("short unrealized %d, want -20000", view.UnrealizedPnlCents)
	}
}

func TestBuildAccountSummary(t *testing.T) {
	quotes := &fixedSource{priceCents: 10_000}
	positions := []model.Position{
		{Symbol: "AAPL", Quantity: qty(5), AvgPriceCents: 9_000},
		{Symbol: "MSFT", Quantity: qty(-2), AvgPriceCents: 11_000},
	}

	sum := BuildAccountSummary(500_000, 12_345, positions, quotes)
	if sum.PositionsValueCents != 30_000 {
		t.Errorf("positions value %d, want 30000", sum.PositionsValueCents)
	}
	if sum.EquityCents != 530_000 {
		t.Errorf("equity %d, want 530000", sum.EquityCents)
	}
	if sum.CashCents != 500_000 || sum.RealizedPnlCents != 12_345 {
		t.Errorf("summary %+v", sum)
	}
}
