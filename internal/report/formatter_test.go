package report

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"NovaQuant/internal/model"
	"NovaQuant/internal/strategy"
	"NovaQuant/internal/toolkit"
)

func TestFormatAdvice(t *testing.T) {
	data := toolkit.Default()
	advice := strategy.Evaluate(data, 0.2, 42)

	out := FormatAdvice(data, advice)
	for _, want := range []string{"Plan advice", "Monte-Carlo", "Rebalance actions", "Guardrails", "balanced"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestFormatOrder(t *testing.T) {
	filled := model.Order{
		Symbol: "AAPL", Side: model.SideBuy, Quantity: decimal.NewFromInt(2),
		Status: model.StatusFilled, FillPriceCents: 12_345,
	}
	if got := FormatOrder(filled); !strings.Contains(got, "filled buy 2 AAPL @ $123.45") {
		t.Errorf("unexpected line %q", got)
	}

	rejected := model.Order{
		Symbol: "GME", Side: model.SideBuy, Quantity: decimal.NewFromInt(1),
		Status: model.StatusRejected, Reason: "symbol GME is blocked by policy",
	}
	if got := FormatOrder(rejected); !strings.Contains(got, "blocked by policy") {
		t.Errorf("unexpected line %q", got)
	}
}

func TestFormatOverview(t *testing.T) {
	ov := model.TradingOverview{
		Account: model.AccountSummary{
			CashCents: 1_000_000, EquityCents: 1_120_000,
			PositionsValueCents: 120_000, RealizedPnlCents: 5_000,
		},
		Positions: []model.PositionView{{
			Position: model.Position{
				Symbol: "AAPL", Quantity: decimal.NewFromInt(10), AvgPriceCents: 10_000,
			},
			MarketPriceCents: 12_000, MarketValueCents: 120_000, UnrealizedPnlCents: 20_000,
		}},
	}

	out := FormatOverview(ov)
	for _, want := range []string{"$10,000", "$11,200", "AAPL", "$1,200"} {
		if !strings.Contains(out, want) {
			t.Errorf("overview missing %q:\n%s", want, out)
		}
	}
}
