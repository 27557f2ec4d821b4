package trading

import (
	"github.com/shopspring/decimal"

	"NovaQuant/internal/model"
)

// PositionWithMarket enriches a position with the current synthetic quote.
// Market value and unrealized P&L carry the sign of the quantity, so short
// positions report negative market value.
func PositionWithMarket(pos model.Position, quotes QuoteSource) model.PositionView {
	quote := quotes.Quote(pos.Symbol)
	price := decimal.NewFromInt(quote.PriceCents)
	avg := decimal.NewFromInt(pos.AvgPriceCents)

	return model.PositionView{
		Position:           pos,
		MarketPriceCents:   quote.PriceCents,
		MarketValueCents:   price.Mul(pos.Quantity).Round(0).IntPart(),
		UnrealizedPnlCents: price.Sub(avg).Mul(pos.Quantity).Round(0).IntPart(),
	}
}

// BuildAccountSummary computes account equity as cash plus the market value
// of every open position.
func BuildAccountSummary(cashCents, realizedPnlCents int64, positions []model.Position, quotes QuoteSource) model.AccountSummary {
	var positionsValue int64
	for _, pos := range positions {
		positionsValue += PositionWithMarket(pos, quotes).MarketValueCents
	}
	return model.AccountSummary{
		CashCents:           cashCents,
		EquityCents:         cashCents + positionsValue,
		PositionsValueCents: positionsValue,
		RealizedPnlCents:    realizedPnlCents,
	}
}
