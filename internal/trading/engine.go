package trading

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"NovaQuant/internal/model"
)

// flatEpsilon is the quantity below which a position counts as closed.
var flatEpsilon = decimal.New(1, -8)

// ExecutePaperOrder resolves an order synchronously against the synthetic
// quote and the store's risk policy, and returns the order record plus a new
// store value. The caller's store is never mutated, so a rejected order
// leaves cash and positions untouched; only the order history grows.
//
// Policy violations resolve to Order{Status: rejected, Reason: ...}, never to
// an error: rejections are expected, user-visible outcomes that callers
// branch on.
func ExecutePaperOrder(store model.PaperTradingStore, input model.OrderInput, quotes QuoteSource) (model.Order, model.PaperTradingStore) {
	symbol := model.NormalizeSymbol(input.Symbol)
	order := model.Order{
		ID:              uuid.NewString(),
		Symbol:          symbol,
		Side:            input.Side,
		Type:            input.Type,
		Quantity:        input.Quantity,
		LimitPriceCents: input.LimitPriceCents,
		CreatedAt:       time.Now().UTC(),
	}

	record := func() model.PaperTradingStore {
		out := store.Clone()
		out.Orders = append([]model.Order{order}, out.Orders...)
		out.UpdatedAt = order.CreatedAt
		return out
	}
	reject := func(reason string) (model.Order, model.PaperTradingStore) {
		order.Status = model.StatusRejected
		order.Reason = reason
		return order, record()
	}

	if symbol == "" {
		return reject("symbol is required")
	}
	if input.Side != model.SideBuy && input.Side != model.SideSell {
		return reject(fmt.Sprintf("unknown order side %q", input.Side))
	}
	if input.Type != model.TypeMarket && input.Type != model.TypeLimit {
		return reject(fmt.Sprintf("unknown order type %q", input.Type))
	}
	if !input.Quantity.IsPositive() {
		return reject("quantity must be positive")
	}

	for _, blocked := range store.Policy.BlockedSymbols {
		if model.NormalizeSymbol(blocked) == symbol {
			return reject(fmt.Sprintf("symbol %s is blocked by policy", symbol))
		}
	}

	// Execution price: market orders take the synthetic quote, limit orders
	// only fill at a price at least as good as the limit.
	quote := quotes.Quote(symbol)
	priceCents := quote.PriceCents
	if input.Type == model.TypeLimit {
		if input.LimitPriceCents == nil {
			return reject("limit order requires a limit price")
		}
		limit := *input.LimitPriceCents
		if input.Side == model.SideBuy && priceCents > limit {
			return reject(fmt.Sprintf("limit price %d cents is below the market price %d cents", limit, priceCents))
		}
		if input.Side == model.SideSell && priceCents < limit {
			return reject(fmt.Sprintf("limit price %d cents is above the market price %d cents", limit, priceCents))
		}
	}

	price := decimal.NewFromInt(priceCents)
	notionalCents := price.Mul(input.Quantity).Round(0).IntPart()
	if notionalCents > store.Policy.MaxOrderNotionalCents {
		return reject(fmt.Sprintf("order notional %d cents exceeds the policy cap of %d cents",
			notionalCents, store.Policy.MaxOrderNotionalCents))
	}

	delta := input.Quantity
	if input.Side == model.SideSell {
		delta = delta.Neg()
	}
	resulting := positionQuantity(store.Positions, symbol).Add(delta)

	account := BuildAccountSummary(store.CashCents, store.RealizedPnlCents, store.Positions, quotes)
	maxValue := decimal.NewFromFloat(store.Policy.MaxPositionPct / 100).Mul(decimal.NewFromInt(account.EquityCents))
	if price.Mul(resulting.Abs()).GreaterThan(maxValue) {
		return reject(fmt.Sprintf("resulting position would exceed %.0f%% of account equity", store.Policy.MaxPositionPct))
	}

	if input.Side == model.SideSell && resulting.IsNegative() && !store.Policy.AllowShort {
		return reject("short sale is not allowed by policy")
	}

	order.Status = model.StatusFilled
	order.FillPriceCents = priceCents

	out := record()
	if input.Side == model.SideBuy {
		out.CashCents -= notionalCents
	} else {
		out.CashCents += notionalCents
	}
	applyFill(&out, symbol, delta, priceCents)
	return order, out
}

func positionQuantity(positions []model.Position, symbol string) decimal.Decimal {
	for _, pos := range positions {
		if pos.Symbol == symbol {
			return pos.Quantity
		}
	}
	return decimal.Zero
}

// applyFill folds an executed trade into the position list and realized P&L.
// Same-direction adds update the weighted-average cost basis; reducing or
// flipping trades realize P&L for the closed portion, and a flip reopens the
// residual at the execution price.
func applyFill(out *model.PaperTradingStore, symbol string, delta decimal.Decimal, priceCents int64) {
	idx := -1
	for i := range out.Positions {
		if out.Positions[i].Symbol == symbol {
			idx = i
			break
		}
	}

	price := decimal.NewFromInt(priceCents)
	if idx < 0 {
		out.Positions = append(out.Positions, model.Position{
			Symbol:        symbol,
			Quantity:      delta,
			AvgPriceCents: priceCents,
		})
		return
	}

	pos := out.Positions[idx]
	qty := pos.Quantity

	if qty.IsZero() || qty.Sign() == delta.Sign() {
		avg := decimal.NewFromInt(pos.AvgPriceCents)
		totalQty := qty.Abs().Add(delta.Abs())
		weighted := qty.Abs().Mul(avg).Add(delta.Abs().Mul(price)).Div(totalQty)
		pos.Quantity = qty.Add(delta)
		pos.AvgPriceCents = weighted.Round(0).IntPart()
		if pos.AvgPriceCents < 1 {
			pos.AvgPriceCents = 1
		}
		out.Positions[idx] = pos
		return
	}

	closed := decimal.Min(qty.Abs(), delta.Abs())
	perUnit := price.Sub(decimal.NewFromInt(pos.AvgPriceCents))
	if qty.Sign() < 0 {
		// Closing a short profits when the price fell below the basis.
		perUnit = perUnit.Neg()
	}
	out.RealizedPnlCents += closed.Mul(perUnit).Round(0).IntPart()

	remaining := qty.Add(delta)
	switch {
	case remaining.Abs().LessThanOrEqual(flatEpsilon):
		out.Positions = append(out.Positions[:idx], out.Positions[idx+1:]...)
	case remaining.Sign() == qty.Sign():
		// Partial close: the basis of the surviving quantity is unchanged.
		pos.Quantity = remaining
		out.Positions[idx] = pos
	default:
		// Flip: the residual opens fresh at the execution price.
		pos.Quantity = remaining
		pos.AvgPriceCents = priceCents
		out.Positions[idx] = pos
	}
}
