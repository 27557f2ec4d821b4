// Package store persists the paper trading document. The engine never
// performs I/O itself: it receives a store snapshot and returns a new one,
// and a Store implementation owns the read-modify-write cycle.
package store

import (
	"time"

	"github.com/shopspring/decimal"

	"NovaQuant/internal/model"
)

// flatEpsilon mirrors the engine's threshold for a closed position.
var flatEpsilon = decimal.New(1, -8)

// Store loads and saves the authoritative trading document.
type Store interface {
	Load() (model.PaperTradingStore, error)
	Save(model.PaperTradingStore) error
}

// DefaultPolicy is the risk policy a fresh store starts with.
func DefaultPolicy() model.PaperTradingPolicy {
	return model.PaperTradingPolicy{
		MaxPositionPct:        35,
		MaxOrderNotionalCents: 2_500_000,
		AllowShort:            false,
		BlockedSymbols:        []string{},
	}
}

// Seed returns a fresh trading store with the given starting cash.
func Seed(startingCashCents int64) model.PaperTradingStore {
	return model.PaperTradingStore{
		Version:   1,
		CashCents: startingCashCents,
		Policy:    DefaultPolicy(),
		Positions: []model.Position{},
		Orders:    []model.Order{},
		UpdatedAt: time.Now().UTC(),
	}
}

// Normalize sanitizes an untrusted store document: the policy is clamped to
// sane bounds, symbols are normalized, near-zero positions are pruned, and
// malformed order records are dropped. Runs on every load and save.
func Normalize(raw model.PaperTradingStore) model.PaperTradingStore {
	out := raw.Clone()
	out.Version = 1

	def := DefaultPolicy()
	if out.Policy.MaxPositionPct <= 0 || out.Policy.MaxPositionPct > 100 {
		out.Policy.MaxPositionPct = def.MaxPositionPct
	}
	if out.Policy.MaxOrderNotionalCents <= 0 {
		out.Policy.MaxOrderNotionalCents = def.MaxOrderNotionalCents
	}
	blocked := make([]string, 0, len(out.Policy.BlockedSymbols))
	for _, symbol := range out.Policy.BlockedSymbols {
		if normalized := model.NormalizeSymbol(symbol); normalized != "" {
			blocked = append(blocked, normalized)
		}
	}
	out.Policy.BlockedSymbols = blocked

	positions := make([]model.Position, 0, len(out.Positions))
	for _, pos := range out.Positions {
		pos.Symbol = model.NormalizeSymbol(pos.Symbol)
		if pos.Symbol == "" || pos.Quantity.Abs().LessThanOrEqual(flatEpsilon) {
			continue
		}
		if pos.AvgPriceCents < 1 {
			pos.AvgPriceCents = 1
		}
		positions = append(positions, pos)
	}
	out.Positions = positions

	orders := make([]model.Order, 0, len(out.Orders))
	for _, order := range out.Orders {
		if order.ID == "" || order.Symbol == "" {
			continue
		}
		if order.Status != model.StatusFilled && order.Status != model.StatusRejected {
			continue
		}
		orders = append(orders, order)
	}
	out.Orders = orders

	out.UpdatedAt = time.Now().UTC()
	return out
}
