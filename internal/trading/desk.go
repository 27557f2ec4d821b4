package trading

import (
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"NovaQuant/internal/model"
	"NovaQuant/internal/recorder"
	"NovaQuant/internal/store"
)

// recentOrderLimit bounds how many orders an overview carries.
const recentOrderLimit = 50

// Desk owns the trading store and serializes every read-modify-write against
// it. The engine itself is pure; the desk is the single writer the
// persistence contract requires, so concurrent submissions queue on its lock
// instead of losing updates.
type Desk struct {
	mu     sync.Mutex
	store  store.Store
	quotes QuoteSource
	rec    recorder.Recorder
}

// NewDesk creates a desk over the given store and quote source. Every
// resolved order is appended to the recorder's history.
func NewDesk(st store.Store, quotes QuoteSource, rec recorder.Recorder) *Desk {
	return &Desk{store: st, quotes: quotes, rec: rec}
}

// PlaceOrder executes one order against the persisted store and saves the
// result. A rejected order is not an error: the order record carries the
// rejection reason and the attempt is persisted in the history either way.
func (d *Desk) PlaceOrder(input model.OrderInput) (model.Order, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	current, err := d.store.Load()
	if err != nil {
		return model.Order{}, fmt.Errorf("load trading store: %w", err)
	}
	order, next := ExecutePaperOrder(current, input, d.quotes)
	if err := d.store.Save(next); err != nil {
		return model.Order{}, fmt.Errorf("save trading store: %w", err)
	}

	account := BuildAccountSummary(next.CashCents, next.RealizedPnlCents, next.Positions, d.quotes)
	if err := d.rec.RecordOrder(&recorder.OrderEvent{Order: &order, Account: &account}); err != nil {
		log.Printf("[ERROR] record order: %v", err)
	}
	return order, nil
}

// Overview returns the account summary, policy, marked positions sorted by
// descending exposure, and the most recent orders.
func (d *Desk) Overview() (model.TradingOverview, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	st, err := d.store.Load()
	if err != nil {
		return model.TradingOverview{}, fmt.Errorf("load trading store: %w", err)
	}

	views := make([]model.PositionView, 0, len(st.Positions))
	for _, pos := range st.Positions {
		views = append(views, PositionWithMarket(pos, d.quotes))
	}
	sort.SliceStable(views, func(i, j int) bool {
		return abs64(views[i].MarketValueCents) > abs64(views[j].MarketValueCents)
	})

	recent := st.Orders
	if len(recent) > recentOrderLimit {
		recent = recent[:recentOrderLimit]
	}

	return model.TradingOverview{
		Account:      BuildAccountSummary(st.CashCents, st.RealizedPnlCents, st.Positions, d.quotes),
		Policy:       st.Policy,
		Positions:    views,
		RecentOrders: recent,
	}, nil
}

// Orders returns the full order history, newest first.
func (d *Desk) Orders() ([]model.Order, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	st, err := d.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load trading store: %w", err)
	}
	return st.Orders, nil
}

// UpdatePolicy merges a partial patch into the persisted policy. Unset patch
// fields keep their previous values; blocked symbols are normalized before
// acceptance.
func (d *Desk) UpdatePolicy(patch model.PolicyPatch) (model.PaperTradingPolicy, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	st, err := d.store.Load()
	if err != nil {
		return model.PaperTradingPolicy{}, fmt.Errorf("load trading store: %w", err)
	}

	policy := st.Policy
	if patch.MaxPositionPct != nil {
		policy.MaxPositionPct = *patch.MaxPositionPct
	}
	if patch.MaxOrderNotionalCents != nil {
		policy.MaxOrderNotionalCents = *patch.MaxOrderNotionalCents
	}
	if patch.AllowShort != nil {
		policy.AllowShort = *patch.AllowShort
	}
	if patch.BlockedSymbols != nil {
		blocked := make([]string, 0, len(patch.BlockedSymbols))
		for _, symbol := range patch.BlockedSymbols {
			if normalized := model.NormalizeSymbol(symbol); normalized != "" {
				blocked = append(blocked, normalized)
			}
		}
		policy.BlockedSymbols = blocked
	}

	st.Policy = policy
	st.UpdatedAt = time.Now().UTC()
	if err := d.store.Save(st); err != nil {
		return model.PaperTradingPolicy{}, fmt.Errorf("save trading store: %w", err)
	}
	return policy, nil
}

// Quotes returns synthetic quotes for up to MaxQuoteBatch symbols.
func (d *Desk) Quotes(symbols []string) []model.Quote {
	return d.quotes.Quotes(symbols)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
