package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// NormalizeSymbol uppercases and trims a raw symbol. Every symbol crossing a
// package boundary is normalized with this before use.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// OrderSide is the direction of an order.
type OrderSide string

const (
	SideBuy  OrderSide = "buy"
	SideSell OrderSide = "sell"
)

// OrderType selects the execution semantics.
type OrderType string

const (
	TypeMarket OrderType = "market"
	TypeLimit  OrderType = "limit"
)

// OrderStatus is the terminal state of an order. Every order resolves
// synchronously to exactly one of these; there are no resting orders.
type OrderStatus string

const (
	StatusFilled   OrderStatus = "filled"
	StatusRejected OrderStatus = "rejected"
)

// Quote is a synthetic price snapshot for one symbol.
type Quote struct {
	Symbol     string    `json:"symbol"`
	PriceCents int64     `json:"priceCents"`
	AsOf       time.Time `json:"asOf"`
}

// Position is one open holding. Quantity is signed: long > 0, short < 0.
type Position struct {
	Symbol        string          `json:"symbol"`
	Quantity      decimal.Decimal `json:"quantity"`
	AvgPriceCents int64           `json:"avgPriceCents"`
}

// OrderInput is a placement request from the caller.
type OrderInput struct {
	Symbol          string          `json:"symbol"`
	Side            OrderSide       `json:"side"`
	Type            OrderType       `json:"type"`
	Quantity        decimal.Decimal `json:"quantity"`
	LimitPriceCents *int64          `json:"limitPriceCents,omitempty"`
}

// Order is the immutable record of one placement attempt.
type Order struct {
	ID              string          `json:"id"`
	Symbol          string          `json:"symbol"`
	Side            OrderSide       `json:"side"`
	Type            OrderType       `json:"type"`
	Quantity        decimal.Decimal `json:"quantity"`
	LimitPriceCents *int64          `json:"limitPriceCents,omitempty"`
	Status          OrderStatus     `json:"status"`
	FillPriceCents  int64           `json:"fillPriceCents,omitempty"`
	Reason          string          `json:"reason,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// PaperTradingPolicy bounds what the paper engine will execute.
type PaperTradingPolicy struct {
	MaxPositionPct        float64  `json:"maxPositionPct"`
	MaxOrderNotionalCents int64    `json:"maxOrderNotionalCents"`
	AllowShort            bool     `json:"allowShort"`
	BlockedSymbols        []string `json:"blockedSymbols"`
}

// PolicyPatch is a partial policy update. Nil fields keep the previous value;
// a nil BlockedSymbols keeps the existing set.
type PolicyPatch struct {
	MaxPositionPct        *float64 `json:"maxPositionPct,omitempty"`
	MaxOrderNotionalCents *int64   `json:"maxOrderNotionalCents,omitempty"`
	AllowShort            *bool    `json:"allowShort,omitempty"`
	BlockedSymbols        []string `json:"blockedSymbols,omitempty"`
}

// PaperTradingStore is the authoritative trading state. All monetary values
// are integer cents. Orders are kept newest first.
type PaperTradingStore struct {
	Version          int                `json:"version"`
	CashCents        int64              `json:"cashCents"`
	RealizedPnlCents int64              `json:"realizedPnlCents"`
	Policy           PaperTradingPolicy `json:"policy"`
	Positions        []Position         `json:"positions"`
	Orders           []Order            `json:"orders"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

// Clone returns a deep copy so the engine can build a new store without
// touching the caller's snapshot.
func (s PaperTradingStore) Clone() PaperTradingStore {
	out := s
	out.Policy.BlockedSymbols = append([]string(nil), s.Policy.BlockedSymbols...)
	out.Positions = append([]Position(nil), s.Positions...)
	out.Orders = append([]Order(nil), s.Orders...)
	return out
}

// PositionView is a position enriched with the current synthetic market.
type PositionView struct {
	Position
	MarketPriceCents   int64 `json:"marketPriceCents"`
	MarketValueCents   int64 `json:"marketValueCents"`
	UnrealizedPnlCents int64 `json:"unrealizedPnlCents"`
}

// AccountSummary aggregates cash and market value into account equity.
type AccountSummary struct {
	CashCents           int64 `json:"cashCents"`
	EquityCents         int64 `json:"equityCents"`
	PositionsValueCents int64 `json:"positionsValueCents"`
	RealizedPnlCents    int64 `json:"realizedPnlCents"`
}

// TradingOverview is the full account picture returned to callers.
type TradingOverview struct {
	Account      AccountSummary     `json:"account"`
	Policy       PaperTradingPolicy `json:"policy"`
	Positions    []PositionView     `json:"positions"`
	RecentOrders []Order            `json:"recentOrders"`
}
