package trading

import (
	"hash/fnv"
	"time"

	"NovaQuant/internal/calculator"
	"NovaQuant/internal/model"
)

// MaxQuoteBatch caps how many symbols one quote request may carry.
const MaxQuoteBatch = 50

// QuoteSource produces prices for the paper engine. SyntheticSource is the
// only in-tree implementation; tests substitute fixed sources.
type QuoteSource interface {
	Quote(symbol string) model.Quote
	Quotes(symbols []string) []model.Quote
}

const (
	minPriceCents = 1_000  // $10
	maxPriceCents = 50_000 // $500
)

// SyntheticSource derives a deterministic price from the symbol itself: the
// normalized symbol hashes into a seed for the shared generator, so the same
// symbol always quotes the same price. No market data is involved.
type SyntheticSource struct{}

// NewSyntheticSource creates the synthetic quote generator.
func NewSyntheticSource() *SyntheticSource { return &SyntheticSource{} }

// Quote returns the synthetic quote for one symbol.
func (s *SyntheticSource) Quote(symbol string) model.Quote {
	sym := model.NormalizeSymbol(symbol)

	h := fnv.New64a()
	h.Write([]byte(sym))
	seed := int64(h.Sum64() & 0x7fffffff)

	u := calculator.NewLCG(seed).Float64()
	price := minPriceCents + int64(u*float64(maxPriceCents-minPriceCents))

	return model.Quote{Symbol: sym, PriceCents: price, AsOf: time.Now().UTC()}
}

// Quotes returns one quote per normalized symbol. Empty and whitespace-only
// symbols are filtered out; at most MaxQuoteBatch symbols are served.
func (s *SyntheticSource) Quotes(symbols []string) []model.Quote {
	quotes := make([]model.Quote, 0, len(symbols))
	for _, symbol := range symbols {
		if model.NormalizeSymbol(symbol) == "" {
			continue
		}
		quotes = append(quotes, s.Quote(symbol))
		if len(quotes) == MaxQuoteBatch {
			break
		}
	}
	return quotes
}
