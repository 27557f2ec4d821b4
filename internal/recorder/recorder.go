package recorder

import "NovaQuant/internal/model"

// OrderEvent holds one order placement attempt and the account state after it.
type OrderEvent struct {
	Order   *model.Order
	Account *model.AccountSummary
}

// ValuationEvent holds a periodic mark-to-market of the paper account.
type ValuationEvent struct {
	Account       *model.AccountSummary
	OpenPositions int
}

// AdviceEvent holds the outcome of one plan advisory evaluation.
type AdviceEvent struct {
	Profile      model.RiskProfile
	HorizonYears int
	Advice       *model.PlanAdvice
}

// Recorder persists historical data for analysis.
type Recorder interface {
	RecordOrder(evt *OrderEvent) error
	RecordValuation(evt *ValuationEvent) error
	RecordAdvice(evt *AdviceEvent) error
	Close() error
}
