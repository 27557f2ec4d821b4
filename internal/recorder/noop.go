package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordOrder(_ *OrderEvent) error         { return nil }
func (n *NoopRecorder) RecordValuation(_ *ValuationEvent) error { return nil }
func (n *NoopRecorder) RecordAdvice(_ *AdviceEvent) error       { return nil }
func (n *NoopRecorder) Close() error                            { return nil }
