package scheduler

import (
	"fmt"
	"log"

	"NovaQuant/internal/recorder"
	"NovaQuant/internal/report"
	"NovaQuant/internal/strategy"
	"NovaQuant/internal/toolkit"
	"NovaQuant/internal/trading"

	"github.com/robfig/cron/v3"
)

// Scheduler manages all cron tasks.
type Scheduler struct {
	Cron      *cron.Cron
	Desk      *trading.Desk
	Recorder  recorder.Recorder
	StateFile string
	DebtRatio float64
	Seed      int64
}

// NewScheduler creates a new Scheduler.
func NewScheduler(desk *trading.Desk, rec recorder.Recorder, stateFile string, debtRatio float64, seed int64) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Desk:      desk,
		Recorder:  rec,
		StateFile: stateFile,
		DebtRatio: debtRatio,
		Seed:      seed,
	}
}

// RegisterAll registers the valuation and advice tasks.
func (s *Scheduler) RegisterAll(valuationCron, adviceCron string) error {
	if _, err := s.Cron.AddFunc(valuationCron, s.valuationTask); err != nil {
		return fmt.Errorf("register valuation task: %w", err)
	}
	if _, err := s.Cron.AddFunc(adviceCron, s.adviceTask); err != nil {
		return fmt.Errorf("register advice task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunAdviceNow executes the advice task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunAdviceNow() {
	s.adviceTask()
}

// RunValuationNow executes the valuation task immediately.
func (s *Scheduler) RunValuationNow() {
	s.valuationTask()
}

func (s *Scheduler) valuationTask() {
	log.Println("[INFO] running account valuation")
	ov, err := s.Desk.Overview()
	if err != nil {
		log.Printf("[ERROR] valuation overview: %v", err)
		return
	}

	log.Println(report.FormatOverview(ov))

	if err := s.Recorder.RecordValuation(&recorder.ValuationEvent{
		Account:       &ov.Account,
		OpenPositions: len(ov.Positions),
	}); err != nil {
		log.Printf("[ERROR] record valuation: %v", err)
	}
}

func (s *Scheduler) adviceTask() {
	log.Println("[INFO] running plan advice")
	data, err := toolkit.Load(s.StateFile)
	if err != nil {
		log.Printf("[ERROR] load toolkit state: %v", err)
		return
	}

	advice := strategy.Evaluate(data, s.DebtRatio, s.Seed)

	log.Println(report.FormatAdvice(data, advice))

	if err := s.Recorder.RecordAdvice(&recorder.AdviceEvent{
		Profile:      data.RiskProfile,
		HorizonYears: data.HorizonYears,
		Advice:       advice,
	}); err != nil {
		log.Printf("[ERROR] record advice: %v", err)
	}
}
