package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"NovaQuant/internal/model"
)

// SQLiteRecorder persists historical data to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance (dashboards read while
	// the daemon writes).
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS order_history (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp         INTEGER NOT NULL,
			order_id          TEXT,
			symbol            TEXT,
			side              TEXT,
			order_type        TEXT,
			quantity          TEXT,
			limit_price_cents INTEGER,
			status            TEXT,
			fill_price_cents  INTEGER,
			reason            TEXT,
			cash_cents        INTEGER,
			equity_cents      INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_order_ts ON order_history(timestamp)`,

		`CREATE TABLE IF NOT EXISTS valuations (
			id                    INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp             INTEGER NOT NULL,
			cash_cents            INTEGER,
			equity_cents          INTEGER,
			positions_value_cents INTEGER,
			realized_pnl_cents    INTEGER,
			open_positions        INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_valuation_ts ON valuations(timestamp)`,

		`CREATE TABLE IF NOT EXISTS advice_history (
			id                 INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp          INTEGER NOT NULL,
			risk_profile       TEXT,
			horizon_years      INTEGER,
			nominal_p10        REAL,
			nominal_p50        REAL,
			nominal_p90        REAL,
			real_p50           REAL,
			probability_target REAL,
			critical_signals   INTEGER,
			warning_signals    INTEGER,
			top_action         TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_advice_ts ON advice_history(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordOrder(evt *OrderEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o := evt.Order
	var limit int64
	if o.LimitPriceCents != nil {
		limit = *o.LimitPriceCents
	}
	_, err := r.db.Exec(`INSERT INTO order_history
		(timestamp, order_id, symbol, side, order_type, quantity,
		 limit_price_cents, status, fill_price_cents, reason,
		 cash_cents, equity_cents)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), o.ID, o.Symbol, string(o.Side), string(o.Type),
		o.Quantity.String(), limit, string(o.Status), o.FillPriceCents, o.Reason,
		evt.Account.CashCents, evt.Account.EquityCents,
	)
	return err
}

func (r *SQLiteRecorder) RecordValuation(evt *ValuationEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a := evt.Account
	_, err := r.db.Exec(`INSERT INTO valuations
		(timestamp, cash_cents, equity_cents, positions_value_cents, realized_pnl_cents, open_positions)
		VALUES (?,?,?,?,?,?)`,
		time.Now().Unix(), a.CashCents, a.EquityCents,
		a.PositionsValueCents, a.RealizedPnlCents, evt.OpenPositions,
	)
	return err
}

func (r *SQLiteRecorder) RecordAdvice(evt *AdviceEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	advice := evt.Advice
	var criticals, warnings int
	for _, sig := range advice.Signals {
		switch sig.Level {
		case model.LevelCritical:
			criticals++
		case model.LevelWarning:
			warnings++
		}
	}

	topAction := ""
	if len(advice.Actions) > 0 && advice.Actions[0].Action != model.RebalanceHold {
		topAction = fmt.Sprintf("%s %s", advice.Actions[0].Action, advice.Actions[0].Asset)
	}

	sim := advice.Simulation
	_, err := r.db.Exec(`INSERT INTO advice_history
		(timestamp, risk_profile, horizon_years,
		 nominal_p10, nominal_p50, nominal_p90, real_p50, probability_target,
		 critical_signals, warning_signals, top_action)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), string(evt.Profile), evt.HorizonYears,
		sim.NominalP10, sim.NominalP50, sim.NominalP90, sim.RealP50,
		sim.ProbabilityToReachTarget, criticals, warnings, topAction,
	)
	return err
}

// Close closes the underlying database.
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
