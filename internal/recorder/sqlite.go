package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"SignalBench/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists backtest results to a SQLite database. The mutex
// makes it safe for concurrent runs to append their results.
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

	// WAL mode for better concurrent read performance while runs are writing.
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
		`CREATE TABLE IF NOT EXISTS runs (
			run_id            TEXT PRIMARY KEY,
			timestamp         INTEGER NOT NULL,
			symbol            TEXT,
			initial_capital   REAL,
			final_equity      REAL,
			total_return      REAL,
			annualized_return REAL,
			volatility        REAL,
			sharpe            REAL,
			sortino           REAL,
			max_drawdown      REAL,
			total_trades      INTEGER,
			winning_trades    INTEGER,
			losing_trades     INTEGER,
			win_rate          REAL,
			profit_factor     REAL,
			max_consec_wins   INTEGER,
			max_consec_losses INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS trades (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id        TEXT NOT NULL,
			timestamp     INTEGER NOT NULL,
			action        TEXT,
			shares        INTEGER,
			price         REAL,
			cash_delta    REAL,
			capital_after REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_trades_run ON trades(run_id)`,

		`CREATE TABLE IF NOT EXISTS risk_analyses (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id         TEXT NOT NULL,
			timestamp      INTEGER NOT NULL,
			annualized_vol REAL,
			downside_vol   REAL,
			var_95         REAL,
			cvar_95        REAL,
			var_99         REAL,
			cvar_99        REAL,
			max_drawdown   REAL,
			systematic     REAL,
			idiosyncratic  REAL,
			concentration  REAL,
			liquidity      REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_risk_run ON risk_analyses(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRun(result *model.BacktestResult, metrics *model.PerformanceMetrics) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// SQLite has no IEEE infinity; an all-win ledger stores NULL.
	profitFactor := sql.NullFloat64{Float64: result.ProfitFactor, Valid: !math.IsInf(result.ProfitFactor, 0)}

	_, err := r.db.Exec(`INSERT INTO runs
		(run_id, timestamp, symbol, initial_capital, final_equity,
		 total_return, annualized_return, volatility, sharpe, sortino,
		 max_drawdown, total_trades, winning_trades, losing_trades,
		 win_rate, profit_factor, max_consec_wins, max_consec_losses)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		result.RunID, time.Now().Unix(), result.Symbol,
		result.InitialCapital, result.FinalEquity,
		result.TotalReturn, result.AnnualizedReturn, result.Volatility,
		metrics.SharpeRatio, metrics.SortinoRatio,
		result.MaxDrawdown, result.TotalTrades, result.WinningTrades, result.LosingTrades,
		result.WinRate, profitFactor,
		result.MaxConsecutiveWins, result.MaxConsecutiveLosses,
	)
	return err
}

func (r *SQLiteRecorder) RecordTrades(runID string, trades []model.Trade) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO trades
		(run_id, timestamp, action, shares, price, cash_delta, capital_after)
		VALUES (?,?,?,?,?,?,?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, t := range trades {
		if _, err := stmt.Exec(runID, t.Time.Unix(), string(t.Action),
			t.Shares, t.Price, t.CashDelta, t.CapitalAfter); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) RecordRiskAnalysis(runID string, analysis *model.RiskAnalysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO risk_analyses
		(run_id, timestamp, annualized_vol, downside_vol,
		 var_95, cvar_95, var_99, cvar_99, max_drawdown,
		 systematic, idiosyncratic, concentration, liquidity)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		runID, time.Now().Unix(),
		analysis.Volatility.Annualized, analysis.Volatility.Downside,
		analysis.Tail.VaR95, analysis.Tail.CVaR95,
		analysis.Tail.VaR99, analysis.Tail.CVaR99,
		analysis.Drawdown.Max,
		analysis.Decomposition.Systematic, analysis.Decomposition.Idiosyncratic,
		analysis.Decomposition.Concentration, analysis.Decomposition.Liquidity,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
