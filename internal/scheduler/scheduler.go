package scheduler

import (
	"fmt"
	"log"

	"SignalBench/internal/dataset"
	"SignalBench/internal/recorder"
	"SignalBench/internal/report"
	"SignalBench/internal/risk"
	"SignalBench/internal/simulator"
	"SignalBench/internal/stats"

	"github.com/robfig/cron/v3"
)

// Scheduler re-runs the backtest pipeline on a cron expression, so a recurring
// deployment picks up refreshed datasets without a restart.
type Scheduler struct {
	Cron      *cron.Cron
	Source    dataset.Source
	Engine    *simulator.Engine
	Recorder  recorder.Recorder
	ChartPath string
}

// NewScheduler creates a new Scheduler.
func NewScheduler(src dataset.Source, eng *simulator.Engine, rec recorder.Recorder, chartPath string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Source:    src,
		Engine:    eng,
		Recorder:  rec,
		ChartPath: chartPath,
	}
}

// Register registers the periodic re-run task.
func (s *Scheduler) Register(rerunCron string) error {
	if _, err := s.Cron.AddFunc(rerunCron, s.rerunTask); err != nil {
		return fmt.Errorf("register rerun task: %w", err)
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

// RunNow executes the pipeline immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.rerunTask()
}

func (s *Scheduler) rerunTask() {
	log.Printf("[INFO] running backtest from source %q", s.Source.Name())

	series, err := s.Source.LoadSeries()
	if err != nil {
		log.Printf("[ERROR] load series: %v", err)
		return
	}
	benchmark, err := s.Source.LoadBenchmark()
	if err != nil {
		log.Printf("[WARN] load benchmark: %v, continuing without one", err)
		benchmark = nil
	}

	result, err := s.Engine.Run(series)
	if err != nil {
		log.Printf("[ERROR] simulation: %v", err)
		return
	}

	metrics, err := stats.Performance(result.EquityValues(), benchmark, s.Engine.Params())
	if err != nil {
		log.Printf("[ERROR] performance metrics: %v", err)
		return
	}

	returns, err := stats.Returns(result.EquityValues())
	if err != nil {
		log.Printf("[ERROR] equity returns: %v", err)
		return
	}
	analysis := risk.Analyze(returns, benchmark)

	rep := report.Assemble(result, metrics, analysis)
	fmt.Println(rep.Render())

	if s.ChartPath != "" {
		if err := report.WriteEquityChart(s.ChartPath, result); err != nil {
			log.Printf("[ERROR] write equity chart: %v", err)
		} else {
			log.Printf("[INFO] equity chart written: %s", s.ChartPath)
		}
	}

	if err := s.Recorder.RecordRun(result, metrics); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
	if err := s.Recorder.RecordTrades(result.RunID, result.Trades); err != nil {
		log.Printf("[ERROR] record trades: %v", err)
	}
	if err := s.Recorder.RecordRiskAnalysis(result.RunID, analysis); err != nil {
		log.Printf("[ERROR] record risk analysis: %v", err)
	}

	log.Printf("[INFO] run %s complete: return %.2f%%, sharpe %.2f, max drawdown %.2f%%",
		result.RunID, result.TotalReturn*100, metrics.SharpeRatio, result.MaxDrawdown*100)
}
