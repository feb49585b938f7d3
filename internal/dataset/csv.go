package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"SignalBench/internal/model"
)

const dateLayout = "2006-01-02"

// CSVSource loads price, signal, and optional benchmark series from CSV
// files. Prices are `date,price` rows; signals are `date,signal` rows keyed
// by dates that must exist in the price file; the benchmark is `date,return`
// rows. A header row is skipped when the first field does not parse as a date.
type CSVSource struct {
	Symbol        string
	PricesPath    string
	SignalsPath   string
	BenchmarkPath string
}

// NewCSVSource creates a CSVSource. BenchmarkPath may be empty.
func NewCSVSource(symbol, pricesPath, signalsPath, benchmarkPath string) *CSVSource {
	return &CSVSource{
		Symbol:        symbol,
		PricesPath:    pricesPath,
		SignalsPath:   signalsPath,
		BenchmarkPath: benchmarkPath,
	}
}

func (c *CSVSource) Name() string { return "csv" }

// LoadSeries reads the price and signal files and aligns them by date.
// Dates present only in the price file get a HOLD signal; a signal dated
// outside the price series is a caller error.
func (c *CSVSource) LoadSeries() (*model.AlignedSeries, error) {
	priceRows, err := readRows(c.PricesPath)
	if err != nil {
		return nil, fmt.Errorf("prices: %w", err)
	}
	if len(priceRows) == 0 {
		return nil, fmt.Errorf("prices: %s has no data rows", c.PricesPath)
	}

	points := make([]model.PricePoint, 0, len(priceRows))
	index := make(map[time.Time]int, len(priceRows))
	for _, row := range priceRows {
		price, err := strconv.ParseFloat(row.value, 64)
		if err != nil {
			return nil, fmt.Errorf("prices: bad price %q at %s: %w", row.value, row.date.Format(dateLayout), err)
		}
		index[row.date] = len(points)
		points = append(points, model.PricePoint{Time: row.date, Price: price})
	}

	signals := make([]model.Signal, len(points))
	for i := range signals {
		signals[i] = model.SignalHold
	}

	signalRows, err := readRows(c.SignalsPath)
	if err != nil {
		return nil, fmt.Errorf("signals: %w", err)
	}
	for _, row := range signalRows {
		i, ok := index[row.date]
		if !ok {
			return nil, fmt.Errorf("signals: %s not present in price series", row.date.Format(dateLayout))
		}
		sig := model.Signal(strings.ToUpper(strings.TrimSpace(row.value)))
		if !sig.Valid() {
			return nil, fmt.Errorf("signals: unknown signal %q at %s", row.value, row.date.Format(dateLayout))
		}
		signals[i] = sig
	}

	return &model.AlignedSeries{Symbol: c.Symbol, Points: points, Signals: signals}, nil
}

// LoadBenchmark reads the benchmark returns file, or returns nil when no
// benchmark is configured.
func (c *CSVSource) LoadBenchmark() ([]float64, error) {
	if c.BenchmarkPath == "" {
		return nil, nil
	}
	rows, err := readRows(c.BenchmarkPath)
	if err != nil {
		return nil, fmt.Errorf("benchmark: %w", err)
	}
	returns := make([]float64, 0, len(rows))
	for _, row := range rows {
		r, err := strconv.ParseFloat(row.value, 64)
		if err != nil {
			return nil, fmt.Errorf("benchmark: bad return %q at %s: %w", row.value, row.date.Format(dateLayout), err)
		}
		returns = append(returns, r)
	}
	return returns, nil
}

type csvRow struct {
	date  time.Time
	value string
}

func readRows(path string) ([]csvRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 2
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	rows := make([]csvRow, 0, len(records))
	for i, rec := range records {
		date, err := time.Parse(dateLayout, strings.TrimSpace(rec[0]))
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("%s line %d: bad date %q", path, i+1, rec[0])
		}
		rows = append(rows, csvRow{date: date, value: strings.TrimSpace(rec[1])})
	}
	return rows, nil
}
