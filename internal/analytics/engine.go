package analytics

import (
	"log/slog"
	"time"

	"github.com/reignstats/reignstats/internal/monarch"
)

// Report is the full set of statistics for one dataset.
type Report struct {
	GeneratedAt     time.Time   `json:"generated_at"`
	Count           int         `json:"count"`
	LongestReign    ReignResult `json:"longest_reign"`
	LongestHouse    HouseResult `json:"longest_house"`
	CommonFirstName NameResult  `json:"common_first_name"`
	CurrentHouse    HouseResult `json:"current_house"`
}

// Engine runs the five queries over a dataset.
type Engine struct {
	now func() time.Time // injectable for deterministic tests
}

// NewEngine returns an Engine that closes ongoing reigns at the current
// wall-clock year.
func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// Analyze computes every statistic for recs. It never fails; an empty slice
// yields a Report whose results are all unavailable.
func (e *Engine) Analyze(recs []monarch.Record) *Report {
	now := e.now()
	year := now.Year()

	rep := &Report{
		GeneratedAt:     now.UTC(),
		Count:           Count(recs),
		LongestReign:    LongestReign(recs, year),
		LongestHouse:    LongestHouse(recs, year),
		CommonFirstName: CommonFirstName(recs),
		CurrentHouse:    CurrentHouse(recs, year),
	}

	slog.Debug("analytics: report computed",
		"count", rep.Count,
		"longest_reign", rep.LongestReign.Name,
		"longest_house", rep.LongestHouse.House,
		"current_house", rep.CurrentHouse.House,
	)
	return rep
}
