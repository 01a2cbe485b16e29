// Package stats accumulates per-run statistics and derives the end-of-game
// performance rating.
package stats

import (
	"time"

	"github.com/tomz197/asteroid-shooter/internal/object"
)

// Tracker holds the counters for one run. Counters only grow; the whole
// tracker is replaced when a new game starts.
type Tracker struct {
	TotalDestroyed  int
	LargeDestroyed  int
	MediumDestroyed int
	SmallDestroyed  int
	LivesLost       int

	Start time.Time
	End   time.Time // Zero while the run is in progress
}

// New creates a tracker whose run starts at start.
func New(start time.Time) *Tracker {
	return &Tracker{Start: start}
}

// RecordDestroyed counts one destroyed obstacle of the given tier.
func (t *Tracker) RecordDestroyed(class object.SizeClass) {
	t.TotalDestroyed++
	switch class {
	case object.SizeLarge:
		t.LargeDestroyed++
	case object.SizeMedium:
		t.MediumDestroyed++
	default:
		t.SmallDestroyed++
	}
}

// RecordLifeLost counts one lost life.
func (t *Tracker) RecordLifeLost() {
	t.LivesLost++
}

// Finish records the end timestamp. Only the first call has an effect.
func (t *Tracker) Finish(end time.Time) {
	if t.Ended() {
		return
	}
	t.End = end
}

// Ended reports whether the run has an end timestamp.
func (t Tracker) Ended() bool {
	return !t.End.IsZero()
}

// Survival returns how long the run lasted: End-Start once ended,
// otherwise now-Start.
func (t Tracker) Survival(now time.Time) time.Duration {
	if t.Ended() {
		return t.End.Sub(t.Start)
	}
	return now.Sub(t.Start)
}

// Rating computes the integer performance rating.
func (t Tracker) Rating(score, level int) int {
	return score/1000 + t.TotalDestroyed/10 + level*5
}

// Report builds the immutable end-of-game summary.
func (t Tracker) Report(score, level int, now time.Time) Report {
	rating := t.Rating(score, level)
	return Report{
		Score:           score,
		Level:           level,
		TotalDestroyed:  t.TotalDestroyed,
		LargeDestroyed:  t.LargeDestroyed,
		MediumDestroyed: t.MediumDestroyed,
		SmallDestroyed:  t.SmallDestroyed,
		LivesLost:       t.LivesLost,
		Survival:        t.Survival(now),
		Rating:          rating,
		Rank:            RankFor(rating),
	}
}

// Report is a snapshot of a run's statistics.
type Report struct {
	Score           int
	Level           int
	TotalDestroyed  int
	LargeDestroyed  int
	MediumDestroyed int
	SmallDestroyed  int
	LivesLost       int
	Survival        time.Duration
	Rating          int
	Rank            string
}
