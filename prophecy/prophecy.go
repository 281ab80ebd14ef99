package prophecy

import (
	"math"
	"strings"
	"time"
)

const (
	neverThreshold          = 10
	neverThresholdNoSpoiler = 7
)

// RiskPoint is one month of the forward risk series.
type RiskPoint struct {
	Month string `json:"month"`
	Risk  int    `json:"risk"`
}

// Prophecy is the full derived forecast for one seed. It is never persisted;
// the same (seed, spoiler flag, calendar day) always rebuilds the same value.
type Prophecy struct {
	DoomPercent int         `json:"doom_percent"`
	Confidence  int         `json:"confidence"`
	Cause       string      `json:"cause"`
	Predicted   time.Time   `json:"predicted_date"`
	IsNever     bool        `json:"is_never"`
	MonthlyRisk []RiskPoint `json:"monthly_risk"`
}

// PredictedDateString renders the fate-date the way the site displays it.
func (p Prophecy) PredictedDateString() string {
	return p.Predicted.Format("2006-01-02")
}

// Generate derives the prophecy for a seed. Pure and total: any seed string,
// either flag and any instant produce a result, with no I/O.
//
// Draw order is part of the contract: doom, confidence, cause, day offset,
// then twelve monthly wobbles. Inserting or reordering a draw breaks every
// previously shared seed.
func Generate(seed string, allowSpoilers bool, now time.Time) Prophecy {
	rng := newStream(seed)

	doom := rng.intBetween(0, 100)
	confidence := rng.intBetween(40, 97)

	pool := CausePool(allowSpoilers)
	cause := pool[rng.pickIndex(len(pool))].Text

	// Span runs from tomorrow to fifty years out, measured in whole days.
	// Both ends move with "now", so a seed shared across a day boundary can
	// land on a different date than when first drawn.
	start := now.AddDate(0, 0, 1)
	end := now.AddDate(50, 0, 0)
	spanDays := int(end.Sub(start).Hours() / 24)
	dayOffset := rng.intBetween(0, spanDays)
	predicted := start.Add(time.Duration(dayOffset) * 24 * time.Hour)

	threshold := neverThreshold
	if !allowSpoilers {
		threshold = neverThresholdNoSpoiler
	}
	isNever := doom < threshold || strings.Contains(strings.ToLower(cause), "never")

	points := make([]RiskPoint, 0, 12)
	for i := 0; i < 12; i++ {
		wobble := int(math.Floor(rng.next()*30)) - 15
		risk := float64(doom+wobble) + math.Sin(float64(i)/12*2*math.Pi)*10
		risk = math.Max(0, math.Min(100, risk))
		label := time.Date(now.Year(), now.Month()+time.Month(i), 1, 0, 0, 0, 0, now.Location())
		points = append(points, RiskPoint{
			Month: label.Format("Jan"),
			Risk:  int(math.Round(risk)),
		})
	}

	return Prophecy{
		DoomPercent: doom,
		Confidence:  confidence,
		Cause:       cause,
		Predicted:   predicted,
		IsNever:     isNever,
		MonthlyRisk: points,
	}
}
