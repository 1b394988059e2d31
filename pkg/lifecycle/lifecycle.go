// Package lifecycle derives the temporal state of a crop record. Everything
// here is a pure function of the record and an explicit "now"; nothing is
// cached on the record, so passing time is reflected on every read.
package lifecycle

import (
	"math"
	"time"

	"agrismart/entities"
)

type Progress struct {
	ElapsedDays      int                 `json:"elapsed_days"`
	RemainingDays    int                 `json:"remaining_days"`
	ProgressFraction float64             `json:"progress_fraction"`
	HarvestDate      time.Time           `json:"harvest_date"`
	Status           entities.CropStatus `json:"status"`
}

// Derive recomputes elapsed/remaining days, completion fraction, projected
// harvest date and status at the supplied instant. A now before the sowing
// date clamps elapsed to 0; a non-positive duration (which the decoder
// should have refused) yields fraction 1 and HarvestReady instead of a
// division by zero.
func Derive(rec *entities.CropRecord, now time.Time) Progress {
	total := rec.Analysis.TotalDurationDays

	elapsed := int(math.Floor(now.Sub(rec.SowingDate).Hours() / 24))
	if elapsed < 0 {
		elapsed = 0
	}

	p := Progress{
		ElapsedDays: elapsed,
		HarvestDate: rec.SowingDate.AddDate(0, 0, total),
	}

	if total <= 0 {
		p.ProgressFraction = 1
		p.Status = entities.StatusHarvestReady
		return p
	}

	if remaining := total - elapsed; remaining > 0 {
		p.RemainingDays = remaining
	}
	p.ProgressFraction = math.Min(1, float64(elapsed)/float64(total))

	if p.RemainingDays > 0 {
		p.Status = entities.StatusGrowing
	} else {
		p.Status = entities.StatusHarvestReady
	}
	return p
}
