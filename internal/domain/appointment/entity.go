package appointment

import (
	"time"

	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

type Patch struct {
	Data   *string
	Status *string
}

type PatchResult struct {
	Changed  bool
	Reopened bool
}

// Apply altera apenas data e status. Data ilegível é ignorada.
func Apply(ap *models.Appointment, p Patch, loc *time.Location, strict bool) (PatchResult, error) {
	var res PatchResult

	if p.Status != nil {
		next, err := ParseStatus(*p.Status)
		if err != nil {
			return res, err
		}

		current := Status(ap.Status)
		if err := CanChange(current, next, strict); err != nil {
			return res, err
		}

		if current != next {
			res.Reopened = current.IsFinal() && next == StatusScheduled
			ap.Status = string(next)
			res.Changed = true
		}
	}

	if p.Data != nil {
		if when, ok := NormalizeDateTime(*p.Data, loc); ok {
			ap.Date = when
			res.Changed = true
		}
	}

	return res, nil
}
