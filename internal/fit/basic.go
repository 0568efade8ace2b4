package fit

import (
	"fmt"
	"strings"

	"fit-engine/internal/model"
)

type basicEvaluator struct{}

func (basicEvaluator) Rate(m zoneMeasure, _ model.Garment, _ model.FitPreferences) model.FitZoneResult {
	delta := m.delta()
	return model.FitZoneResult{
		Zone:    m.zone,
		DeltaCm: delta,
		Rating:  rateDelta(delta),
	}
}

func (basicEvaluator) Summarize(label string, zones []model.FitZoneResult, overall model.OverallRating) string {
	tight := countRating(zones, model.RatingTooTight)
	comfy := countRating(zones, model.RatingComfy)
	verdict := strings.ToLower(string(overall))

	switch {
	case tight > 0:
		return fmt.Sprintf("%s analysis shows tightness in %d of %d zones. Overall fit is %s.", label, tight, len(zones), verdict)
	case comfy == len(zones):
		return fmt.Sprintf("%s analysis shows comfortable fit across all %d zones. Overall fit is %s.", label, len(zones), verdict)
	default:
		return fmt.Sprintf("%s analysis shows mixed fit results across %d zones. Overall fit is %s.", label, len(zones), verdict)
	}
}

func rateDelta(delta float64) model.Rating {
	switch {
	case delta < -2:
		return model.RatingTooTight
	case delta <= 1:
		return model.RatingClose
	case delta <= 5:
		return model.RatingComfy
	default:
		return model.RatingOversized
	}
}
