package fit

import (
	"fmt"
	"math"
	"strings"

	"fit-engine/internal/model"
)

const (
	// share of the fabric's stretch percentage that adds usable capacity
	stretchUtilisation = 0.4
	// raw strain at which normalised strain saturates
	strainSaturation = 1.5
	stressZoneBias   = 1.15
	// tolerance cm per unit of strain
	toleranceCmPerStrain = 10.0

	highStrain = 0.7
	lowStrain  = 0.3
)

type advancedEvaluator struct{}

func (advancedEvaluator) Rate(m zoneMeasure, g model.Garment, prefs model.FitPreferences) model.FitZoneResult {
	s := zoneStrain(m, g.Fabric, prefs)
	return model.FitZoneResult{
		Zone:    m.zone,
		DeltaCm: m.delta(),
		Rating:  rateStrain(s),
		Strain:  &s,
	}
}

func (advancedEvaluator) Summarize(label string, zones []model.FitZoneResult, overall model.OverallRating) string {
	var high, low int
	for _, z := range zones {
		s := strainOf(z)
		if s > highStrain {
			high++
		}
		if s < lowStrain {
			low++
		}
	}

	switch {
	case high > 0:
		return fmt.Sprintf("%s analysis with strain modeling shows high stress in %d zones. Consider sizing up or choosing stretchier fabric.", label, high)
	case low == len(zones):
		return fmt.Sprintf("%s analysis shows low strain across all zones. Fabric will drape comfortably.", label)
	default:
		return fmt.Sprintf("%s analysis with strain modeling shows moderate fit with some stress points. Overall fit is %s.", label, strings.ToLower(string(overall)))
	}
}

// StretchFactor is the capacity multiplier a fabric's stretch provides.
// A garment without fabric data does not stretch.
func StretchFactor(fabric *model.Fabric) float64 {
	if fabric == nil {
		return 1
	}
	return 1 + fabric.StretchPercent/100*stretchUtilisation
}

// zoneStrain returns the preference-adjusted strain for a zone, in [0, 1].
func zoneStrain(m zoneMeasure, fabric *model.Fabric, prefs model.FitPreferences) float64 {
	capacity := m.garment * StretchFactor(fabric)

	// A zone without garment capacity carries no strain.
	var raw float64
	if capacity != 0 {
		raw = math.Max(0, (m.body+m.ease-capacity)/capacity)
	}

	s := math.Min(1, raw/strainSaturation)
	if isStressZone(m.zone) {
		s *= stressZoneBias
	}
	s = math.Max(0, s-prefs.TightnessToleranceCm/toleranceCmPerStrain)
	return math.Min(1, s)
}

func rateStrain(s float64) model.Rating {
	switch {
	case s >= 0.8:
		return model.RatingTooTight
	case s >= 0.5:
		return model.RatingClose
	case s >= 0.2:
		return model.RatingComfy
	default:
		return model.RatingRelaxed
	}
}

func strainOf(z model.FitZoneResult) float64 {
	if z.Strain == nil {
		return 0
	}
	return *z.Strain
}
