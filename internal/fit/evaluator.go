// Package fit evaluates how a garment fits a body. Evaluation is pure and
// never fails: missing data degrades to zero contributions.
package fit

import "fit-engine/internal/model"

// zoneEvaluator is the contract for an evaluation mode. Each mode rates
// individual zones and phrases the report summary.
type zoneEvaluator interface {
	Rate(m zoneMeasure, g model.Garment, prefs model.FitPreferences) model.FitZoneResult
	Summarize(label string, zones []model.FitZoneResult, overall model.OverallRating) string
}

var registry = map[model.Mode]zoneEvaluator{
	model.ModeBasic:    basicEvaluator{},
	model.ModeAdvanced: advancedEvaluator{},
}

func get(mode model.Mode) (zoneEvaluator, bool) {
	e, ok := registry[mode]
	return e, ok
}

// Evaluate produces the fit report for a garment on a body. An unrecognised
// mode is evaluated as basic.
func Evaluate(g model.Garment, body model.BodyMeasurements, prefs model.FitPreferences, mode model.Mode) model.FitReport {
	ev, ok := get(mode)
	if !ok {
		mode = model.ModeBasic
		ev = registry[mode]
	}

	zones := Zones(g.Category)
	results := make([]model.FitZoneResult, 0, len(zones))
	for _, z := range zones {
		results = append(results, ev.Rate(measure(z, g, body), g, prefs))
	}

	overall := OverallRating(results)
	percent := SizeMatchPercent(results)

	return model.FitReport{
		Summary:          ev.Summarize(mode.Label(), results, overall),
		Mode:             mode.Label(),
		Zones:            results,
		Overall:          overall,
		SizeMatchPercent: &percent,
	}
}
