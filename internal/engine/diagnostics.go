package engine

import (
	"fmt"

	"fit-engine/internal/fit"
	"fit-engine/internal/model"
)

// Diagnose reports inputs that evaluation silently degrades: unknown enum
// values and zones without usable measurements. Message IDs are left zero.
func Diagnose(g model.Garment, body model.BodyMeasurements) []model.EvaluationMessage {
	var msgs []model.EvaluationMessage

	if !g.Category.Valid() {
		msgs = append(msgs, model.EvaluationMessage{
			Level:   model.LevelWarning,
			Code:    model.CodeUnknownCategory,
			Message: fmt.Sprintf("Unknown category %q, evaluated as a bottom", g.Category.DisplayName()),
		})
	}

	if !g.IntendedFit.Valid() {
		msgs = append(msgs, model.EvaluationMessage{
			Level:   model.LevelWarning,
			Code:    model.CodeUnknownFitStyle,
			Message: fmt.Sprintf("Unknown intended fit %q, no ease applied", g.IntendedFit),
		})
	}

	for _, zone := range fit.Zones(g.Category) {
		if _, ok := fit.GarmentCircumference(zone, g.Measurements); !ok {
			msgs = append(msgs, model.EvaluationMessage{
				Level:   model.LevelWarning,
				Code:    model.CodeMissingGarmentMeasurement,
				Message: fmt.Sprintf("Garment has no %s measurement, zone evaluated against 0 cm", zone),
				Zone:    zone,
			})
		}
		if fit.BodyCircumference(zone, body) <= 0 {
			msgs = append(msgs, model.EvaluationMessage{
				Level:   model.LevelWarning,
				Code:    model.CodeMissingBodyMeasurement,
				Message: fmt.Sprintf("Body has no %s measurement", zone),
				Zone:    zone,
			})
		}
	}

	return msgs
}
