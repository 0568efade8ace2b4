package engine

import (
	"testing"

	"fit-engine/internal/model"
)

func codes(msgs []model.EvaluationMessage) map[string]int {
	out := make(map[string]int)
	for _, m := range msgs {
		out[m.Code]++
	}
	return out
}

func TestDiagnoseUnknownEnums(t *testing.T) {
	g := model.Garment{
		Category:    "poncho",
		IntendedFit: "boxy",
		Measurements: model.GarmentMeasurements{
			WaistFlatCm: model.Cm(40),
			HipFlatCm:   model.Cm(50),
			ThighFlatCm: model.Cm(30),
			HemFlatCm:   model.Cm(20),
		},
	}
	body := model.BodyMeasurements{WaistCm: 75, HighHipCm: 95, ThighCm: 55, CalfCm: 35}

	got := codes(Diagnose(g, body))

	if got[model.CodeUnknownCategory] != 1 {
		t.Fatalf("expected %s, got %v", model.CodeUnknownCategory, got)
	}
	if got[model.CodeUnknownFitStyle] != 1 {
		t.Fatalf("expected %s, got %v", model.CodeUnknownFitStyle, got)
	}
	if len(got) != 2 {
		t.Fatalf("expected only enum warnings, got %v", got)
	}
}

func TestDiagnoseMissingMeasurements(t *testing.T) {
	g := model.Garment{
		Category:    model.CategorySkirt,
		IntendedFit: model.FitRegular,
		Measurements: model.GarmentMeasurements{
			WaistFlatCm: model.Cm(0), // measured as zero is still measured
			HipFlatCm:   model.Cm(50),
		},
	}
	body := model.BodyMeasurements{WaistCm: 75, HighHipCm: 95}

	msgs := Diagnose(g, body)
	got := codes(msgs)

	// thigh and hem: neither garment nor body data
	if got[model.CodeMissingGarmentMeasurement] != 2 {
		t.Fatalf("expected 2 missing garment measurements, got %v", got)
	}
	if got[model.CodeMissingBodyMeasurement] != 2 {
		t.Fatalf("expected 2 missing body measurements, got %v", got)
	}
	for _, m := range msgs {
		if m.Zone != model.ZoneThigh && m.Zone != model.ZoneHem {
			t.Fatalf("unexpected zone %s in %+v", m.Zone, m)
		}
		if m.Level != model.LevelWarning {
			t.Fatalf("expected WARNING level, got %s", m.Level)
		}
	}
}
