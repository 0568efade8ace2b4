package fit

import "fit-engine/internal/model"

var (
	topZones    = []model.Zone{model.ZoneChest, model.ZoneWaist, model.ZoneHip, model.ZoneShoulder}
	bottomZones = []model.Zone{model.ZoneWaist, model.ZoneHip, model.ZoneThigh, model.ZoneHem}
)

type zoneSpec struct {
	body    func(model.BodyMeasurements) float64
	garment func(model.GarmentMeasurements) *float64
	// stress zones carry the asymmetry bias in advanced mode
	stress bool
}

var zoneSpecs = map[model.Zone]zoneSpec{
	model.ZoneChest: {
		body: func(b model.BodyMeasurements) float64 { return b.ChestBustCm },
		garment: func(m model.GarmentMeasurements) *float64 {
			return circumferenceOrFlat(m.ChestCircumferenceCm, m.ChestFlatCm)
		},
		stress: true,
	},
	model.ZoneWaist: {
		body: func(b model.BodyMeasurements) float64 { return b.WaistCm },
		garment: func(m model.GarmentMeasurements) *float64 {
			return circumferenceOrFlat(m.WaistCircumferenceCm, m.WaistFlatCm)
		},
		stress: true,
	},
	model.ZoneHip: {
		body: func(b model.BodyMeasurements) float64 { return b.HighHipCm },
		garment: func(m model.GarmentMeasurements) *float64 {
			return circumferenceOrFlat(m.HipCircumferenceCm, m.HipFlatCm)
		},
		stress: true,
	},
	model.ZoneShoulder: {
		body:    func(b model.BodyMeasurements) float64 { return b.ShoulderWidthCm },
		garment: func(m model.GarmentMeasurements) *float64 { return m.ShoulderCm },
	},
	model.ZoneThigh: {
		body:    func(b model.BodyMeasurements) float64 { return b.ThighCm },
		garment: func(m model.GarmentMeasurements) *float64 { return doubled(m.ThighFlatCm) },
	},
	// Hem is compared against the calf measurement.
	model.ZoneHem: {
		body:    func(b model.BodyMeasurements) float64 { return b.CalfCm },
		garment: func(m model.GarmentMeasurements) *float64 { return doubled(m.HemFlatCm) },
	},
}

// Zones returns the ordered zone set evaluated for a category.
func Zones(category model.Category) []model.Zone {
	src := bottomZones
	if category.IsTop() {
		src = topZones
	}
	out := make([]model.Zone, len(src))
	copy(out, src)
	return out
}

// BodyCircumference returns the body measurement compared against a zone.
func BodyCircumference(zone model.Zone, body model.BodyMeasurements) float64 {
	spec, ok := zoneSpecs[zone]
	if !ok {
		return 0
	}
	return spec.body(body)
}

// GarmentCircumference resolves the garment circumference for a zone.
// The second result is false when the garment carries no data for the zone,
// in which case the circumference is 0.
func GarmentCircumference(zone model.Zone, m model.GarmentMeasurements) (float64, bool) {
	spec, ok := zoneSpecs[zone]
	if !ok {
		return 0, false
	}
	v := spec.garment(m)
	if v == nil {
		return 0, false
	}
	return *v, true
}

func isStressZone(zone model.Zone) bool {
	return zoneSpecs[zone].stress
}

func circumferenceOrFlat(circ, flat *float64) *float64 {
	if circ != nil {
		return circ
	}
	return doubled(flat)
}

func doubled(flat *float64) *float64 {
	if flat == nil {
		return nil
	}
	v := *flat * 2
	return &v
}

// zoneMeasure is everything an evaluator needs to rate one zone.
type zoneMeasure struct {
	zone    model.Zone
	body    float64
	garment float64
	ease    float64
}

func measure(zone model.Zone, g model.Garment, body model.BodyMeasurements) zoneMeasure {
	garment, _ := GarmentCircumference(zone, g.Measurements)
	return zoneMeasure{
		zone:    zone,
		body:    BodyCircumference(zone, body),
		garment: garment,
		ease:    Ease(g.Category, g.IntendedFit, zone),
	}
}

// delta is the garment circumference minus what the body plus ease requires.
func (m zoneMeasure) delta() float64 {
	return m.garment - (m.body + m.ease)
}
