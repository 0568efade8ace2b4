// Package partner imports garment descriptions published by brands.
package partner

import "fit-engine/internal/model"

// PayloadVersion is the only payload version accepted.
const PayloadVersion = 1

// Payload is the wire form partners publish. Field names are camelCase as
// partners emit them, unlike the rest of the API.
type Payload struct {
	V            int          `json:"v"`
	Brand        string       `json:"brand"`
	SKU          string       `json:"sku"`
	Name         string       `json:"name"`
	Category     string       `json:"category"`
	IntendedFit  string       `json:"intendedFit"`
	Measurements Measurements `json:"measurements"`
	Fabric       *Fabric      `json:"fabric,omitempty"`
	Sig          string       `json:"sig,omitempty"`
}

type Measurements struct {
	ChestFlatCm          *float64 `json:"chestFlatCm,omitempty"`
	WaistFlatCm          *float64 `json:"waistFlatCm,omitempty"`
	HipFlatCm            *float64 `json:"hipFlatCm,omitempty"`
	ShoulderCm           *float64 `json:"shoulderCm,omitempty"`
	SleeveCm             *float64 `json:"sleeveCm,omitempty"`
	LengthCm             *float64 `json:"lengthCm,omitempty"`
	ThighFlatCm          *float64 `json:"thighFlatCm,omitempty"`
	KneeFlatCm           *float64 `json:"kneeFlatCm,omitempty"`
	HemFlatCm            *float64 `json:"hemFlatCm,omitempty"`
	RiseFrontCm          *float64 `json:"riseFrontCm,omitempty"`
	RiseBackCm           *float64 `json:"riseBackCm,omitempty"`
	ChestCircumferenceCm *float64 `json:"chestCircumferenceCm,omitempty"`
	WaistCircumferenceCm *float64 `json:"waistCircumferenceCm,omitempty"`
	HipCircumferenceCm   *float64 `json:"hipCircumferenceCm,omitempty"`
}

type Fabric struct {
	StretchPercent float64  `json:"stretchPercent"`
	WeightGsm      *float64 `json:"weightGsm,omitempty"`
}

// Garment converts the payload into the evaluation model.
func (p Payload) Garment() model.Garment {
	m := p.Measurements
	g := model.Garment{
		Name:        p.Name,
		Brand:       p.Brand,
		SKU:         p.SKU,
		Category:    model.Category(p.Category),
		IntendedFit: model.FitStyle(p.IntendedFit),
		Measurements: model.GarmentMeasurements{
			ChestFlatCm:          m.ChestFlatCm,
			WaistFlatCm:          m.WaistFlatCm,
			HipFlatCm:            m.HipFlatCm,
			ShoulderCm:           m.ShoulderCm,
			SleeveCm:             m.SleeveCm,
			LengthCm:             m.LengthCm,
			ThighFlatCm:          m.ThighFlatCm,
			KneeFlatCm:           m.KneeFlatCm,
			HemFlatCm:            m.HemFlatCm,
			RiseFrontCm:          m.RiseFrontCm,
			RiseBackCm:           m.RiseBackCm,
			ChestCircumferenceCm: m.ChestCircumferenceCm,
			WaistCircumferenceCm: m.WaistCircumferenceCm,
			HipCircumferenceCm:   m.HipCircumferenceCm,
		},
	}
	if p.Fabric != nil {
		g.Fabric = &model.Fabric{
			StretchPercent: p.Fabric.StretchPercent,
			WeightGsm:      p.Fabric.WeightGsm,
		}
	}
	return g
}

// hasTopData and hasBottomData are the minimum measurements a payload must
// carry for its category to be worth evaluating.
func (m Measurements) hasTopData() bool {
	return m.ChestFlatCm != nil || m.ChestCircumferenceCm != nil ||
		m.WaistFlatCm != nil || m.WaistCircumferenceCm != nil
}

func (m Measurements) hasBottomData() bool {
	return m.WaistFlatCm != nil || m.WaistCircumferenceCm != nil ||
		m.HipFlatCm != nil || m.HipCircumferenceCm != nil
}
