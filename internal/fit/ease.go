package fit

import "fit-engine/internal/model"

type easeTable map[model.FitStyle]map[model.Zone]float64

// Required ease in cm beyond the body measurement, per fit style and zone.
var (
	topEase = easeTable{
		model.FitSlim:      {model.ZoneChest: 4, model.ZoneWaist: 3, model.ZoneHip: 3, model.ZoneShoulder: 1},
		model.FitRegular:   {model.ZoneChest: 6, model.ZoneWaist: 5, model.ZoneHip: 5, model.ZoneShoulder: 1.5},
		model.FitOversized: {model.ZoneChest: 12, model.ZoneWaist: 10, model.ZoneHip: 10, model.ZoneShoulder: 2},
	}

	bottomEase = easeTable{
		model.FitSlim:      {model.ZoneWaist: 2, model.ZoneHip: 3, model.ZoneThigh: 2, model.ZoneHem: 0},
		model.FitRegular:   {model.ZoneWaist: 3, model.ZoneHip: 4, model.ZoneThigh: 3, model.ZoneHem: 0},
		model.FitOversized: {model.ZoneWaist: 6, model.ZoneHip: 8, model.ZoneThigh: 6, model.ZoneHem: 0},
	}
)

// Ease returns the required ease for a zone. Unknown styles or zones yield 0.
func Ease(category model.Category, style model.FitStyle, zone model.Zone) float64 {
	table := bottomEase
	if category.IsTop() {
		table = topEase
	}
	// Indexing a missing row returns a nil map, which reads as 0.
	return table[style][zone]
}
