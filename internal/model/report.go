package model

type Mode string

const (
	ModeBasic    Mode = "basic"
	ModeAdvanced Mode = "advanced"
)

func (m Mode) Valid() bool {
	return m == ModeBasic || m == ModeAdvanced
}

// Label is the display form written to FitReport.Mode.
func (m Mode) Label() string {
	if m == ModeAdvanced {
		return "Advanced"
	}
	return "Basic"
}

type Zone string

const (
	ZoneChest    Zone = "chest"
	ZoneWaist    Zone = "waist"
	ZoneHip      Zone = "hip"
	ZoneShoulder Zone = "shoulder"
	ZoneThigh    Zone = "thigh"
	ZoneHem      Zone = "hem"
)

type Rating string

const (
	RatingTooTight  Rating = "Too Tight"
	RatingClose     Rating = "Close"
	RatingComfy     Rating = "Comfy"
	RatingOversized Rating = "Oversized"
	RatingRelaxed   Rating = "Relaxed"
)

type OverallRating string

const (
	OverallTight OverallRating = "Tight"
	OverallClose OverallRating = "Close"
	OverallComfy OverallRating = "Comfy"
	OverallLoose OverallRating = "Loose"
)

type FitZoneResult struct {
	Zone    Zone    `json:"zone"`
	DeltaCm float64 `json:"delta_cm"`
	Rating  Rating  `json:"rating"`
	// Strain is only set in advanced mode.
	Strain *float64 `json:"strain,omitempty"`
}

type FitReport struct {
	Summary          string          `json:"summary"`
	Mode             string          `json:"mode"`
	Zones            []FitZoneResult `json:"zones"`
	Overall          OverallRating   `json:"overall"`
	SizeMatchPercent *int            `json:"size_match_percent,omitempty"`
}

// Clone returns a deep copy that shares no slices or pointers with r.
func (r FitReport) Clone() FitReport {
	out := r
	if r.Zones != nil {
		out.Zones = make([]FitZoneResult, len(r.Zones))
		for i, z := range r.Zones {
			if z.Strain != nil {
				s := *z.Strain
				z.Strain = &s
			}
			out.Zones[i] = z
		}
	}
	if r.SizeMatchPercent != nil {
		p := *r.SizeMatchPercent
		out.SizeMatchPercent = &p
	}
	return out
}
