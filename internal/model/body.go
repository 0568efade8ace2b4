package model

// BodyMeasurements is a snapshot of one person's measurements, all in cm.
type BodyMeasurements struct {
	Name            string  `json:"name,omitempty"`
	Gender          string  `json:"gender,omitempty"`
	HeightCm        float64 `json:"height_cm"`
	ChestBustCm     float64 `json:"chest_bust_cm"`
	UnderbustCm     float64 `json:"underbust_cm"`
	WaistCm         float64 `json:"waist_cm"`
	HighHipCm       float64 `json:"high_hip_cm"`
	LowHipSeatCm    float64 `json:"low_hip_seat_cm"`
	ShoulderWidthCm float64 `json:"shoulder_width_cm"`
	ArmLengthCm     float64 `json:"arm_length_cm"`
	BicepCm         float64 `json:"bicep_cm"`
	InseamCm        float64 `json:"inseam_cm"`
	ThighCm         float64 `json:"thigh_cm"`
	CalfCm          float64 `json:"calf_cm"`
}

const DefaultTightnessToleranceCm = 2.0

type FitPreferences struct {
	TightnessToleranceCm float64 `json:"tightness_tolerance_cm"`
	// PreferredFit is informational; evaluation does not consult it.
	PreferredFit FitStyle `json:"preferred_fit,omitempty"`
}

func DefaultPreferences() FitPreferences {
	return FitPreferences{
		TightnessToleranceCm: DefaultTightnessToleranceCm,
		PreferredFit:         FitRegular,
	}
}
