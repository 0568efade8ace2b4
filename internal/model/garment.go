package model

type Category string

const (
	CategoryTShirt   Category = "tshirt"
	CategoryShirt    Category = "shirt"
	CategoryHoodie   Category = "hoodie"
	CategoryDress    Category = "dress"
	CategoryJacket   Category = "jacket"
	CategoryJeans    Category = "jeans"
	CategoryTrousers Category = "trousers"
	CategorySkirt    Category = "skirt"
)

// Categories lists every known category in display order.
var Categories = []Category{
	CategoryTShirt,
	CategoryShirt,
	CategoryHoodie,
	CategoryJeans,
	CategoryTrousers,
	CategorySkirt,
	CategoryDress,
	CategoryJacket,
}

var categoryNames = map[Category]string{
	CategoryTShirt:   "T-Shirt",
	CategoryShirt:    "Shirt",
	CategoryHoodie:   "Hoodie",
	CategoryDress:    "Dress",
	CategoryJacket:   "Jacket",
	CategoryJeans:    "Jeans",
	CategoryTrousers: "Trousers",
	CategorySkirt:    "Skirt",
}

// IsTop reports whether garments of this category are evaluated on upper-body
// zones. Anything that is not a known top, unknown values included, is
// treated as a bottom.
func (c Category) IsTop() bool {
	switch c {
	case CategoryTShirt, CategoryShirt, CategoryHoodie, CategoryDress, CategoryJacket:
		return true
	}
	return false
}

func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

func (c Category) DisplayName() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return string(c)
}

// FitStyle is the designed fit of a garment. It selects the ease table row.
type FitStyle string

const (
	FitSlim      FitStyle = "slim"
	FitRegular   FitStyle = "regular"
	FitOversized FitStyle = "oversized"
)

func (f FitStyle) Valid() bool {
	return f == FitSlim || f == FitRegular || f == FitOversized
}

// GarmentMeasurements holds flat widths and optional raw circumferences in cm.
// A nil field means the value was not measured.
type GarmentMeasurements struct {
	ChestFlatCm *float64 `json:"chest_flat_cm,omitempty"`
	WaistFlatCm *float64 `json:"waist_flat_cm,omitempty"`
	HipFlatCm   *float64 `json:"hip_flat_cm,omitempty"`
	ShoulderCm  *float64 `json:"shoulder_cm,omitempty"`
	SleeveCm    *float64 `json:"sleeve_cm,omitempty"`
	LengthCm    *float64 `json:"length_cm,omitempty"`
	ThighFlatCm *float64 `json:"thigh_flat_cm,omitempty"`
	KneeFlatCm  *float64 `json:"knee_flat_cm,omitempty"`
	HemFlatCm   *float64 `json:"hem_flat_cm,omitempty"`
	RiseFrontCm *float64 `json:"rise_front_cm,omitempty"`
	RiseBackCm  *float64 `json:"rise_back_cm,omitempty"`

	ChestCircumferenceCm *float64 `json:"chest_circumference_cm,omitempty"`
	WaistCircumferenceCm *float64 `json:"waist_circumference_cm,omitempty"`
	HipCircumferenceCm   *float64 `json:"hip_circumference_cm,omitempty"`
}

type Fabric struct {
	// StretchPercent: 0-2 non-stretch, 3-7 slight, 8-15 stretch.
	StretchPercent float64  `json:"stretch_percent"`
	WeightGsm      *float64 `json:"weight_gsm,omitempty"`
}

type Garment struct {
	Name         string              `json:"name,omitempty"`
	Brand        string              `json:"brand,omitempty"`
	SKU          string              `json:"sku,omitempty"`
	Category     Category            `json:"category"`
	IntendedFit  FitStyle            `json:"intended_fit"`
	Measurements GarmentMeasurements `json:"measurements"`
	Fabric       *Fabric             `json:"fabric,omitempty"`
}

// Cm returns a pointer to v, for building optional measurements.
func Cm(v float64) *float64 {
	return &v
}
