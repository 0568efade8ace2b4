package fit

import (
	"math"

	"fit-engine/internal/model"
)

// OverallRating folds zone ratings into one verdict. Oversized and Relaxed
// zones count together as loose. Rules are checked in order; the first match
// wins.
func OverallRating(zones []model.FitZoneResult) model.OverallRating {
	var tight, closeFit, comfy, loose int
	for _, z := range zones {
		switch z.Rating {
		case model.RatingTooTight:
			tight++
		case model.RatingClose:
			closeFit++
		case model.RatingComfy:
			comfy++
		case model.RatingOversized, model.RatingRelaxed:
			loose++
		}
	}

	switch {
	case tight > 0:
		return model.OverallTight
	case closeFit > comfy+loose:
		return model.OverallClose
	case comfy >= closeFit+loose:
		return model.OverallComfy
	default:
		return model.OverallLoose
	}
}

// SizeMatchPercent is the rounded share of zones rated Comfy or Close.
func SizeMatchPercent(zones []model.FitZoneResult) int {
	if len(zones) == 0 {
		return 0
	}
	good := countRating(zones, model.RatingComfy) + countRating(zones, model.RatingClose)
	return int(math.Round(100 * float64(good) / float64(len(zones))))
}

func countRating(zones []model.FitZoneResult, r model.Rating) int {
	n := 0
	for _, z := range zones {
		if z.Rating == r {
			n++
		}
	}
	return n
}
