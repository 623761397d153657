package entities

import "strings"

// BikeModel is one of the motorcycle models the workshop services.
type BikeModel string

const (
	BikeModelCD70      BikeModel = "CD70"
	BikeModelCDDream   BikeModel = "CD Dream"
	BikeModelPridor    BikeModel = "Pridor"
	BikeModelCG125     BikeModel = "CG125"
	BikeModelCG125Self BikeModel = "CG125 Self"
	BikeModelCB125     BikeModel = "CB125"
	BikeModelCB150     BikeModel = "CB150"
)

var bikeModels = []BikeModel{
	BikeModelCD70,
	BikeModelCDDream,
	BikeModelPridor,
	BikeModelCG125,
	BikeModelCG125Self,
	BikeModelCB125,
	BikeModelCB150,
}

// BikeModels returns the known models in display order.
func BikeModels() []BikeModel {
	out := make([]BikeModel, len(bikeModels))
	copy(out, bikeModels)
	return out
}

// ParseBikeModel matches case-insensitively and ignores surrounding spaces.
func ParseBikeModel(s string) (BikeModel, bool) {
	s = strings.TrimSpace(s)
	for _, m := range bikeModels {
		if strings.EqualFold(string(m), s) {
			return m, true
		}
	}
	return "", false
}
