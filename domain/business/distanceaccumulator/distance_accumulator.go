package distanceaccumulator

import (
	"github.com/umahmood/haversine"

	"bikeshare/domain/entities/station"
	dataErrors "bikeshare/domain/errors"
)

// DistanceAccumulator struct that collects the straight-line distance of the rides
// + Counter: counts the amount of rides whose stations have coordinates
// + Skipped: counts the rides ignored because a station has no coordinates
// + TotalDistance: sum of distances traveled, in kilometers
// + MaxDistance: longest distance seen, in kilometers
type DistanceAccumulator struct {
	Counter       int     `json:"counter"`
	Skipped       int     `json:"skipped"`
	TotalDistance float64 `json:"total_distance"`
	MaxDistance   float64 `json:"max_distance"`
}

func NewDistanceAccumulator() *DistanceAccumulator {
	return &DistanceAccumulator{}
}

func (da *DistanceAccumulator) UpdateAccumulator(newDistance float64) {
	da.Counter += 1
	da.TotalDistance += newDistance
	if newDistance > da.MaxDistance {
		da.MaxDistance = newDistance
	}
}

func (da *DistanceAccumulator) Skip() {
	da.Skipped += 1
}

func (da *DistanceAccumulator) GetAverageDistance() (float64, error) {
	if da.Counter == 0 {
		return 0, dataErrors.ErrEmptyDataset
	}
	return da.TotalDistance / float64(da.Counter), nil
}

// CalculateDistance returns the distance in kilometers between two stations using haversine formula
func CalculateDistance(startStation station.StationData, endStation station.StationData) float64 {
	station1 := haversine.Coord{Lat: startStation.Latitude, Lon: startStation.Longitude}
	station2 := haversine.Coord{Lat: endStation.Latitude, Lon: endStation.Longitude}

	_, km := haversine.Distance(station1, station2)
	return km
}
