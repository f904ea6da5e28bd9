package geo

import "math"

// earthRadiusMeters is the mean Earth radius used for great-circle distances.
const earthRadiusMeters = 6371000

// Point is a GPS coordinate in decimal degrees.
type Point struct {
	Latitude  float64
	Longitude float64
}

// Fence is a circular geofence around a workplace location.
type Fence struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters int
}

// Result reports the outcome of a geofence check.
type Result struct {
	InRadius       bool
	DistanceMeters int
}

// Distance computes the Haversine great-circle distance between two
// coordinates in meters.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// CheckRadius reports whether current lies within the fence. The boundary is
// inclusive: a point exactly radius meters away is inside.
func CheckRadius(current Point, target Fence) Result {
	meters := int(math.Round(Distance(current.Latitude, current.Longitude, target.Latitude, target.Longitude)))
	return Result{
		InRadius:       meters <= target.RadiusMeters,
		DistanceMeters: meters,
	}
}
