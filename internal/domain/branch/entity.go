package branch

import "time"

// Branch is a workplace location with its authorized check-in geofence.
type Branch struct {
	ID           string
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters int
	Timezone     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
