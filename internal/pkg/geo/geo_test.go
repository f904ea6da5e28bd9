package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_Symmetry(t *testing.T) {
	// Bangkok city center to Chatuchak
	d1 := Distance(13.7563, 100.5018, 13.8286, 100.5532)
	d2 := Distance(13.8286, 100.5532, 13.7563, 100.5018)
	assert.InDelta(t, d1, d2, 1e-9)
	assert.Greater(t, d1, 0.0)
}

func TestDistance_IdenticalPoints(t *testing.T) {
	d := Distance(13.7563, 100.5018, 13.7563, 100.5018)
	assert.Equal(t, 0.0, d)
}

func TestDistance_KnownPair(t *testing.T) {
	// Bangkok to Chiang Mai, roughly 580 km great-circle
	d := Distance(13.7563, 100.5018, 18.7883, 98.9853)
	assert.InDelta(t, 580000, d, 10000)
}

func TestCheckRadius_SamePoint(t *testing.T) {
	res := CheckRadius(
		Point{Latitude: 13.7563, Longitude: 100.5018},
		Fence{Latitude: 13.7563, Longitude: 100.5018, RadiusMeters: 100},
	)
	assert.True(t, res.InRadius)
	assert.Equal(t, 0, res.DistanceMeters)
}

func TestCheckRadius_InclusiveBoundary(t *testing.T) {
	target := Fence{Latitude: 13.7563, Longitude: 100.5018}
	current := Point{Latitude: 13.7572, Longitude: 100.5018}

	meters := CheckRadius(current, target).DistanceMeters
	assert.Greater(t, meters, 0)

	// Exactly at the boundary counts as inside
	target.RadiusMeters = meters
	assert.True(t, CheckRadius(current, target).InRadius)

	// One meter short of the distance is outside
	target.RadiusMeters = meters - 1
	assert.False(t, CheckRadius(current, target).InRadius)
}

func TestCheckRadius_Outside(t *testing.T) {
	res := CheckRadius(
		Point{Latitude: 13.7563, Longitude: 100.5018},
		Fence{Latitude: 13.8286, Longitude: 100.5532, RadiusMeters: 200},
	)
	assert.False(t, res.InRadius)
	assert.Greater(t, res.DistanceMeters, 200)
}
