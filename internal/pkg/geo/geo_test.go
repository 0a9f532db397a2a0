package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_ZeroForSamePoint(t *testing.T) {
	d := Distance(38.7223, -9.1393, 38.7223, -9.1393)
	assert.InDelta(t, 0, d, 1e-9)
}

func TestDistance_KnownCities(t *testing.T) {
	// Lisbon -> Porto is roughly 270-280 km great-circle.
	d := Distance(38.7223, -9.1393, 41.1579, -8.6291)
	assert.InDelta(t, 274, d, 10)
}

func TestDistance_Ordering(t *testing.T) {
	// Query point near Lisbon; Torres Vedras is closer than Leiria.
	qLat, qLng := 38.733172738449944, -9.159315739200155

	leiria := Distance(qLat, qLng, 39.74941243566344, -8.807528387452857)
	torresVedras := Distance(qLat, qLng, 39.087852929110774, -9.256226312659056)

	assert.Less(t, torresVedras, leiria)
}

func TestDistance_Symmetric(t *testing.T) {
	a := Distance(10, 20, 30, 40)
	b := Distance(30, 40, 10, 20)
	assert.InDelta(t, a, b, 1e-9)
}
