package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alerto-backend/internal/geo"
)

const unitSquare = `{
	"type": "Polygon",
	"coordinates": [[[0,0],[10,0],[10,10],[0,10],[0,0]]]
}`

const squareWithHole = `{
	"type": "Polygon",
	"coordinates": [
		[[0,0],[10,0],[10,10],[0,10],[0,0]],
		[[4,4],[6,4],[6,6],[4,6],[4,4]]
	]
}`

const twoSquares = `{
	"type": "MultiPolygon",
	"coordinates": [
		[[[0,0],[10,0],[10,10],[0,10],[0,0]]],
		[[[20,20],[30,20],[30,30],[20,30],[20,20]]]
	]
}`

func TestDecode(t *testing.T) {
	t.Run("BareGeometry", func(t *testing.T) {
		g, err := geo.Decode([]byte(unitSquare))
		require.NoError(t, err)
		require.NotNil(t, g)
	})

	t.Run("Feature", func(t *testing.T) {
		feature := `{"type":"Feature","properties":{},"geometry":` + unitSquare + `}`
		g, err := geo.Decode([]byte(feature))
		require.NoError(t, err)
		require.NotNil(t, g)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := geo.Decode(nil)
		assert.ErrorIs(t, err, geo.ErrInvalidGeometry)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := geo.Decode([]byte(`{"type":"Nonsense"}`))
		assert.ErrorIs(t, err, geo.ErrInvalidGeometry)
	})
}

func TestContains_Polygon(t *testing.T) {
	g, err := geo.Decode([]byte(unitSquare))
	require.NoError(t, err)

	tests := []struct {
		name     string
		lon, lat float64
		want     bool
	}{
		{"Interior", 5, 5, true},
		{"Outside", 15, 15, false},
		{"OnEdge", 0, 5, true},
		{"OnVertex", 0, 0, true},
		{"OnTopEdge", 5, 10, true},
		{"JustOutside", -0.001, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, geo.Contains(g, tt.lon, tt.lat))
		})
	}
}

func TestContains_Hole(t *testing.T) {
	g, err := geo.Decode([]byte(squareWithHole))
	require.NoError(t, err)

	tests := []struct {
		name     string
		lon, lat float64
		want     bool
	}{
		{"BetweenRings", 2, 2, true},
		{"InsideHole", 5, 5, false},
		{"OnHoleBoundary", 4, 5, true},
		{"OnHoleVertex", 4, 4, true},
		{"OnOuterEdge", 0, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, geo.Contains(g, tt.lon, tt.lat))
		})
	}
}

func TestContains_MultiPolygon(t *testing.T) {
	g, err := geo.Decode([]byte(twoSquares))
	require.NoError(t, err)

	assert.True(t, geo.Contains(g, 5, 5))
	assert.True(t, geo.Contains(g, 25, 25))
	assert.False(t, geo.Contains(g, 15, 15))
}

func TestContains_Point(t *testing.T) {
	g, err := geo.Decode([]byte(`{"type":"Point","coordinates":[12.5,-7.25]}`))
	require.NoError(t, err)

	assert.True(t, geo.Contains(g, 12.5, -7.25))
	assert.False(t, geo.Contains(g, 12.5, -7.250001))
}

func TestContains_Degenerate(t *testing.T) {
	t.Run("NilGeometry", func(t *testing.T) {
		assert.False(t, geo.Contains(nil, 0, 0))
	})

	t.Run("TooFewVertices", func(t *testing.T) {
		g, err := geo.Decode([]byte(`{"type":"Polygon","coordinates":[[[0,0],[10,10],[0,0]]]}`))
		require.NoError(t, err)
		assert.False(t, geo.Contains(g, 1, 1))
	})

	t.Run("EmptyPolygon", func(t *testing.T) {
		g, err := geo.Decode([]byte(`{"type":"Polygon","coordinates":[]}`))
		if err != nil {
			t.Skip("decoder rejects empty polygon outright")
		}
		assert.False(t, geo.Contains(g, 0, 0))
	})
}

func TestContains_GeometryCollection(t *testing.T) {
	collection := `{
		"type": "GeometryCollection",
		"geometries": [
			{"type":"Point","coordinates":[50,50]},
			` + unitSquare + `
		]
	}`

	g, err := geo.Decode([]byte(collection))
	require.NoError(t, err)

	assert.True(t, geo.Contains(g, 5, 5))
	assert.True(t, geo.Contains(g, 50, 50))
	assert.False(t, geo.Contains(g, 40, 40))
}
