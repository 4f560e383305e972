// Package geo decides whether a coordinate lies inside a zone's
// GeoJSON geometry. Computation happens directly in lon/lat degrees,
// which is adequate at the tens-of-kilometres scale the zones cover;
// no reprojection is performed.
package geo

import (
	"errors"
	"math"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// epsilon for the on-boundary test, in degrees (~0.1 mm at the
// equator). Keeps vertex and edge hits deterministic across calls.
const epsilon = 1e-9

var ErrInvalidGeometry = errors.New("invalid or empty geometry")

// Decode parses a GeoJSON document into a geometry. Both bare
// geometries and single Features are accepted, since map-drawing
// widgets emit either.
func Decode(raw []byte) (geom.T, error) {
	if len(raw) == 0 {
		return nil, ErrInvalidGeometry
	}

	var g geom.T
	if err := geojson.Unmarshal(raw, &g); err == nil && g != nil {
		return g, nil
	}

	var f geojson.Feature
	if err := f.UnmarshalJSON(raw); err == nil && f.Geometry != nil {
		return f.Geometry, nil
	}

	return nil, ErrInvalidGeometry
}

// Contains reports whether the point (lon, lat) lies inside g.
// The test is boundary-inclusive: a point on an edge or vertex of any
// ring counts as inside, including hole boundaries. Degenerate
// geometry (nil, empty, rings with fewer than three distinct
// vertices) contains nothing.
func Contains(g geom.T, lon, lat float64) bool {
	switch t := g.(type) {
	case *geom.Polygon:
		return polygonContains(t, lon, lat)
	case *geom.MultiPolygon:
		for i := 0; i < t.NumPolygons(); i++ {
			if polygonContains(t.Polygon(i), lon, lat) {
				return true
			}
		}
		return false
	case *geom.Point:
		// Marker zones: only the exact coordinate matches.
		c := t.Coords()
		return len(c) >= 2 && c[0] == lon && c[1] == lat
	case *geom.GeometryCollection:
		for _, sub := range t.Geoms() {
			if Contains(sub, lon, lat) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func polygonContains(p *geom.Polygon, lon, lat float64) bool {
	if p == nil || p.NumLinearRings() == 0 {
		return false
	}

	inside, onEdge := ringContains(p.LinearRing(0).Coords(), lon, lat)
	if onEdge {
		return true
	}
	if !inside {
		return false
	}

	// Holes: strictly inside a hole excludes the point, but its
	// boundary still counts as inside the polygon.
	for i := 1; i < p.NumLinearRings(); i++ {
		hInside, hOnEdge := ringContains(p.LinearRing(i).Coords(), lon, lat)
		if hOnEdge {
			return true
		}
		if hInside {
			return false
		}
	}

	return true
}

// ringContains runs an even-odd ray cast over one ring. onEdge is
// reported separately so callers can apply the inclusion rule for
// outer rings and holes differently.
func ringContains(coords []geom.Coord, x, y float64) (inside, onEdge bool) {
	n := len(coords)
	if n > 1 && coords[0][0] == coords[n-1][0] && coords[0][1] == coords[n-1][1] {
		coords = coords[:n-1]
		n--
	}
	if n < 3 {
		return false, false
	}

	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := coords[i][0], coords[i][1]
		xj, yj := coords[j][0], coords[j][1]

		if onSegment(xi, yi, xj, yj, x, y) {
			return false, true
		}

		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}

	return inside, false
}

func onSegment(x1, y1, x2, y2, px, py float64) bool {
	cross := (x2-x1)*(py-y1) - (y2-y1)*(px-x1)
	if math.Abs(cross) > epsilon {
		return false
	}
	if px < math.Min(x1, x2)-epsilon || px > math.Max(x1, x2)+epsilon {
		return false
	}
	if py < math.Min(y1, y2)-epsilon || py > math.Max(y1, y2)+epsilon {
		return false
	}
	return true
}
