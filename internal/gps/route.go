package gps

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

// Schematic canvas geometry. Points are laid out inside a 600x250 box with a
// 20 px margin; y grows downwards, so north is up.
const (
	CanvasWidth  = 600
	CanvasHeight = 250

	canvasMargin = 20
	drawWidth    = 560
	drawHeight   = 210

	minSpanDegrees = 0.0001
)

// RoutePoint is one ping projected onto the schematic canvas.
type RoutePoint struct {
	PingID      uuid.UUID
	X           float64
	Y           float64
	Latitude    float64
	Longitude   float64
	CollectedAt time.Time
	Source      domain.LocationSource
}

// Route is the schematic projection of a round's pings in collection order.
type Route struct {
	Points   []RoutePoint
	BySource map[domain.LocationSource]int
}

// Schematic projects pings onto the canvas. Spans below 0.0001 degrees are
// widened so a single point or a stationary cluster still renders.
func Schematic(pings []domain.LocationPing) Route {
	sorted := make([]domain.LocationPing, len(pings))
	copy(sorted, pings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CollectedAt.Before(sorted[j].CollectedAt)
	})

	route := Route{
		Points:   make([]RoutePoint, 0, len(sorted)),
		BySource: make(map[domain.LocationSource]int),
	}
	if len(sorted) == 0 {
		return route
	}

	minLat, maxLat := sorted[0].Latitude, sorted[0].Latitude
	minLng, maxLng := sorted[0].Longitude, sorted[0].Longitude
	for _, p := range sorted[1:] {
		minLat = math.Min(minLat, p.Latitude)
		maxLat = math.Max(maxLat, p.Latitude)
		minLng = math.Min(minLng, p.Longitude)
		maxLng = math.Max(maxLng, p.Longitude)
	}
	latSpan := math.Max(maxLat-minLat, minSpanDegrees)
	lngSpan := math.Max(maxLng-minLng, minSpanDegrees)

	for _, p := range sorted {
		route.Points = append(route.Points, RoutePoint{
			PingID:      p.ID,
			X:           canvasMargin + (p.Longitude-minLng)/lngSpan*drawWidth,
			Y:           canvasMargin + (1-(p.Latitude-minLat)/latSpan)*drawHeight,
			Latitude:    p.Latitude,
			Longitude:   p.Longitude,
			CollectedAt: p.CollectedAt,
			Source:      p.Source,
		})
		route.BySource[p.Source]++
	}
	return route
}
