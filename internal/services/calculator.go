// Package services – tile calculator
//
// Pure quantity math, no storage and no model calls. Room dimensions arrive
// in meters, tile sizes are the standard catalog formats in millimeters. The
// recommended purchase adds a 10% cutting and breakage allowance on top of
// the exact count, rounding up at both steps so a customer never comes up
// short.
package services

import (
	"context"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// wastageRate is the cutting and breakage allowance applied to the exact
// tile count. The extra tiles are rounded up on their own before being added,
// so the allowance is always whole tiles.
const wastageRate = 0.10

// tileSizeAreas maps supported tile formats (label in mm) to the area of one
// tile in square meters.
var tileSizeAreas = map[string]float64{
	"300x300": 0.09,
	"300x600": 0.18,
	"600x600": 0.36,
	"900x900": 0.81,
}

// TileEstimate is the calculator result for one room.
type TileEstimate struct {
	Area                float64 `json:"area"`
	TileSize            string  `json:"tileSize"`
	TilesNeeded         int     `json:"tilesNeeded"`
	RecommendedPurchase int     `json:"recommendedPurchase"`
}

// CalculatorService computes tile quantities for a room.
type CalculatorService struct{}

// NewCalculatorService constructs a CalculatorService.
func NewCalculatorService() *CalculatorService {
	return &CalculatorService{}
}

// Estimate computes how many tiles of the given format cover a length×width
// room, plus the recommended purchase including wastage. Dimensions are in
// meters. Returns ErrInvalidDimensions for non-positive dimensions or an
// unsupported tile size.
func (s *CalculatorService) Estimate(ctx context.Context, length, width float64, tileSize string) (*TileEstimate, error) {
	tr := otel.Tracer("services/CalculatorService")
	_, span := tr.Start(ctx, "Estimate",
		trace.WithAttributes(
			attribute.Float64("room.length", length),
			attribute.Float64("room.width", width),
			attribute.String("tile.size", tileSize),
		),
	)
	defer span.End()

	if length <= 0 || width <= 0 {
		return nil, ErrInvalidDimensions
	}
	tileArea, ok := tileSizeAreas[tileSize]
	if !ok {
		return nil, ErrInvalidDimensions
	}

	area := length * width
	needed := int(math.Ceil(area / tileArea))
	extra := int(math.Ceil(float64(needed) * wastageRate))
	recommended := needed + extra

	return &TileEstimate{
		Area:                area,
		TileSize:            tileSize,
		TilesNeeded:         needed,
		RecommendedPurchase: recommended,
	}, nil
}

// TileSizes lists the supported tile formats in ascending area order.
func TileSizes() []string {
	return []string{"300x300", "300x600", "600x600", "900x900"}
}
