// Package services – RecommendationService
//
// This file implements RecommendationService, which turns calculator inputs
// (room type, surface, area) into model-generated tile suggestions. The
// display title is derived locally; only the advice text comes from the
// assistant.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tilevista/go-store-backend/internal/ai"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Recommendation is a generated tile suggestion for one room/surface pair.
type Recommendation struct {
	Title  string  `json:"title"`
	Advice string  `json:"advice"`
	Area   float64 `json:"area"`
}

// RecommendationService asks the assistant for tile suggestions.
type RecommendationService struct {
	AI ai.Responder

	titleCaser cases.Caser
}

// NewRecommendationService constructs a RecommendationService.
func NewRecommendationService(responder ai.Responder) *RecommendationService {
	return &RecommendationService{
		AI:         responder,
		titleCaser: cases.Title(language.English),
	}
}

// Recommend generates tile suggestions for the given room, surface, and area
// in square meters. Inputs are trimmed; blank room or surface and
// non-positive areas are rejected before the model is called.
func (s *RecommendationService) Recommend(ctx context.Context, roomType, surfaceType string, area float64) (*Recommendation, error) {
	tr := otel.Tracer("services/RecommendationService")
	ctx, span := tr.Start(ctx, "Recommend",
		trace.WithAttributes(
			attribute.String("room.type", roomType),
			attribute.String("surface.type", surfaceType),
			attribute.Float64("area.sqm", area),
		),
	)
	defer span.End()

	roomType = strings.ToLower(strings.TrimSpace(roomType))
	surfaceType = strings.ToLower(strings.TrimSpace(surfaceType))
	if roomType == "" || surfaceType == "" {
		return nil, ErrEmptyMessage
	}
	if area <= 0 {
		return nil, ErrInvalidDimensions
	}

	advice, err := s.AI.Reply(ctx, ai.SystemPromptRecommendations, []ai.Message{
		{Role: ai.RoleUser, Content: ai.RecommendationPrompt(roomType, surfaceType, area)},
	})
	if err != nil {
		return nil, fmt.Errorf("recommendation reply: %w", err)
	}

	return &Recommendation{
		Title:  s.titleCaser.String(fmt.Sprintf("%s %s tiles", roomType, surfaceType)),
		Advice: advice,
		Area:   area,
	}, nil
}
