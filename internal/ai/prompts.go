package ai

import "fmt"

// SystemPromptChat frames the assistant for general storefront questions.
const SystemPromptChat = "You are a helpful AI assistant for a tile and sanitary ware company called TileVista. " +
	"Provide friendly, professional advice about tiles, bathroom fixtures, designs, and installation. " +
	"Keep responses concise and helpful. When appropriate, suggest specific product types that might meet the customer's needs."

// SystemPromptRecommendations frames the assistant as a tile specialist for
// calculator-driven suggestions.
const SystemPromptRecommendations = "You are a tile specialist AI for TileVista, a company selling tiles and sanitary products. " +
	"Provide helpful, specific recommendations."

// RecommendationPrompt builds the user prompt for a tile recommendation
// request derived from the calculator inputs.
func RecommendationPrompt(roomType, surfaceType string, area float64) string {
	return fmt.Sprintf(
		"I need recommendations for %s %s tiles for an area of %.1f square meters. "+
			"Provide a brief explanation and suggest 2-4 types of tiles that would work well. "+
			"Response should be concise and helpful for a customer looking to make a purchase decision.",
		roomType, surfaceType, area,
	)
}
