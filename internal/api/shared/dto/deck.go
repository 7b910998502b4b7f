package dto

import (
	"github.com/cardfolio/cardfolio-api/internal/store/schema"
)

// DeckResponse represents a deck in API responses
type DeckResponse struct {
	DeckID int64  `json:"deck_id"`
	Name   string `json:"name"`
}

// DeckMessageResponse pairs an outcome message with the affected deck
type DeckMessageResponse struct {
	Message string        `json:"message"`
	Deck    *DeckResponse `json:"deck,omitempty"`
}

// MapDeckToDTO maps a schema.Deck to DeckResponse
func MapDeckToDTO(deck *schema.Deck) *DeckResponse {
	if deck == nil {
		return nil
	}

	return &DeckResponse{
		DeckID: deck.DeckID,
		Name:   deck.Name,
	}
}

// MapDecksToDTO maps a slice of schema.Deck to DeckResponse values
func MapDecksToDTO(decks []schema.Deck) []DeckResponse {
	responses := make([]DeckResponse, 0, len(decks))
	for i := range decks {
		responses = append(responses, *MapDeckToDTO(&decks[i]))
	}
	return responses
}
