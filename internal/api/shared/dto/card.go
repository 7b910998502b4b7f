package dto

import (
	"github.com/cardfolio/cardfolio-api/internal/store/schema"
)

// CardResponse represents a card in API responses
type CardResponse struct {
	CardID      int64    `json:"card_id"`
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	CardUID     string   `json:"card_uid"`
	ImageURL    *string  `json:"image_url"`
	AmountOwned int      `json:"amount_owned"`
	Colors      []string `json:"colors"`
	CardType    string   `json:"card_type"`
}

// CardMessageResponse pairs an outcome message with the affected card
type CardMessageResponse struct {
	Message string        `json:"message"`
	Card    *CardResponse `json:"card,omitempty"`
}

// MapCardToDTO maps a schema.Card to CardResponse
func MapCardToDTO(card *schema.Card) *CardResponse {
	if card == nil {
		return nil
	}

	colors := []string(card.Colors)
	if colors == nil {
		colors = []string{}
	}

	return &CardResponse{
		CardID:      card.CardID,
		Name:        card.Name,
		Price:       card.Price,
		CardUID:     card.CardUID,
		ImageURL:    card.ImageURL,
		AmountOwned: card.AmountOwned,
		Colors:      colors,
		CardType:    card.CardType,
	}
}

// MapCardsToDTO maps a slice of schema.Card to CardResponse values
func MapCardsToDTO(cards []schema.Card) []CardResponse {
	responses := make([]CardResponse, 0, len(cards))
	for i := range cards {
		responses = append(responses, *MapCardToDTO(&cards[i]))
	}
	return responses
}
