package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// Card endpoints
	router.GET("/cards", handler.ListCards)
	router.POST("/cards/post", handler.AddCard)
	router.PUT("/cards/post", handler.AddCard)
	router.PUT("/cards/update", handler.UpdateCardAmount)
	router.DELETE("/cards/delete/:card_id", handler.DeleteCard)

	// Deck endpoints
	router.GET("/decks", handler.ListDecks)
	router.POST("/decks/add", handler.AddDeck)
	router.DELETE("/decks/delete/:deck_id", handler.DeleteDeck)
	router.GET("/decks/:deck_id/cards", handler.ListDeckCards)
	router.POST("/decks/:deck_id/cards/add", handler.AddCardToDeck)
}
