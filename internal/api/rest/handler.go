package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cardfolio/cardfolio-api/internal/api/shared/dto"
	"github.com/cardfolio/cardfolio-api/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// ListCards retrieves all cards, optionally filtered
	// GET /cards?colors=<color>&colors=<color>&type=<type_line>
	ListCards(c *gin.Context)

	// AddCard looks up a card by exact name and adds it to the collection,
	// or increments the owned quantity when the card already exists
	// POST /cards/post
	AddCard(c *gin.Context)

	// UpdateCardAmount sets the owned quantity of a named card
	// PUT /cards/update
	UpdateCardAmount(c *gin.Context)

	// DeleteCard deletes a card whose owned quantity is zero
	// DELETE /cards/delete/:card_id
	DeleteCard(c *gin.Context)

	// ListDecks retrieves all decks
	// GET /decks
	ListDecks(c *gin.Context)

	// AddDeck creates a new deck
	// POST /decks/add
	AddDeck(c *gin.Context)

	// DeleteDeck removes a deck and its memberships
	// DELETE /decks/delete/:deck_id
	DeleteDeck(c *gin.Context)

	// ListDeckCards retrieves all cards in a deck
	// GET /decks/:deck_id/cards
	ListDeckCards(c *gin.Context)

	// AddCardToDeck adds a card to a deck by name
	// POST /decks/:deck_id/cards/add
	AddCardToDeck(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{executor: exec}
}

// ListCards retrieves all cards, optionally filtered by colors and type line
func (h *handler) ListCards(c *gin.Context) {
	colors := c.QueryArray("colors")
	cardType := c.Query("type")

	cards, err := h.executor.ListCards(c.Request.Context(), colors, cardType)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, cards)
}

// AddCard looks up a card by exact name and upserts it into the collection
func (h *handler) AddCard(c *gin.Context) {
	var req dto.AddCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	card, created, err := h.executor.AddCard(c.Request.Context(), req.Name)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	if created {
		c.JSON(http.StatusCreated, dto.CardMessageResponse{Message: "Card added successfully.", Card: card})
		return
	}
	c.JSON(http.StatusOK, dto.CardMessageResponse{Message: "Card updated successfully.", Card: card})
}

// UpdateCardAmount sets the owned quantity of a named card
func (h *handler) UpdateCardAmount(c *gin.Context) {
	var req dto.UpdateCardAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	card, err := h.executor.SetCardAmount(c.Request.Context(), req.Name, *req.AmountOwned)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CardMessageResponse{Message: "Amount updated successfully.", Card: card})
}

// DeleteCard deletes a card whose owned quantity is zero
func (h *handler) DeleteCard(c *gin.Context) {
	cardID, err := strconv.ParseInt(c.Param("card_id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid card id")
		return
	}

	if err := h.executor.DeleteCard(c.Request.Context(), cardID); err != nil {
		respondAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Card deleted successfully."})
}

// ListDecks retrieves all decks
func (h *handler) ListDecks(c *gin.Context) {
	decks, err := h.executor.ListDecks(c.Request.Context())
	if err != nil {
		respondAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, decks)
}

// AddDeck creates a new deck
func (h *handler) AddDeck(c *gin.Context) {
	var req dto.AddDeckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	deck, err := h.executor.CreateDeck(c.Request.Context(), req.Name)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.DeckMessageResponse{Message: "Deck added successfully.", Deck: deck})
}

// DeleteDeck removes a deck and its memberships
func (h *handler) DeleteDeck(c *gin.Context) {
	deckID, err := strconv.ParseInt(c.Param("deck_id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid deck id")
		return
	}

	if err := h.executor.DeleteDeck(c.Request.Context(), deckID); err != nil {
		respondAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deck deleted successfully."})
}

// ListDeckCards retrieves all cards in a deck
func (h *handler) ListDeckCards(c *gin.Context) {
	deckID, err := strconv.ParseInt(c.Param("deck_id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid deck id")
		return
	}

	cards, err := h.executor.ListDeckCards(c.Request.Context(), deckID)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, cards)
}

// AddCardToDeck adds a card to a deck by name
func (h *handler) AddCardToDeck(c *gin.Context) {
	deckID, err := strconv.ParseInt(c.Param("deck_id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid deck id")
		return
	}

	var req dto.AddCardToDeckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.executor.AddCardToDeck(c.Request.Context(), deckID, req.Name); err != nil {
		respondAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Card added successfully."})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
