package store

import (
	"context"
	"errors"

	"github.com/cardfolio/cardfolio-api/internal/store/schema"
)

var (
	// ErrDeckNameTaken is returned when creating a deck whose name already exists
	ErrDeckNameTaken = errors.New("deck name already taken")
	// ErrCardNotFound is returned when a referenced card does not exist
	ErrCardNotFound = errors.New("card not found")
)

// DeleteCardOutcome describes the result of a card delete attempt
type DeleteCardOutcome int

const (
	// CardDeleted means the card existed with zero quantity and was removed
	CardDeleted DeleteCardOutcome = iota
	// CardNotFound means no card with the given id exists
	CardNotFound
	// CardDeleteBlocked means the card exists but its owned quantity is nonzero
	CardDeleteBlocked
)

// CardFilter holds optional filters for listing cards. Colors matches cards
// whose color set is a superset of the given set; Type matches the type line
// exactly. Both filters apply as a conjunction.
type CardFilter struct {
	Colors []string
	Type   *string
}

// UpsertCardInput holds the normalized lookup result used to create a card
// or increment the owned quantity of the card with the same name
type UpsertCardInput struct {
	Name     string
	Price    *float64
	CardUID  string
	ImageURL *string
	Colors   []string
	CardType string
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// ListCards retrieves cards matching the given filter; an empty filter returns all cards
	ListCards(ctx context.Context, filter CardFilter) ([]schema.Card, error)
	// GetCardByName retrieves a card by its exact name, or nil when absent
	GetCardByName(ctx context.Context, name string) (*schema.Card, error)
	// UpsertCardByName inserts a new card with amount_owned = 1, or increments
	// the existing card's amount_owned by 1 when the name is already present.
	// The boolean reports whether a new row was created.
	UpsertCardByName(ctx context.Context, input UpsertCardInput) (*schema.Card, bool, error)
	// SetCardAmount sets amount_owned to an explicit value for the named card,
	// returning nil when no such card exists
	SetCardAmount(ctx context.Context, name string, amount int) (*schema.Card, error)
	// DeleteCard deletes the card only when its amount_owned is zero
	DeleteCard(ctx context.Context, cardID int64) (DeleteCardOutcome, error)

	// ListDecks retrieves all decks
	ListDecks(ctx context.Context) ([]schema.Deck, error)
	// CreateDeck creates a new deck, returning ErrDeckNameTaken on a name conflict
	CreateDeck(ctx context.Context, name string) (*schema.Deck, error)
	// DeleteDeck removes the deck and, by cascade, its memberships.
	// Deleting an absent deck is a no-op.
	DeleteDeck(ctx context.Context, deckID int64) error
	// ListDeckCards retrieves all cards that are members of the given deck
	ListDeckCards(ctx context.Context, deckID int64) ([]schema.Card, error)
	// AddCardToDeck resolves the card by name and inserts a membership row,
	// returning ErrCardNotFound when no card with that name exists. Adding the
	// same card twice creates two membership rows.
	AddCardToDeck(ctx context.Context, deckID int64, cardName string) (*schema.DeckCard, error)
}
