package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/cardfolio/cardfolio-api/internal/api/shared/dto"
	apierrors "github.com/cardfolio/cardfolio-api/internal/api/shared/errors"
	"github.com/cardfolio/cardfolio-api/internal/providers/scryfall"
	"github.com/cardfolio/cardfolio-api/internal/store"
)

// Executor is the business surface between the HTTP handlers and the store
// and lookup client. It returns DTOs and APIError values; raw store errors
// never cross this boundary.
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// ListCards retrieves cards, optionally filtered by colors (superset match)
	// and exact type line
	ListCards(ctx context.Context, colors []string, cardType string) ([]dto.CardResponse, error)

	// AddCard looks the card up by exact name and either creates it with an
	// owned quantity of 1 or increments the existing card's quantity. The
	// boolean reports whether a new card was created.
	AddCard(ctx context.Context, name string) (*dto.CardResponse, bool, error)

	// SetCardAmount sets the owned quantity of the named card
	SetCardAmount(ctx context.Context, name string, amount int) (*dto.CardResponse, error)

	// DeleteCard deletes a card; only cards with zero owned quantity may go
	DeleteCard(ctx context.Context, cardID int64) error

	// ListDecks retrieves all decks
	ListDecks(ctx context.Context) ([]dto.DeckResponse, error)

	// CreateDeck creates a new named deck
	CreateDeck(ctx context.Context, name string) (*dto.DeckResponse, error)

	// DeleteDeck removes a deck and its memberships
	DeleteDeck(ctx context.Context, deckID int64) error

	// ListDeckCards retrieves the cards that are members of the deck
	ListDeckCards(ctx context.Context, deckID int64) ([]dto.CardResponse, error)

	// AddCardToDeck adds one membership row for the named card
	AddCardToDeck(ctx context.Context, deckID int64, cardName string) error
}

type executor struct {
	store  store.Store
	lookup scryfall.Client
}

// NewExecutor creates a new executor backed by the given store and lookup client
func NewExecutor(store store.Store, lookup scryfall.Client) Executor {
	return &executor{store: store, lookup: lookup}
}

func (e *executor) ListCards(ctx context.Context, colors []string, cardType string) ([]dto.CardResponse, error) {
	filter := store.CardFilter{Colors: colors}
	if cardType != "" {
		filter.Type = &cardType
	}

	cards, err := e.store.ListCards(ctx, filter)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list cards: %v", err))
	}

	return dto.MapCardsToDTO(cards), nil
}

func (e *executor) AddCard(ctx context.Context, name string) (*dto.CardResponse, bool, error) {
	// Lookup first: a failed lookup aborts the flow before any store mutation
	record, err := e.lookup.GetCardByExactName(ctx, name)
	if err != nil {
		var lookupErr *scryfall.LookupError
		if errors.As(err, &lookupErr) {
			return nil, false, apierrors.NewServiceError("Card lookup failed", lookupErr.Error())
		}
		return nil, false, apierrors.NewInternalError(fmt.Sprintf("Failed to look up card: %v", err))
	}

	card, created, err := e.store.UpsertCardByName(ctx, store.UpsertCardInput{
		Name:     record.Name,
		Price:    record.Price,
		CardUID:  record.ExternalID,
		ImageURL: record.ImageURL,
		Colors:   record.Colors,
		CardType: record.TypeLine,
	})
	if err != nil {
		return nil, false, apierrors.NewDatabaseError(fmt.Sprintf("Failed to upsert card: %v", err))
	}

	return dto.MapCardToDTO(card), created, nil
}

func (e *executor) SetCardAmount(ctx context.Context, name string, amount int) (*dto.CardResponse, error) {
	card, err := e.store.SetCardAmount(ctx, name, amount)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to set card amount: %v", err))
	}
	if card == nil {
		return nil, apierrors.NewNotFoundError("Card not found")
	}
	return dto.MapCardToDTO(card), nil
}

func (e *executor) DeleteCard(ctx context.Context, cardID int64) error {
	outcome, err := e.store.DeleteCard(ctx, cardID)
	if err != nil {
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to delete card: %v", err))
	}

	switch outcome {
	case store.CardDeleted:
		return nil
	case store.CardDeleteBlocked:
		return apierrors.NewNotFoundError("Card not deleted", "amount owned is not zero")
	default:
		return apierrors.NewNotFoundError("Card not deleted", "no such card")
	}
}

func (e *executor) ListDecks(ctx context.Context) ([]dto.DeckResponse, error) {
	decks, err := e.store.ListDecks(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list decks: %v", err))
	}
	return dto.MapDecksToDTO(decks), nil
}

func (e *executor) CreateDeck(ctx context.Context, name string) (*dto.DeckResponse, error) {
	deck, err := e.store.CreateDeck(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrDeckNameTaken) {
			return nil, apierrors.NewConflictError("Deck name already exists")
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create deck: %v", err))
	}
	return dto.MapDeckToDTO(deck), nil
}

func (e *executor) DeleteDeck(ctx context.Context, deckID int64) error {
	if err := e.store.DeleteDeck(ctx, deckID); err != nil {
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to delete deck: %v", err))
	}
	return nil
}

func (e *executor) ListDeckCards(ctx context.Context, deckID int64) ([]dto.CardResponse, error) {
	cards, err := e.store.ListDeckCards(ctx, deckID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list deck cards: %v", err))
	}
	return dto.MapCardsToDTO(cards), nil
}

func (e *executor) AddCardToDeck(ctx context.Context, deckID int64, cardName string) error {
	_, err := e.store.AddCardToDeck(ctx, deckID, cardName)
	if err != nil {
		if errors.Is(err, store.ErrCardNotFound) {
			return apierrors.NewNotFoundError("Card not found")
		}
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to add card to deck: %v", err))
	}
	return nil
}
