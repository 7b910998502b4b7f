package executor_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/cardfolio/cardfolio-api/internal/api/shared/executor"
	apierrors "github.com/cardfolio/cardfolio-api/internal/api/shared/errors"
	"github.com/cardfolio/cardfolio-api/internal/logger"
	"github.com/cardfolio/cardfolio-api/internal/mocks"
	"github.com/cardfolio/cardfolio-api/internal/providers/scryfall"
	"github.com/cardfolio/cardfolio-api/internal/store"
	"github.com/cardfolio/cardfolio-api/internal/store/schema"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func newTestExecutor(t *testing.T) (executor.Executor, *mocks.MockStore, *mocks.MockScryfallClient) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStore := mocks.NewMockStore(ctrl)
	mockLookup := mocks.NewMockScryfallClient(ctrl)
	return executor.NewExecutor(mockStore, mockLookup), mockStore, mockLookup
}

func buildTestCard(name string) *schema.Card {
	price := 1.52
	image := "https://cards.example.com/bolt/small.jpg"
	return &schema.Card{
		CardID:      7,
		Name:        name,
		Price:       &price,
		CardUID:     "4457ed35-7c10-48c8-a7f9-ba36ef8f62b3",
		ImageURL:    &image,
		AmountOwned: 1,
		Colors:      datatypes.JSONSlice[string]{"R"},
		CardType:    "Instant",
	}
}

func requireAPIError(t *testing.T, err error, code apierrors.ErrorCode) *apierrors.APIError {
	t.Helper()
	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, code, apiErr.Code)
	return apiErr
}

// TestExecutor_AddCard_Created tests that a fresh card is created after a successful lookup
func TestExecutor_AddCard_Created(t *testing.T) {
	exec, mockStore, mockLookup := newTestExecutor(t)
	ctx := context.Background()

	price := 1.52
	image := "https://cards.example.com/bolt/small.jpg"
	record := &scryfall.CardRecord{
		Name:       "Lightning Bolt",
		Price:      &price,
		ExternalID: "4457ed35-7c10-48c8-a7f9-ba36ef8f62b3",
		Colors:     []string{"R"},
		TypeLine:   "Instant",
		ImageURL:   &image,
	}

	mockLookup.EXPECT().
		GetCardByExactName(ctx, "Lightning Bolt").
		Return(record, nil).
		Times(1)

	mockStore.EXPECT().
		UpsertCardByName(ctx, store.UpsertCardInput{
			Name:     record.Name,
			Price:    record.Price,
			CardUID:  record.ExternalID,
			ImageURL: record.ImageURL,
			Colors:   record.Colors,
			CardType: record.TypeLine,
		}).
		Return(buildTestCard("Lightning Bolt"), true, nil).
		Times(1)

	card, created, err := exec.AddCard(ctx, "Lightning Bolt")

	require.NoError(t, err)
	assert.True(t, created)
	require.NotNil(t, card)
	assert.Equal(t, "Lightning Bolt", card.Name)
	assert.Equal(t, 1, card.AmountOwned)
}

// TestExecutor_AddCard_Incremented tests the upsert path for an already-owned card
func TestExecutor_AddCard_Incremented(t *testing.T) {
	exec, mockStore, mockLookup := newTestExecutor(t)
	ctx := context.Background()

	mockLookup.EXPECT().
		GetCardByExactName(ctx, "Lightning Bolt").
		Return(&scryfall.CardRecord{
			Name:       "Lightning Bolt",
			ExternalID: "4457ed35-7c10-48c8-a7f9-ba36ef8f62b3",
			TypeLine:   "Instant",
		}, nil).
		Times(1)

	existing := buildTestCard("Lightning Bolt")
	existing.AmountOwned = 3

	mockStore.EXPECT().
		UpsertCardByName(ctx, gomock.Any()).
		Return(existing, false, nil).
		Times(1)

	card, created, err := exec.AddCard(ctx, "Lightning Bolt")

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 3, card.AmountOwned)
}

// TestExecutor_AddCard_LookupFailure tests that a failed lookup aborts before any store mutation
func TestExecutor_AddCard_LookupFailure(t *testing.T) {
	exec, _, mockLookup := newTestExecutor(t)
	ctx := context.Background()

	mockLookup.EXPECT().
		GetCardByExactName(ctx, "No Such Card").
		Return(nil, &scryfall.LookupError{
			StatusCode: http.StatusNotFound,
			Err:        errors.New("unexpected status code 404"),
		}).
		Times(1)

	// The store mock has no expectations; any call to it fails the test
	card, created, err := exec.AddCard(ctx, "No Such Card")

	assert.Nil(t, card)
	assert.False(t, created)
	apiErr := requireAPIError(t, err, apierrors.ErrCodeServiceError)
	assert.Equal(t, "Card lookup failed", apiErr.Message)
	assert.Contains(t, apiErr.Details, "404")
}

// TestExecutor_SetCardAmount tests quantity updates and the missing-card case
func TestExecutor_SetCardAmount(t *testing.T) {
	t.Run("existing card", func(t *testing.T) {
		exec, mockStore, _ := newTestExecutor(t)
		ctx := context.Background()

		updated := buildTestCard("Lightning Bolt")
		updated.AmountOwned = 5

		mockStore.EXPECT().
			SetCardAmount(ctx, "Lightning Bolt", 5).
			Return(updated, nil).
			Times(1)

		card, err := exec.SetCardAmount(ctx, "Lightning Bolt", 5)

		require.NoError(t, err)
		assert.Equal(t, 5, card.AmountOwned)
	})

	t.Run("missing card", func(t *testing.T) {
		exec, mockStore, _ := newTestExecutor(t)
		ctx := context.Background()

		mockStore.EXPECT().
			SetCardAmount(ctx, "No Such Card", 5).
			Return(nil, nil).
			Times(1)

		card, err := exec.SetCardAmount(ctx, "No Such Card", 5)

		assert.Nil(t, card)
		requireAPIError(t, err, apierrors.ErrCodeNotFound)
	})
}

// TestExecutor_DeleteCard tests the three delete outcomes
func TestExecutor_DeleteCard(t *testing.T) {
	tests := []struct {
		name        string
		outcome     store.DeleteCardOutcome
		wantErr     bool
		wantDetails string
	}{
		{
			name:    "deleted",
			outcome: store.CardDeleted,
		},
		{
			name:        "blocked by owned quantity",
			outcome:     store.CardDeleteBlocked,
			wantErr:     true,
			wantDetails: "amount owned is not zero",
		},
		{
			name:        "missing card",
			outcome:     store.CardNotFound,
			wantErr:     true,
			wantDetails: "no such card",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec, mockStore, _ := newTestExecutor(t)
			ctx := context.Background()

			mockStore.EXPECT().
				DeleteCard(ctx, int64(7)).
				Return(tt.outcome, nil).
				Times(1)

			err := exec.DeleteCard(ctx, 7)

			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			apiErr := requireAPIError(t, err, apierrors.ErrCodeNotFound)
			assert.Equal(t, tt.wantDetails, apiErr.Details)
		})
	}
}

// TestExecutor_ListCards tests filter plumbing into the store
func TestExecutor_ListCards(t *testing.T) {
	exec, mockStore, _ := newTestExecutor(t)
	ctx := context.Background()

	cardType := "Instant"
	mockStore.EXPECT().
		ListCards(ctx, store.CardFilter{Colors: []string{"U", "R"}, Type: &cardType}).
		Return([]schema.Card{*buildTestCard("Izzet Charm")}, nil).
		Times(1)

	cards, err := exec.ListCards(ctx, []string{"U", "R"}, "Instant")

	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "Izzet Charm", cards[0].Name)
}

// TestExecutor_ListCards_NoFilter tests that an empty type means no type filter
func TestExecutor_ListCards_NoFilter(t *testing.T) {
	exec, mockStore, _ := newTestExecutor(t)
	ctx := context.Background()

	mockStore.EXPECT().
		ListCards(ctx, store.CardFilter{}).
		Return([]schema.Card{}, nil).
		Times(1)

	cards, err := exec.ListCards(ctx, nil, "")

	require.NoError(t, err)
	assert.Empty(t, cards)
}

// TestExecutor_CreateDeck tests deck creation and the duplicate-name conflict
func TestExecutor_CreateDeck(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		exec, mockStore, _ := newTestExecutor(t)
		ctx := context.Background()

		mockStore.EXPECT().
			CreateDeck(ctx, "Aggro").
			Return(&schema.Deck{DeckID: 3, Name: "Aggro"}, nil).
			Times(1)

		deck, err := exec.CreateDeck(ctx, "Aggro")

		require.NoError(t, err)
		assert.Equal(t, int64(3), deck.DeckID)
		assert.Equal(t, "Aggro", deck.Name)
	})

	t.Run("duplicate name", func(t *testing.T) {
		exec, mockStore, _ := newTestExecutor(t)
		ctx := context.Background()

		mockStore.EXPECT().
			CreateDeck(ctx, "Aggro").
			Return(nil, store.ErrDeckNameTaken).
			Times(1)

		deck, err := exec.CreateDeck(ctx, "Aggro")

		assert.Nil(t, deck)
		requireAPIError(t, err, apierrors.ErrCodeConflict)
	})
}

// TestExecutor_AddCardToDeck tests membership creation and the unknown-card case
func TestExecutor_AddCardToDeck(t *testing.T) {
	t.Run("added", func(t *testing.T) {
		exec, mockStore, _ := newTestExecutor(t)
		ctx := context.Background()

		mockStore.EXPECT().
			AddCardToDeck(ctx, int64(3), "Lightning Bolt").
			Return(&schema.DeckCard{DeckCardsID: 11, DeckID: 3, CardID: 7}, nil).
			Times(1)

		require.NoError(t, exec.AddCardToDeck(ctx, 3, "Lightning Bolt"))
	})

	t.Run("unknown card", func(t *testing.T) {
		exec, mockStore, _ := newTestExecutor(t)
		ctx := context.Background()

		mockStore.EXPECT().
			AddCardToDeck(ctx, int64(3), "No Such Card").
			Return(nil, store.ErrCardNotFound).
			Times(1)

		err := exec.AddCardToDeck(ctx, 3, "No Such Card")

		apiErr := requireAPIError(t, err, apierrors.ErrCodeNotFound)
		assert.Equal(t, "Card not found", apiErr.Message)
	})
}

// TestExecutor_StoreFailuresSurfaceAsDatabaseErrors tests the generic store error mapping
func TestExecutor_StoreFailuresSurfaceAsDatabaseErrors(t *testing.T) {
	exec, mockStore, _ := newTestExecutor(t)
	ctx := context.Background()

	dbErr := errors.New("connection reset")

	mockStore.EXPECT().
		ListDecks(ctx).
		Return(nil, dbErr).
		Times(1)

	decks, err := exec.ListDecks(ctx)

	assert.Nil(t, decks)
	apiErr := requireAPIError(t, err, apierrors.ErrCodeDatabaseError)
	assert.Contains(t, apiErr.Message, "connection reset")
}
