package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardfolio/cardfolio-api/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestCard creates a test card upsert input
func buildTestCard(name string, colors []string, cardType string) UpsertCardInput {
	price := 1.25
	image := fmt.Sprintf("https://cards.example.com/%s/small.jpg", name)
	return UpsertCardInput{
		Name:     name,
		Price:    &price,
		CardUID:  fmt.Sprintf("9c40e6e8-9b36-4b38-9bd8-%012d", len(name)*7919+int(name[0])),
		ImageURL: &image,
		Colors:   colors,
		CardType: cardType,
	}
}

// mustCreateCard inserts a fresh card and returns it
func mustCreateCard(t *testing.T, s Store, input UpsertCardInput) *schema.Card {
	t.Helper()
	card, created, err := s.UpsertCardByName(context.Background(), input)
	require.NoError(t, err)
	require.True(t, created)
	return card
}

// RunStoreTests runs the full store test suite against the given implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	ctx := context.Background()

	t.Run("UpsertCardByName creates then increments", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)

		input := buildTestCard("Lightning Bolt", []string{"R"}, "Instant")

		card, created, err := s.UpsertCardByName(ctx, input)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, 1, card.AmountOwned)
		assert.Equal(t, "Lightning Bolt", card.Name)
		assert.NotZero(t, card.CardID)

		again, created, err := s.UpsertCardByName(ctx, input)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, 2, again.AmountOwned)
		assert.Equal(t, card.CardID, again.CardID)

		// No duplicate row was created
		cards, err := s.ListCards(ctx, CardFilter{})
		require.NoError(t, err)
		assert.Len(t, cards, 1)
	})

	t.Run("GetCardByName", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)

		created := mustCreateCard(t, s, buildTestCard("Counterspell", []string{"U"}, "Instant"))

		card, err := s.GetCardByName(ctx, "Counterspell")
		require.NoError(t, err)
		require.NotNil(t, card)
		assert.Equal(t, created.CardID, card.CardID)

		missing, err := s.GetCardByName(ctx, "No Such Card")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("SetCardAmount updates existing card", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)

		mustCreateCard(t, s, buildTestCard("Giant Growth", []string{"G"}, "Instant"))

		card, err := s.SetCardAmount(ctx, "Giant Growth", 5)
		require.NoError(t, err)
		require.NotNil(t, card)
		assert.Equal(t, 5, card.AmountOwned)

		fetched, err := s.GetCardByName(ctx, "Giant Growth")
		require.NoError(t, err)
		assert.Equal(t, 5, fetched.AmountOwned)
	})

	t.Run("SetCardAmount reports missing card and mutates nothing", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)

		mustCreateCard(t, s, buildTestCard("Dark Ritual", []string{"B"}, "Instant"))

		card, err := s.SetCardAmount(ctx, "No Such Card", 5)
		require.NoError(t, err)
		assert.Nil(t, card)

		fetched, err := s.GetCardByName(ctx, "Dark Ritual")
		require.NoError(t, err)
		assert.Equal(t, 1, fetched.AmountOwned)
	})

	t.Run("DeleteCard removes zero-quantity card and cascades membership", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)

		card := mustCreateCard(t, s, buildTestCard("Swords to Plowshares", []string{"W"}, "Instant"))
		deck, err := s.CreateDeck(ctx, "White Weenie")
		require.NoError(t, err)
		_, err = s.AddCardToDeck(ctx, deck.DeckID, card.Name)
		require.NoError(t, err)

		_, err = s.SetCardAmount(ctx, card.Name, 0)
		require.NoError(t, err)

		outcome, err := s.DeleteCard(ctx, card.CardID)
		require.NoError(t, err)
		assert.Equal(t, CardDeleted, outcome)

		fetched, err := s.GetCardByName(ctx, card.Name)
		require.NoError(t, err)
		assert.Nil(t, fetched)

		members, err := s.ListDeckCards(ctx, deck.DeckID)
		require.NoError(t, err)
		assert.Empty(t, members)
	})

	t.Run("DeleteCard blocked by nonzero quantity", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)

		card := mustCreateCard(t, s, buildTestCard("Brainstorm", []string{"U"}, "Instant"))

		outcome, err := s.DeleteCard(ctx, card.CardID)
		require.NoError(t, err)
		assert.Equal(t, CardDeleteBlocked, outcome)

		fetched, err := s.GetCardByName(ctx, card.Name)
		require.NoError(t, err)
		require.NotNil(t, fetched)
		assert.Equal(t, 1, fetched.AmountOwned)
	})

	t.Run("DeleteCard reports missing card", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)

		outcome, err := s.DeleteCard(ctx, 424242)
		require.NoError(t, err)
		assert.Equal(t, CardNotFound, outcome)
	})

	t.Run("CreateDeck rejects duplicate name", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)

		deck, err := s.CreateDeck(ctx, "Aggro")
		require.NoError(t, err)
		assert.NotZero(t, deck.DeckID)

		_, err = s.CreateDeck(ctx, "Aggro")
		assert.ErrorIs(t, err, ErrDeckNameTaken)

		decks, err := s.ListDecks(ctx)
		require.NoError(t, err)
		assert.Len(t, decks, 1)
	})

	t.Run("AddCardToDeck rejects unknown card", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)

		deck, err := s.CreateDeck(ctx, "Control")
		require.NoError(t, err)

		_, err = s.AddCardToDeck(ctx, deck.DeckID, "Unknown Card")
		assert.ErrorIs(t, err, ErrCardNotFound)

		members, err := s.ListDeckCards(ctx, deck.DeckID)
		require.NoError(t, err)
		assert.Empty(t, members)
	})

	t.Run("AddCardToDeck allows duplicate memberships", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)

		card := mustCreateCard(t, s, buildTestCard("Mountain", nil, "Basic Land — Mountain"))
		deck, err := s.CreateDeck(ctx, "Burn")
		require.NoError(t, err)

		first, err := s.AddCardToDeck(ctx, deck.DeckID, card.Name)
		require.NoError(t, err)
		second, err := s.AddCardToDeck(ctx, deck.DeckID, card.Name)
		require.NoError(t, err)
		assert.NotEqual(t, first.DeckCardsID, second.DeckCardsID)

		members, err := s.ListDeckCards(ctx, deck.DeckID)
		require.NoError(t, err)
		assert.Len(t, members, 2)
		assert.Equal(t, card.CardID, members[0].CardID)
		assert.Equal(t, card.CardID, members[1].CardID)
	})

	t.Run("ListCards filters by colors superset and exact type", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)

		mustCreateCard(t, s, buildTestCard("Baleful Strix", []string{"U", "B"}, "Artifact Creature — Bird"))
		mustCreateCard(t, s, buildTestCard("Psychatog", []string{"U", "B"}, "Creature — Atog"))
		mustCreateCard(t, s, buildTestCard("Delver of Secrets", []string{"U"}, "Creature — Human Wizard"))
		mustCreateCard(t, s, buildTestCard("Wasteland", nil, "Land"))

		// Superset match on colors
		cards, err := s.ListCards(ctx, CardFilter{Colors: []string{"U", "B"}})
		require.NoError(t, err)
		require.Len(t, cards, 2)
		assert.Equal(t, "Baleful Strix", cards[0].Name)
		assert.Equal(t, "Psychatog", cards[1].Name)

		// Exact match on type line
		atog := "Creature — Atog"
		cards, err = s.ListCards(ctx, CardFilter{Type: &atog})
		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Equal(t, "Psychatog", cards[0].Name)

		// Conjunction of both filters
		bird := "Artifact Creature — Bird"
		cards, err = s.ListCards(ctx, CardFilter{Colors: []string{"U", "B"}, Type: &bird})
		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Equal(t, "Baleful Strix", cards[0].Name)

		// No filter returns everything
		cards, err = s.ListCards(ctx, CardFilter{})
		require.NoError(t, err)
		assert.Len(t, cards, 4)
	})

	t.Run("Deck lifecycle", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)

		deck, err := s.CreateDeck(ctx, "Aggro")
		require.NoError(t, err)

		decks, err := s.ListDecks(ctx)
		require.NoError(t, err)
		require.Len(t, decks, 1)
		assert.Equal(t, "Aggro", decks[0].Name)

		require.NoError(t, s.DeleteDeck(ctx, deck.DeckID))

		decks, err = s.ListDecks(ctx)
		require.NoError(t, err)
		assert.Empty(t, decks)

		// Deleting an absent deck is a no-op
		require.NoError(t, s.DeleteDeck(ctx, deck.DeckID))
	})

	t.Run("DeleteDeck cascades memberships but keeps cards", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)

		card := mustCreateCard(t, s, buildTestCard("Shivan Dragon", []string{"R"}, "Creature — Dragon"))
		deck, err := s.CreateDeck(ctx, "Dragons")
		require.NoError(t, err)
		_, err = s.AddCardToDeck(ctx, deck.DeckID, card.Name)
		require.NoError(t, err)

		require.NoError(t, s.DeleteDeck(ctx, deck.DeckID))

		fetched, err := s.GetCardByName(ctx, card.Name)
		require.NoError(t, err)
		assert.NotNil(t, fetched)

		members, err := s.ListDeckCards(ctx, deck.DeckID)
		require.NoError(t, err)
		assert.Empty(t, members)
	})
}
