package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cardfolio/cardfolio-api/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the schema. It is idempotent and intended to be
// invoked once at process start, before any handler runs.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&schema.Card{}, &schema.Deck{}, &schema.DeckCard{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. It accesses the underlying *sql.DB and sets the pool
// configuration, applying defaults for any zero value.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// ListCards retrieves cards matching the given filter
func (s *pgStore) ListCards(ctx context.Context, filter CardFilter) ([]schema.Card, error) {
	query := s.db.WithContext(ctx).Model(&schema.Card{})

	if len(filter.Colors) > 0 {
		colorsJSON, err := json.Marshal(filter.Colors)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal colors filter: %w", err)
		}
		// jsonb containment: the card's color set must be a superset of the filter
		query = query.Where("colors @> ?::jsonb", string(colorsJSON))
	}

	if filter.Type != nil {
		query = query.Where("card_type = ?", *filter.Type)
	}

	var cards []schema.Card
	if err := query.Order("card_id").Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	return cards, nil
}

// GetCardByName retrieves a card by its exact name
func (s *pgStore) GetCardByName(ctx context.Context, name string) (*schema.Card, error) {
	var card schema.Card
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get card by name: %w", err)
	}
	return &card, nil
}

// cardUpsertRow scans the RETURNING row of the card upsert, including the
// inserted marker derived from the row's system columns
type cardUpsertRow struct {
	CardID      int64
	Name        string
	Price       *float64
	CardUID     string
	ImageURL    *string
	AmountOwned int
	Colors      datatypes.JSONSlice[string]
	CardType    string
	Inserted    bool
}

// UpsertCardByName inserts a new card or increments the owned quantity of the
// existing card with the same name. The insert and the increment are a single
// atomic statement, so concurrent adds of the same name cannot race between
// check and insert; the unique constraint on name arbitrates.
func (s *pgStore) UpsertCardByName(ctx context.Context, input UpsertCardInput) (*schema.Card, bool, error) {
	colors := datatypes.NewJSONSlice(input.Colors)
	if input.Colors == nil {
		colors = datatypes.NewJSONSlice([]string{})
	}

	var row cardUpsertRow
	err := s.db.WithContext(ctx).Raw(`
		INSERT INTO cards (name, price, card_uid, image_url, amount_owned, colors, card_type)
		VALUES (?, ?, ?, ?, 1, ?, ?)
		ON CONFLICT (name) DO UPDATE SET amount_owned = cards.amount_owned + 1
		RETURNING card_id, name, price, card_uid, image_url, amount_owned, colors, card_type, (xmax = 0) AS inserted`,
		input.Name, input.Price, input.CardUID, input.ImageURL, colors, input.CardType,
	).Scan(&row).Error
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert card: %w", err)
	}

	card := schema.Card{
		CardID:      row.CardID,
		Name:        row.Name,
		Price:       row.Price,
		CardUID:     row.CardUID,
		ImageURL:    row.ImageURL,
		AmountOwned: row.AmountOwned,
		Colors:      row.Colors,
		CardType:    row.CardType,
	}

	return &card, row.Inserted, nil
}

// SetCardAmount sets amount_owned to an explicit value for the named card
func (s *pgStore) SetCardAmount(ctx context.Context, name string, amount int) (*schema.Card, error) {
	var card schema.Card
	result := s.db.WithContext(ctx).
		Model(&card).
		Clauses(clause.Returning{}).
		Where("name = ?", name).
		Update("amount_owned", amount)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to set card amount: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &card, nil
}

// DeleteCard deletes the card only when its owned quantity is zero. The check
// and the delete run in one transaction so a missing card and a delete blocked
// by nonzero quantity stay distinguishable.
func (s *pgStore) DeleteCard(ctx context.Context, cardID int64) (DeleteCardOutcome, error) {
	outcome := CardNotFound
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var card schema.Card
		if err := tx.Where("card_id = ?", cardID).First(&card).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				outcome = CardNotFound
				return nil
			}
			return fmt.Errorf("failed to get card: %w", err)
		}

		if card.AmountOwned != 0 {
			outcome = CardDeleteBlocked
			return nil
		}

		if err := tx.Delete(&schema.Card{}, "card_id = ?", cardID).Error; err != nil {
			return fmt.Errorf("failed to delete card: %w", err)
		}

		outcome = CardDeleted
		return nil
	})
	if err != nil {
		return CardNotFound, err
	}
	return outcome, nil
}

// ListDecks retrieves all decks
func (s *pgStore) ListDecks(ctx context.Context) ([]schema.Deck, error) {
	var decks []schema.Deck
	if err := s.db.WithContext(ctx).Order("deck_id").Find(&decks).Error; err != nil {
		return nil, fmt.Errorf("failed to list decks: %w", err)
	}
	return decks, nil
}

// CreateDeck creates a new deck with the given name
func (s *pgStore) CreateDeck(ctx context.Context, name string) (*schema.Deck, error) {
	deck := schema.Deck{Name: name}
	if err := s.db.WithContext(ctx).Create(&deck).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDeckNameTaken
		}
		return nil, fmt.Errorf("failed to create deck: %w", err)
	}
	return &deck, nil
}

// DeleteDeck removes the deck; its memberships go with it by FK cascade.
// Deleting an absent deck succeeds without effect.
func (s *pgStore) DeleteDeck(ctx context.Context, deckID int64) error {
	if err := s.db.WithContext(ctx).Delete(&schema.Deck{}, "deck_id = ?", deckID).Error; err != nil {
		return fmt.Errorf("failed to delete deck: %w", err)
	}
	return nil
}

// ListDeckCards retrieves all cards joined through membership for the deck.
// A card added twice appears twice, matching the membership rows.
func (s *pgStore) ListDeckCards(ctx context.Context, deckID int64) ([]schema.Card, error) {
	var cards []schema.Card
	err := s.db.WithContext(ctx).
		Model(&schema.Card{}).
		Joins("JOIN deck_cards ON deck_cards.card_id = cards.card_id").
		Where("deck_cards.deck_id = ?", deckID).
		Order("deck_cards.deck_cards_id").
		Find(&cards).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list deck cards: %w", err)
	}
	return cards, nil
}

// AddCardToDeck resolves the card by name and inserts a membership row in one
// transaction. The deck operation never creates cards.
func (s *pgStore) AddCardToDeck(ctx context.Context, deckID int64, cardName string) (*schema.DeckCard, error) {
	var membership schema.DeckCard
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var card schema.Card
		if err := tx.Where("name = ?", cardName).First(&card).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCardNotFound
			}
			return fmt.Errorf("failed to resolve card by name: %w", err)
		}

		membership = schema.DeckCard{DeckID: deckID, CardID: card.CardID}
		if err := tx.Create(&membership).Error; err != nil {
			return fmt.Errorf("failed to create deck membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &membership, nil
}
