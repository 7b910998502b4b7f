package schema

// DeckCard represents the deck_cards table - a membership row associating a
// card with a deck. Duplicates are allowed on purpose: each row stands for
// one physical copy of the card in the deck. Rows are removed implicitly
// when either side is deleted (FK cascade).
type DeckCard struct {
	// DeckCardsID is the internal database primary key
	DeckCardsID int64 `gorm:"column:deck_cards_id;primaryKey;autoIncrement"`
	// DeckID references the owning deck
	DeckID int64 `gorm:"column:deck_id;not null;index"`
	// CardID references the member card
	CardID int64 `gorm:"column:card_id;not null;index"`
}

// TableName specifies the table name for the DeckCard model
func (DeckCard) TableName() string {
	return "deck_cards"
}
