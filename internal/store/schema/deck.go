package schema

// Deck represents the decks table - a named grouping of owned cards
type Deck struct {
	// DeckID is the internal database primary key
	DeckID int64 `gorm:"column:deck_id;primaryKey;autoIncrement"`
	// Name is the deck name, unique across all decks
	Name string `gorm:"column:name;not null;uniqueIndex;type:text"`

	// Associations
	DeckCards []DeckCard `gorm:"foreignKey:DeckID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Deck model
func (Deck) TableName() string {
	return "decks"
}
