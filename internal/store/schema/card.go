package schema

import (
	"gorm.io/datatypes"
)

// Card represents the cards table - an owned card with its quantity and
// the metadata resolved from the external lookup service at creation time
type Card struct {
	// CardID is the internal database primary key
	CardID int64 `gorm:"column:card_id;primaryKey;autoIncrement"`
	// Name is the canonical card name as returned by the lookup service
	Name string `gorm:"column:name;not null;uniqueIndex;type:text"`
	// Price is the numeric USD price; nil when the source service omits it
	Price *float64 `gorm:"column:price;type:numeric"`
	// CardUID is the lookup service's stable identifier for this exact printing
	CardUID string `gorm:"column:card_uid;not null;uniqueIndex;type:text"`
	// ImageURL is the best-available image link; nil when no image exists
	ImageURL *string `gorm:"column:image_url;type:text"`
	// AmountOwned is the owned quantity; never negative
	AmountOwned int `gorm:"column:amount_owned;not null;default:1;check:chk_cards_amount_owned,amount_owned >= 0"`
	// Colors is the ordered set of short color codes; may be empty
	Colors datatypes.JSONSlice[string] `gorm:"column:colors;type:jsonb"`
	// CardType is the free-form type line
	CardType string `gorm:"column:card_type;type:text"`

	// Associations
	DeckCards []DeckCard `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Card model
func (Card) TableName() string {
	return "cards"
}
