package dto

import (
	apierrors "github.com/cardfolio/cardfolio-api/internal/api/shared/errors"
)

// AddCardRequest represents the request body for adding a card to the collection
type AddCardRequest struct {
	Name string `json:"name"`
}

// Validate validates the request body
func (r *AddCardRequest) Validate() error {
	if r.Name == "" {
		return apierrors.NewValidationError("name is required")
	}
	return nil
}

// UpdateCardAmountRequest represents the request body for setting a card's owned quantity.
// AmountOwned is a pointer so an absent field is distinguishable from an explicit zero.
type UpdateCardAmountRequest struct {
	Name        string `json:"name"`
	AmountOwned *int   `json:"amount_owned"`
}

// Validate validates the request body
func (r *UpdateCardAmountRequest) Validate() error {
	if r.Name == "" {
		return apierrors.NewValidationError("name is required")
	}
	if r.AmountOwned == nil {
		return apierrors.NewValidationError("amount_owned is required")
	}
	if *r.AmountOwned < 0 {
		return apierrors.NewValidationError("amount_owned must not be negative")
	}
	return nil
}

// AddDeckRequest represents the request body for creating a deck
type AddDeckRequest struct {
	Name string `json:"name"`
}

// Validate validates the request body
func (r *AddDeckRequest) Validate() error {
	if r.Name == "" {
		return apierrors.NewValidationError("name is required")
	}
	return nil
}

// AddCardToDeckRequest represents the request body for adding a card to a deck
type AddCardToDeckRequest struct {
	Name string `json:"name"`
}

// Validate validates the request body
func (r *AddCardToDeckRequest) Validate() error {
	if r.Name == "" {
		return apierrors.NewValidationError("name is required")
	}
	return nil
}
