package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound           = errors.New("not found")
	ErrUnknownIngredient  = errors.New("ingredient not in catalog")
	ErrUnsolvedIngredient = errors.New("ingredient stats not yet solved")
	ErrValidation         = errors.New("observations do not isolate the claimed ingredient")
	ErrInvalidRecipe      = errors.New("recipe must have between 1 and 5 slots")
	ErrStaleCache         = errors.New("cache was built against a different catalog order")
)
