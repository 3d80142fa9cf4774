package domain

import "errors"

var ErrInvalidPurchase = errors.New("invalid purchase")

// InvalidPurchaseError is returned for every purchase rejected by validation.
// It matches ErrInvalidPurchase with errors.Is.
type InvalidPurchaseError struct {
	Reason string
}

func NewInvalidPurchaseError(reason string) *InvalidPurchaseError {
	return &InvalidPurchaseError{Reason: reason}
}

func (e *InvalidPurchaseError) Error() string {
	return "invalid purchase: " + e.Reason
}

func (e *InvalidPurchaseError) Is(target error) bool {
	return target == ErrInvalidPurchase
}
