package application

import (
	"errors"
	"fmt"

	"github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/domain"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid order input")
	// ErrTransitionRejected signals the requested status is not reachable
	// from the order's current status.
	ErrTransitionRejected = errors.New("transition rejected")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrIllegalTransition) {
		return fmt.Errorf("%w: %w", ErrTransitionRejected, err)
	}
	if errors.Is(err, domain.ErrEmptyID) ||
		errors.Is(err, domain.ErrEmptyCustomer) ||
		errors.Is(err, domain.ErrInvalidStatus) ||
		errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, domain.ErrInvalidUnitPrice) ||
		errors.Is(err, domain.ErrNegativeTotal) ||
		errors.Is(err, domain.ErrEmptyTrackingEvent) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
