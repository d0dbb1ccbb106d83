package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrAmountMismatch      = errors.New("total amount mismatch")
	ErrInvalidAllocation   = errors.New("invalid invoice allocation")
	ErrUnauthorizedInvoice = errors.New("invoice does not belong to payer")
	ErrAlreadyTransferred  = errors.New("payment already transferred")
	ErrSubmissionFailed    = errors.New("submission failed")
	ErrUpstreamTimeout     = errors.New("upstream timeout")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrDuplicateRFID       = errors.New("rfid matches more than one record")
)

var (
	ErrSessionNotFound  = fmt.Errorf("session expired or not found: %w", ErrNotFound)
	ErrPayerNotFound    = fmt.Errorf("customer %w", ErrNotFound)
	ErrPaymentNotFound  = fmt.Errorf("payment %w", ErrNotFound)
	ErrInvalidStaffRFID = fmt.Errorf("invalid rfid: %w", ErrUnauthorized)
	ErrStaffDisabled    = fmt.Errorf("staff account disabled: %w", ErrUnauthorized)
	ErrMissingRole      = fmt.Errorf("user does not have required roles: %w", ErrUnauthorized)
)
