package domain

import (
	"errors"
	"fmt"
)

// Operation rejections. Every one of them is terminal for the call that
// produced it and leaves all persistent state untouched.
var (
	ErrInvalidDeadline          = errors.New("deadline must be in the future")
	ErrInvalidGoal              = errors.New("goal must be positive")
	ErrNameTooLong              = fmt.Errorf("campaign name exceeds %d bytes", MaxNameLen)
	ErrInvalidAccount           = errors.New("account identity is required")
	ErrInvalidAmount            = errors.New("amount must be positive")
	ErrCampaignEnded            = errors.New("campaign has ended")
	ErrGoalNotMet               = errors.New("goal not met")
	ErrCampaignNotEnded         = errors.New("campaign has not ended yet")
	ErrAlreadyClaimed           = errors.New("funds already claimed")
	ErrGoalMetCannotRefund      = errors.New("goal met, cannot refund")
	ErrInsufficientContribution = errors.New("insufficient contribution")
	ErrArithmeticOverflow       = errors.New("arithmetic overflow")
	ErrNotAuthorized            = errors.New("not the campaign creator")
	ErrCampaignNotFound         = errors.New("campaign not found")
	ErrCampaignExists           = errors.New("campaign already exists")
)

// Reasons a ledger transfer can fail. They are carried by TransferError.
var (
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrUnauthorizedDebit   = errors.New("debit not authorized")
	ErrBelowMinimumBalance = errors.New("remaining balance below ledger minimum")
	ErrInvalidTransfer     = errors.New("invalid transfer")
)

// TransferError is returned by a ledger when it refuses to move value.
// Callers propagate it unchanged.
type TransferError struct {
	From   AccountID
	To     AccountID
	Amount Amount
	Err    error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer %d from %s to %s: %v", e.Amount, e.From, e.To, e.Err)
}

func (e *TransferError) Unwrap() error { return e.Err }
