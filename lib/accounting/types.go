// Copyright 2026 The Tally Authors
// SPDX-License-Identifier: Apache-2.0

package accounting

import (
	"fmt"
	"net/mail"
	"time"
)

// Actor identifies which party performed an action on a transaction.
type Actor string

const (
	// ActorSystem is the accounting service itself (administrative
	// settlement, automated cleanup).
	ActorSystem Actor = "SYSTEM"
	// ActorSender is the account the funds draw from.
	ActorSender Actor = "SENDER"
	// ActorRecipient is the account the funds go to.
	ActorRecipient Actor = "RECIPIENT"
)

// Status is the lifecycle state of a transaction. The service only ever
// moves a transaction PENDING → COMPLETED or PENDING → CANCELLED;
// resolved transactions never change again.
type Status string

const (
	// StatusPending means the transaction is created but not yet
	// confirmed or cancelled. Funds are reserved, not moved.
	StatusPending Status = "PENDING"
	// StatusCompleted means the transaction was confirmed and settled.
	StatusCompleted Status = "COMPLETED"
	// StatusCancelled means the transaction was cancelled and the
	// reservation released.
	StatusCancelled Status = "CANCELLED"
)

// User is a read-only snapshot of an account as returned by the
// service. Balances change server-side only, via balance adjustment or
// transaction settlement; re-fetch to observe updates.
type User struct {
	ID      string  `json:"id"`
	Email   string  `json:"email"`
	Balance float64 `json:"balance"`
}

// validate checks that a decoded User carries the fields the service
// guarantees. A response missing them is a malformed payload, not a
// usable snapshot.
func (user *User) validate() error {
	if user.ID == "" {
		return fmt.Errorf("user snapshot missing id")
	}
	if err := validEmail(user.Email); err != nil {
		return fmt.Errorf("user snapshot: %w", err)
	}
	if user.Balance < 0 {
		return fmt.Errorf("user snapshot has negative balance %v", user.Balance)
	}
	return nil
}

// Transaction is a read-only snapshot of a transfer between two
// accounts. ResolvedBy is empty and ResolvedAt nil exactly while the
// transaction is PENDING.
type Transaction struct {
	ID             string     `json:"id"`
	SenderEmail    string     `json:"senderEmail"`
	RecipientEmail string     `json:"recipientEmail"`
	CreatedBy      Actor      `json:"createdBy"`
	ResolvedBy     Actor      `json:"resolvedBy,omitempty"`
	Amount         float64    `json:"amount"`
	Status         Status     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
	ResolvedAt     *time.Time `json:"resolvedAt,omitempty"`
}

// Resolved reports whether the transaction has left the PENDING state.
func (transaction *Transaction) Resolved() bool {
	return transaction.Status != StatusPending
}

// validate checks structural invariants of a decoded Transaction.
func (transaction *Transaction) validate() error {
	if transaction.ID == "" {
		return fmt.Errorf("transaction snapshot missing id")
	}
	if err := validEmail(transaction.SenderEmail); err != nil {
		return fmt.Errorf("transaction snapshot sender: %w", err)
	}
	if err := validEmail(transaction.RecipientEmail); err != nil {
		return fmt.Errorf("transaction snapshot recipient: %w", err)
	}
	if transaction.Amount <= 0 {
		return fmt.Errorf("transaction snapshot has non-positive amount %v", transaction.Amount)
	}
	switch transaction.Status {
	case StatusPending:
		if transaction.ResolvedAt != nil {
			return fmt.Errorf("pending transaction %s has a resolution timestamp", transaction.ID)
		}
	case StatusCompleted, StatusCancelled:
		// The service stamps resolution metadata when it resolves.
	default:
		return fmt.Errorf("transaction %s has unknown status %q", transaction.ID, transaction.Status)
	}
	return nil
}

// validEmail checks that the string is a parseable bare email address.
// The service validates addresses authoritatively; this catches
// malformed payloads early with a clearer error.
func validEmail(email string) error {
	if email == "" {
		return fmt.Errorf("missing email address")
	}
	address, err := mail.ParseAddress(email)
	if err != nil || address.Address != email {
		return fmt.Errorf("invalid email address %q", email)
	}
	return nil
}
