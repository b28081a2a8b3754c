// Copyright 2026 The Tally Authors
// SPDX-License-Identifier: Apache-2.0

package accounting

import (
	"context"
	"errors"
)

// Transfer is a lifecycle guard for the create → confirm/cancel
// transaction protocol. A funds-moving transaction must not remain
// PENDING indefinitely when the caller's code path exits abnormally;
// the guard makes the cancel attempt deterministic: Open creates the
// transaction, Confirm resolves it to COMPLETED, and Close — which
// callers defer immediately after a successful Open — cancels anything
// left unconfirmed.
//
//	transfer := client.Transfer("bob@example.com", 50)
//	if err := transfer.Open(ctx); err != nil {
//	    return err
//	}
//	defer transfer.Close(ctx)
//	// ... checks that may fail or return early ...
//	if _, err := transfer.Confirm(ctx); err != nil {
//	    return err
//	}
//
// [Transfer.Run] packages the same protocol as a callback scope.
//
// The direct and delegated variants differ only in the creation call
// made during Open; confirmation and release are identical. A Transfer
// owns at most one transaction and is not reusable after Close. It is
// not safe for concurrent use; open multiple guards for concurrent
// transfers, and leave double-spend prevention to the service.
type Transfer struct {
	client  *UserClient
	acquire func(ctx context.Context) (Transaction, error)

	transaction *Transaction
	opened      bool
	confirmed   bool
	closed      bool
}

// Transfer returns a lifecycle guard for a direct transaction from the
// authenticated user to recipientEmail. Nothing happens until Open.
func (client *UserClient) Transfer(recipientEmail string, amount float64) *Transfer {
	return &Transfer{
		client: client,
		acquire: func(ctx context.Context) (Transaction, error) {
			return client.CreateTransaction(ctx, recipientEmail, amount)
		},
	}
}

// DelegatedTransfer returns a lifecycle guard for a delegated
// transaction drawing on senderEmail's account, authorized by token.
// The guard's release logic is identical to the direct variant.
func (client *UserClient) DelegatedTransfer(senderEmail string, amount float64, token string) *Transfer {
	return &Transfer{
		client: client,
		acquire: func(ctx context.Context) (Transaction, error) {
			return client.CreateDelegatedTransaction(ctx, senderEmail, amount, token)
		},
	}
}

// Open creates the transaction and takes ownership of it. Fails with a
// [LifecycleError] when the guard was already opened or closed; any
// creation failure (validation, service rejection) propagates and
// leaves the guard with nothing to release.
func (t *Transfer) Open(ctx context.Context) error {
	if t.closed {
		return &LifecycleError{Message: "transfer guard already closed"}
	}
	if t.opened {
		return &LifecycleError{Message: "transfer guard already opened"}
	}
	t.opened = true

	transaction, err := t.acquire(ctx)
	if err != nil {
		return err
	}
	t.transaction = &transaction
	return nil
}

// Confirm resolves the owned transaction to COMPLETED and marks the
// guard confirmed, making Close a no-op. Fails with a [LifecycleError]
// when no transaction is owned (Open was never called, or its creation
// call failed). Confirming a transaction the service considers already
// resolved is not checked locally; the service's rejection propagates
// as a [ServiceError].
func (t *Transfer) Confirm(ctx context.Context) (Transaction, error) {
	if t.transaction == nil {
		return Transaction{}, &LifecycleError{Message: "no transaction to confirm"}
	}
	transaction, err := t.client.ConfirmTransaction(ctx, t.transaction.ID)
	if err != nil {
		return Transaction{}, err
	}
	t.transaction = &transaction
	t.confirmed = true
	return transaction, nil
}

// Close releases the guard. If the transaction was never confirmed and
// one is owned, Close cancels it and stores the cancellation snapshot.
// A failed cancellation returns a [ServiceError] (code 500, wrapping
// the underlying failure): leaving a PENDING transaction behind is
// worth surfacing loudly, even when the Close runs deferred and may
// displace the error that triggered the exit.
//
// Close is idempotent; second and later calls return nil. After a
// confirmed transfer, or when Open never created a transaction, Close
// does nothing.
func (t *Transfer) Close(ctx context.Context) error {
	if t.closed {
		return nil
	}
	t.closed = true

	if t.confirmed || t.transaction == nil {
		return nil
	}

	transaction, err := t.client.CancelTransaction(ctx, t.transaction.ID)
	if err != nil {
		return &ServiceError{
			StatusCode: 500,
			Message:    "failed to cancel transaction " + t.transaction.ID,
			cause:      err,
		}
	}
	t.transaction = &transaction
	return nil
}

// Transaction returns the current snapshot of the owned transaction
// and whether one exists. The snapshot advances as the guard moves it
// through the protocol: created, then confirmed or cancelled.
func (t *Transfer) Transaction() (Transaction, bool) {
	if t.transaction == nil {
		return Transaction{}, false
	}
	return *t.transaction, true
}

// Confirmed reports whether Confirm succeeded on this guard.
func (t *Transfer) Confirmed() bool {
	return t.confirmed
}

// Run executes fn within the guard's scope: Open, fn, then Close on
// every exit path including panics. Errors from fn and Close are
// combined with [errors.Join], so a cancellation failure never
// silently swallows fn's error or vice versa.
func (t *Transfer) Run(ctx context.Context, fn func(*Transfer) error) (err error) {
	if err := t.Open(ctx); err != nil {
		return err
	}
	defer func() {
		if closeErr := t.Close(ctx); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()
	return fn(t)
}
