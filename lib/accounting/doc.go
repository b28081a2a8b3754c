// Copyright 2026 The Tally Authors
// SPDX-License-Identifier: Apache-2.0

// Package accounting provides a typed Go client for the Tally accounting
// service.
//
// Two client types cover the two authentication modes the service
// exposes: [AdminClient] authenticates with a bearer key and manages
// accounts (create users, top up balances, query the user registry);
// [UserClient] authenticates with basic auth as a single user identity
// and moves funds (create, confirm, and cancel transactions, issue
// delegation tokens, read history).
//
// The remote service is the sole source of truth. Every [User] and
// [Transaction] value returned by this package is a verbatim snapshot
// of a server response; the client never constructs or mutates domain
// state locally.
//
// Transfers that move funds should go through the [Transfer] guard
// rather than raw CreateTransaction/ConfirmTransaction calls. The guard
// wraps the create → confirm/cancel protocol so that a transaction is
// never left dangling PENDING: if the scope exits without an explicit
// Confirm, Close issues a cancel. See [UserClient.Transfer] and
// [Transfer.Run].
//
// Non-2xx responses surface as [ServiceError]. Locally detected
// precondition violations (non-positive amounts) surface as
// [ValidationError] before any request is made. Guard misuse surfaces
// as [LifecycleError]. Transport failures propagate wrapped but
// otherwise unchanged; the client never retries.
package accounting
