// Copyright 2026 The Tally Authors
// SPDX-License-Identifier: Apache-2.0

package accounting

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
)

// UserConfig holds configuration for creating a [UserClient].
type UserConfig struct {
	// URL is the base URL of the accounting service. Required.
	URL string

	// Email is the authenticated user's address. Required.
	Email string

	// Password is the user's password, sent via basic auth on every
	// request. Required.
	Password string

	// HTTPClient is used for all requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// Logger is used for structured logging. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// UserClient performs operations as a single authenticated user:
// querying its own account, moving funds, issuing delegation tokens,
// and reading transaction history. The identity and credential are
// bound at construction time and immutable for the client's lifetime.
type UserClient struct {
	session session
	email   string
}

// NewUserClient creates a user client from the given configuration.
// Returns an error if the URL, email, or password is missing.
func NewUserClient(config UserConfig) (*UserClient, error) {
	if config.Email == "" {
		return nil, fmt.Errorf("accounting: user email is required")
	}
	if config.Password == "" {
		return nil, fmt.Errorf("accounting: user password is required")
	}
	session, err := newSession(config.URL, basicAuth{email: config.Email, password: config.Password}, config.HTTPClient, config.Logger)
	if err != nil {
		return nil, err
	}
	return &UserClient{session: session, email: config.Email}, nil
}

// Email returns the authenticated identity this client acts as.
func (client *UserClient) Email() string {
	return client.email
}

// SignUp creates a new account without prior authentication, for
// self-service registration. Same semantics as
// [AdminClient.CreateUser]: an empty password asks the service to
// generate one, and the returned password is whichever applies.
func SignUp(ctx context.Context, serviceURL, email, password string) (User, string, error) {
	session, err := newSession(serviceURL, anonymous{}, nil, nil)
	if err != nil {
		return User{}, "", err
	}
	return createUser(ctx, &session, email, password)
}

// UserInfo fetches the authenticated user's own account snapshot.
func (client *UserClient) UserInfo(ctx context.Context) (User, error) {
	var response userEnvelope
	if err := client.session.get(ctx, "/user/my-info", &response); err != nil {
		return User{}, err
	}
	if err := response.User.validate(); err != nil {
		return User{}, fmt.Errorf("accounting: %w", err)
	}
	return response.User, nil
}

// transactionEnvelope is the wire shape of responses carrying one
// transaction.
type transactionEnvelope struct {
	Transaction Transaction `json:"transaction"`
}

// createTransactionRequest is the wire shape of POST
// /transaction/create. Token is present only for delegated creation.
type createTransactionRequest struct {
	SenderEmail    string  `json:"senderEmail"`
	RecipientEmail string  `json:"recipientEmail"`
	Amount         float64 `json:"amount"`
	Token          string  `json:"token,omitempty"`
}

// CreateTransaction opens a PENDING transaction from the authenticated
// user to recipientEmail. Amount must be positive; a non-positive
// amount fails with a [ValidationError] before any request is made.
// The returned snapshot has status PENDING and createdBy SENDER.
//
// Prefer [UserClient.Transfer] for funds movement: the guard ensures
// the transaction is cancelled if the caller never confirms it.
func (client *UserClient) CreateTransaction(ctx context.Context, recipientEmail string, amount float64) (Transaction, error) {
	if amount <= 0 {
		return Transaction{}, validationf("amount must be positive (got %v)", amount)
	}
	return client.createTransaction(ctx, createTransactionRequest{
		SenderEmail:    client.email,
		RecipientEmail: recipientEmail,
		Amount:         amount,
	})
}

// CreateDelegatedTransaction opens a PENDING transaction drawing on
// senderEmail's account, authorized by a delegation token that
// senderEmail previously issued to the authenticated user. The
// authenticated user is the recipient. The service rejects mismatched
// or expired tokens with a [ServiceError]; the amount precondition is
// the same as [UserClient.CreateTransaction].
func (client *UserClient) CreateDelegatedTransaction(ctx context.Context, senderEmail string, amount float64, token string) (Transaction, error) {
	if amount <= 0 {
		return Transaction{}, validationf("amount must be positive (got %v)", amount)
	}
	return client.createTransaction(ctx, createTransactionRequest{
		SenderEmail:    senderEmail,
		RecipientEmail: client.email,
		Amount:         amount,
		Token:          token,
	})
}

func (client *UserClient) createTransaction(ctx context.Context, request createTransactionRequest) (Transaction, error) {
	var response transactionEnvelope
	if err := client.session.post(ctx, "/transaction/create", request, &response); err != nil {
		return Transaction{}, err
	}
	if err := response.Transaction.validate(); err != nil {
		return Transaction{}, fmt.Errorf("accounting: %w", err)
	}
	return response.Transaction, nil
}

// CreateTransactionToken issues a delegation token authorizing
// recipientEmail to later create one transaction drawing on the
// authenticated user's account. The token is an opaque server-issued
// string; the client attaches no meaning to its contents.
func (client *UserClient) CreateTransactionToken(ctx context.Context, recipientEmail string) (string, error) {
	request := struct {
		RecipientEmail string `json:"recipientEmail"`
	}{RecipientEmail: recipientEmail}

	var response struct {
		Token string `json:"token"`
	}
	if err := client.session.post(ctx, "/token/create", request, &response); err != nil {
		return "", err
	}
	if response.Token == "" {
		return "", fmt.Errorf("accounting: token response missing token")
	}
	return response.Token, nil
}

// ConfirmTransaction resolves a PENDING transaction to COMPLETED. The
// service rejects confirmation of already-resolved transactions or by
// parties not entitled to resolve them; the client forwards those
// rejections as [ServiceError] without local checks.
func (client *UserClient) ConfirmTransaction(ctx context.Context, id string) (Transaction, error) {
	return client.resolveTransaction(ctx, "/transaction/confirm", id)
}

// CancelTransaction resolves a PENDING transaction to CANCELLED. Same
// failure conditions as [UserClient.ConfirmTransaction].
func (client *UserClient) CancelTransaction(ctx context.Context, id string) (Transaction, error) {
	return client.resolveTransaction(ctx, "/transaction/cancel", id)
}

func (client *UserClient) resolveTransaction(ctx context.Context, path, id string) (Transaction, error) {
	request := struct {
		TransactionID string `json:"transactionId"`
	}{TransactionID: id}

	var response transactionEnvelope
	if err := client.session.post(ctx, path, request, &response); err != nil {
		return Transaction{}, err
	}
	if err := response.Transaction.validate(); err != nil {
		return Transaction{}, fmt.Errorf("accounting: %w", err)
	}
	return response.Transaction, nil
}

// TransactionHistory fetches the authenticated user's transactions in
// the order the service returns them; the client does not re-sort.
func (client *UserClient) TransactionHistory(ctx context.Context) ([]Transaction, error) {
	var response struct {
		Transactions []Transaction `json:"transactions"`
	}
	if err := client.session.get(ctx, "/transaction/history", &response); err != nil {
		return nil, err
	}
	for i := range response.Transactions {
		if err := response.Transactions[i].validate(); err != nil {
			return nil, fmt.Errorf("accounting: %w", err)
		}
	}
	return response.Transactions, nil
}
