// Copyright 2026 The Tally Authors
// SPDX-License-Identifier: Apache-2.0

package accounting

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
)

// AdminConfig holds configuration for creating an [AdminClient].
type AdminConfig struct {
	// URL is the base URL of the accounting service. Required.
	URL string

	// Key is the administrative API key, sent as a bearer token on
	// every request. Required.
	Key string

	// HTTPClient is used for all requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// Logger is used for structured logging. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// AdminClient performs administrative operations: creating users,
// topping up balances, and querying the user registry. It authenticates
// with a bearer key bound at construction time.
type AdminClient struct {
	session session
}

// NewAdminClient creates an administrative client from the given
// configuration. Returns an error if the URL or key is missing.
func NewAdminClient(config AdminConfig) (*AdminClient, error) {
	if config.Key == "" {
		return nil, fmt.Errorf("accounting: admin key is required")
	}
	session, err := newSession(config.URL, bearerAuth{key: config.Key}, config.HTTPClient, config.Logger)
	if err != nil {
		return nil, err
	}
	return &AdminClient{session: session}, nil
}

// userEnvelope is the wire shape of responses carrying one user.
type userEnvelope struct {
	User User `json:"user"`
}

// createUserRequest is the wire shape of POST /user/create. Password
// is omitted when empty so the service generates one.
type createUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// createUserResponse carries the created user and, when the service
// generated the password, the generated value.
type createUserResponse struct {
	User     User   `json:"user"`
	Password string `json:"password,omitempty"`
}

// CreateUser creates a new account. If password is empty the service
// generates one; the returned password is the caller-supplied value or
// the generated one, whichever applies. The generated password is not
// retrievable later.
func (client *AdminClient) CreateUser(ctx context.Context, email, password string) (User, string, error) {
	return createUser(ctx, &client.session, email, password)
}

// createUser is the shared implementation behind AdminClient.CreateUser
// and the unauthenticated SignUp: the same endpoint serves both,
// differing only in credentials.
func createUser(ctx context.Context, s *session, email, password string) (User, string, error) {
	var response createUserResponse
	request := createUserRequest{Email: email, Password: password}
	if err := s.post(ctx, "/user/create", request, &response); err != nil {
		return User{}, "", err
	}
	if err := response.User.validate(); err != nil {
		return User{}, "", fmt.Errorf("accounting: %w", err)
	}
	if password != "" {
		return response.User, password, nil
	}
	return response.User, response.Password, nil
}

// AddBalance credits amount to the account identified by email and
// returns the updated snapshot. Amount must be positive; a non-positive
// amount fails with a [ValidationError] before any request is made.
func (client *AdminClient) AddBalance(ctx context.Context, email string, amount float64) (User, error) {
	if amount <= 0 {
		return User{}, validationf("amount must be positive (got %v)", amount)
	}

	request := struct {
		RecipientEmail string  `json:"recipientEmail"`
		Amount         float64 `json:"amount"`
	}{RecipientEmail: email, Amount: amount}

	var response userEnvelope
	if err := client.session.post(ctx, "/user/add-balance", request, &response); err != nil {
		return User{}, err
	}
	if err := response.User.validate(); err != nil {
		return User{}, fmt.Errorf("accounting: %w", err)
	}
	return response.User, nil
}

// GetUser fetches the account identified by email. A missing account
// surfaces as a [ServiceError] for which [IsNotFound] is true.
func (client *AdminClient) GetUser(ctx context.Context, email string) (User, error) {
	var response userEnvelope
	if err := client.session.get(ctx, "/user/"+url.PathEscape(email), &response); err != nil {
		return User{}, err
	}
	if err := response.User.validate(); err != nil {
		return User{}, fmt.Errorf("accounting: %w", err)
	}
	return response.User, nil
}

// ListUsers fetches every account, in the order the service returns
// them.
func (client *AdminClient) ListUsers(ctx context.Context) ([]User, error) {
	var response struct {
		Users []User `json:"users"`
	}
	if err := client.session.get(ctx, "/users", &response); err != nil {
		return nil, err
	}
	for i := range response.Users {
		if err := response.Users[i].validate(); err != nil {
			return nil, fmt.Errorf("accounting: %w", err)
		}
	}
	return response.Users, nil
}

// UsersByEmail fetches every account keyed by email address. The key
// set matches exactly the emails of the accounts [ListUsers] returns.
func (client *AdminClient) UsersByEmail(ctx context.Context) (map[string]User, error) {
	users, err := client.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	byEmail := make(map[string]User, len(users))
	for _, user := range users {
		byEmail[user.Email] = user
	}
	return byEmail, nil
}
