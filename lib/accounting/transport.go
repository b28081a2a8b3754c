// Copyright 2026 The Tally Authors
// SPDX-License-Identifier: Apache-2.0

package accounting

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tally-foundation/tally/lib/netutil"
)

// credentials applies an authentication mode to an outgoing request.
// The accounting service accepts bearer keys (administrative), basic
// auth (per-user), or no authentication (self-service signup).
type credentials interface {
	apply(request *http.Request)
}

// bearerAuth authenticates with an administrative API key.
type bearerAuth struct {
	key string
}

func (auth bearerAuth) apply(request *http.Request) {
	request.Header.Set("Authorization", "Bearer "+auth.key)
}

// basicAuth authenticates as a single user identity.
type basicAuth struct {
	email    string
	password string
}

func (auth basicAuth) apply(request *http.Request) {
	request.SetBasicAuth(auth.email, auth.password)
}

// anonymous sends no Authorization header. Only the signup endpoint
// accepts unauthenticated requests.
type anonymous struct{}

func (anonymous) apply(*http.Request) {}

// session is the shared request core under AdminClient and UserClient:
// one base URL, one credential bound at construction, one blocking
// request per call. Credentials are immutable for the session's
// lifetime. A session is safe for concurrent use to the extent the
// underlying http.Client is.
type session struct {
	baseURL    string
	creds      credentials
	httpClient *http.Client
	logger     *slog.Logger
}

// newSession validates the base URL and resolves transport defaults.
func newSession(baseURL string, creds credentials, httpClient *http.Client, logger *slog.Logger) (session, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		return session{}, fmt.Errorf("accounting: service URL is required")
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return session{}, fmt.Errorf("accounting: service URL must be http or https (got %q)", baseURL)
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}

	return session{
		baseURL:    baseURL,
		creds:      creds,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// do executes one authenticated request against the service. The path
// is relative to the base URL (e.g. "/transaction/create"). A non-nil
// requestBody is JSON-encoded. Non-2xx responses return a
// *ServiceError; transport failures propagate wrapped but unchanged in
// kind.
func (s *session) do(ctx context.Context, method, path string, requestBody any) ([]byte, error) {
	url := s.baseURL + path

	var bodyReader *bytes.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("accounting: encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	var request *http.Request
	var err error
	if bodyReader != nil {
		request, err = http.NewRequestWithContext(ctx, method, url, bodyReader)
	} else {
		request, err = http.NewRequestWithContext(ctx, method, url, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("accounting: creating request: %w", err)
	}

	s.creds.apply(request)
	request.Header.Set("Accept", "application/json")
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := s.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("accounting: %s %s: %w", method, url, err)
	}
	defer response.Body.Close()

	body, err := netutil.ReadResponse(response.Body)
	if err != nil {
		return nil, fmt.Errorf("accounting: reading response body: %w", err)
	}

	s.logger.Debug("accounting request",
		"method", method,
		"path", path,
		"status", response.StatusCode,
	)

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, newServiceError(response.StatusCode, body)
	}
	return body, nil
}

// get executes a GET request and decodes the response into result.
func (s *session) get(ctx context.Context, path string, result any) error {
	body, err := s.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("accounting: decoding response: %w", err)
	}
	return nil
}

// post executes a POST request with a JSON body and decodes the
// response into result.
func (s *session) post(ctx context.Context, path string, requestBody any, result any) error {
	body, err := s.do(ctx, http.MethodPost, path, requestBody)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("accounting: decoding response: %w", err)
	}
	return nil
}
