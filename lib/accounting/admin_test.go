// Copyright 2026 The Tally Authors
// SPDX-License-Identifier: Apache-2.0

package accounting

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestAdminClient creates an AdminClient backed by the given
// httptest.Server.
func newTestAdminClient(t *testing.T, server *httptest.Server) *AdminClient {
	t.Helper()
	client, err := NewAdminClient(AdminConfig{
		URL:        server.URL,
		Key:        "admin-key",
		HTTPClient: server.Client(),
	})
	if err != nil {
		t.Fatalf("NewAdminClient: %v", err)
	}
	return client
}

func TestNewAdminClient_Validation(t *testing.T) {
	if _, err := NewAdminClient(AdminConfig{URL: "https://tally.example.com"}); err == nil {
		t.Fatal("expected error for missing key")
	}
	if _, err := NewAdminClient(AdminConfig{Key: "k"}); err == nil {
		t.Fatal("expected error for missing URL")
	}
	if _, err := NewAdminClient(AdminConfig{URL: "ftp://tally.example.com", Key: "k"}); err == nil {
		t.Fatal("expected error for non-HTTP URL")
	}
}

func TestAdminClient_BearerAuth(t *testing.T) {
	var receivedAuth string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		receivedAuth = request.Header.Get("Authorization")
		writer.Write([]byte(`{"user":{"id":"u1","email":"alice@example.com","balance":10}}`))
	}))
	defer server.Close()

	client := newTestAdminClient(t, server)
	if _, err := client.GetUser(context.Background(), "alice@example.com"); err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if receivedAuth != "Bearer admin-key" {
		t.Errorf("Authorization = %q, want %q", receivedAuth, "Bearer admin-key")
	}
}

func TestAdminClient_CreateUser_GeneratedPassword(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/user/create" {
			t.Errorf("path = %q, want /user/create", request.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if _, present := body["password"]; present {
			t.Errorf("empty password should be omitted from the request, got %v", body["password"])
		}
		writer.Write([]byte(`{"user":{"id":"u1","email":"alice@example.com","balance":0},"password":"generated-pw"}`))
	}))
	defer server.Close()

	client := newTestAdminClient(t, server)
	user, password, err := client.CreateUser(context.Background(), "alice@example.com", "")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Email != "alice@example.com" || user.Balance != 0 {
		t.Errorf("unexpected user snapshot: %+v", user)
	}
	if password != "generated-pw" {
		t.Errorf("password = %q, want the generated one", password)
	}
}

func TestAdminClient_CreateUser_SuppliedPassword(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if body.Password != "hunter2" {
			t.Errorf("password = %q, want %q", body.Password, "hunter2")
		}
		// The service echoes no password when the caller supplied one.
		writer.Write([]byte(`{"user":{"id":"u1","email":"alice@example.com","balance":0}}`))
	}))
	defer server.Close()

	client := newTestAdminClient(t, server)
	_, password, err := client.CreateUser(context.Background(), "alice@example.com", "hunter2")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if password != "hunter2" {
		t.Errorf("password = %q, want the supplied one", password)
	}
}

func TestAdminClient_AddBalance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/user/add-balance" {
			t.Errorf("path = %q, want /user/add-balance", request.URL.Path)
		}
		var body struct {
			RecipientEmail string  `json:"recipientEmail"`
			Amount         float64 `json:"amount"`
		}
		if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if body.RecipientEmail != "alice@example.com" || body.Amount != 25.5 {
			t.Errorf("unexpected request body: %+v", body)
		}
		writer.Write([]byte(`{"user":{"id":"u1","email":"alice@example.com","balance":25.5}}`))
	}))
	defer server.Close()

	client := newTestAdminClient(t, server)
	user, err := client.AddBalance(context.Background(), "alice@example.com", 25.5)
	if err != nil {
		t.Fatalf("AddBalance: %v", err)
	}
	if user.Balance != 25.5 {
		t.Errorf("balance = %v, want 25.5", user.Balance)
	}
}

func TestAdminClient_AddBalance_NonPositiveAmount(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		requests++
	}))
	defer server.Close()

	client := newTestAdminClient(t, server)
	for _, amount := range []float64{0, -1, -0.01} {
		_, err := client.AddBalance(context.Background(), "alice@example.com", amount)
		var validationError *ValidationError
		if !errors.As(err, &validationError) {
			t.Errorf("AddBalance(%v): got %v, want ValidationError", amount, err)
		}
	}
	if requests != 0 {
		t.Errorf("made %d requests, want 0: validation must run before any network call", requests)
	}
}

func TestAdminClient_GetUser_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
		writer.Write([]byte(`{"error":"user not found"}`))
	}))
	defer server.Close()

	client := newTestAdminClient(t, server)
	_, err := client.GetUser(context.Background(), "nobody@example.com")
	serviceError, ok := AsServiceError(err)
	if !ok {
		t.Fatalf("got %v, want ServiceError", err)
	}
	if serviceError.StatusCode != 404 {
		t.Errorf("status = %d, want 404", serviceError.StatusCode)
	}
	if serviceError.Message != "user not found" {
		t.Errorf("message = %q, want %q", serviceError.Message, "user not found")
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound should be true for a 404 response")
	}
}

func TestAdminClient_GetUser_EscapesEmail(t *testing.T) {
	var receivedPath string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		receivedPath = request.URL.EscapedPath()
		writer.Write([]byte(`{"user":{"id":"u1","email":"a+b@example.com","balance":0}}`))
	}))
	defer server.Close()

	client := newTestAdminClient(t, server)
	if _, err := client.GetUser(context.Background(), "a+b@example.com"); err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if receivedPath != "/user/a+b@example.com" && receivedPath != "/user/a%2Bb@example.com" {
		t.Errorf("unexpected request path %q", receivedPath)
	}
}

func TestAdminClient_ListUsers(t *testing.T) {
	const payload = `{"users":[
		{"id":"u1","email":"alice@example.com","balance":10},
		{"id":"u2","email":"bob@example.com","balance":0}
	]}`
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/users" {
			t.Errorf("path = %q, want /users", request.URL.Path)
		}
		writer.Write([]byte(payload))
	}))
	defer server.Close()

	client := newTestAdminClient(t, server)
	users, err := client.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 2 || users[0].Email != "alice@example.com" || users[1].Email != "bob@example.com" {
		t.Errorf("unexpected users: %+v", users)
	}

	byEmail, err := client.UsersByEmail(context.Background())
	if err != nil {
		t.Fatalf("UsersByEmail: %v", err)
	}
	if len(byEmail) != len(users) {
		t.Fatalf("map has %d entries, list has %d", len(byEmail), len(users))
	}
	for _, user := range users {
		if byEmail[user.Email] != user {
			t.Errorf("map entry for %s = %+v, want %+v", user.Email, byEmail[user.Email], user)
		}
	}
}

func TestAdminClient_MalformedUserSnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte(`{"user":{"email":"alice@example.com","balance":1}}`))
	}))
	defer server.Close()

	client := newTestAdminClient(t, server)
	if _, err := client.GetUser(context.Background(), "alice@example.com"); err == nil {
		t.Fatal("expected error for user snapshot missing id")
	}
}

func TestAdminClient_UnknownFieldsIgnored(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte(`{"user":{"id":"u1","email":"alice@example.com","balance":3,"plan":"pro"},"extra":true}`))
	}))
	defer server.Close()

	client := newTestAdminClient(t, server)
	user, err := client.GetUser(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if user.ID != "u1" || user.Balance != 3 {
		t.Errorf("unexpected user: %+v", user)
	}
}
