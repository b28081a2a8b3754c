// Copyright 2026 The Tally Authors
// SPDX-License-Identifier: Apache-2.0

package accounting

import (
	"fmt"
	"testing"
)

func TestServiceError_MessageExtraction(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"error field", `{"error":"user not found"}`, "user not found"},
		{"message field", `{"message":"insufficient balance"}`, "insufficient balance"},
		{"plain text", `service unavailable`, "service unavailable"},
		{"unrelated JSON", `{"detail":"nope"}`, `{"detail":"nope"}`},
	}
	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			serviceError := newServiceError(400, []byte(testCase.body))
			if serviceError.Message != testCase.want {
				t.Errorf("message = %q, want %q", serviceError.Message, testCase.want)
			}
			if string(serviceError.Body) != testCase.body {
				t.Errorf("body = %q, want verbatim %q", serviceError.Body, testCase.body)
			}
		})
	}
}

func TestServiceError_ErrorString(t *testing.T) {
	serviceError := newServiceError(404, []byte(`{"error":"user not found"}`))
	want := "accounting: HTTP 404: user not found"
	if serviceError.Error() != want {
		t.Errorf("Error() = %q, want %q", serviceError.Error(), want)
	}
}

func TestErrorPredicates(t *testing.T) {
	notFound := fmt.Errorf("fetching: %w", newServiceError(404, nil))
	if !IsNotFound(notFound) {
		t.Error("IsNotFound should see through wrapping")
	}
	if IsUnauthorized(notFound) {
		t.Error("IsUnauthorized should be false for a 404")
	}
	if !IsUnauthorized(newServiceError(401, nil)) {
		t.Error("IsUnauthorized should be true for a 401")
	}
	if !IsValidation(validationf("amount must be positive")) {
		t.Error("IsValidation should recognize ValidationError")
	}
	if IsValidation(notFound) {
		t.Error("IsValidation should be false for service errors")
	}
}

func TestValidEmail(t *testing.T) {
	for _, email := range []string{"alice@example.com", "a+b@example.com"} {
		if err := validEmail(email); err != nil {
			t.Errorf("validEmail(%q) = %v, want nil", email, err)
		}
	}
	for _, email := range []string{"", "not-an-email", "Alice <alice@example.com>"} {
		if err := validEmail(email); err == nil {
			t.Errorf("validEmail(%q) = nil, want error", email)
		}
	}
}
