// Copyright 2026 The Tally Authors
// SPDX-License-Identifier: Apache-2.0

package netutil

import (
	"bytes"
	"fmt"
	"testing"
)

func TestReadResponse(t *testing.T) {
	t.Run("normal body", func(t *testing.T) {
		data, err := ReadResponse(bytes.NewReader([]byte(`{"user":{"id":"u1"}}`)))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != `{"user":{"id":"u1"}}` {
			t.Fatalf("got %q, want %q", data, `{"user":{"id":"u1"}}`)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		data, err := ReadResponse(bytes.NewReader(nil))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(data) != 0 {
			t.Fatalf("expected empty, got %d bytes", len(data))
		}
	})

	t.Run("read error propagates", func(t *testing.T) {
		_, err := ReadResponse(&failReader{})
		if err == nil {
			t.Fatal("expected error from failing reader")
		}
	})
}

func TestDecodeResponse(t *testing.T) {
	t.Run("valid JSON", func(t *testing.T) {
		body := bytes.NewReader([]byte(`{"token":"tok-1","amount":42.5}`))
		var result struct {
			Token  string  `json:"token"`
			Amount float64 `json:"amount"`
		}
		if err := DecodeResponse(body, &result); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Token != "tok-1" {
			t.Fatalf("token: got %q, want %q", result.Token, "tok-1")
		}
		if result.Amount != 42.5 {
			t.Fatalf("amount: got %v, want %v", result.Amount, 42.5)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		if err := DecodeResponse(bytes.NewReader([]byte(`not json`)), &struct{}{}); err == nil {
			t.Fatal("expected error for invalid JSON")
		}
	})

	t.Run("read error propagates", func(t *testing.T) {
		if err := DecodeResponse(&failReader{}, &struct{}{}); err == nil {
			t.Fatal("expected error from failing reader")
		}
	})
}

// failReader always returns an error on Read.
type failReader struct{}

func (*failReader) Read([]byte) (int, error) {
	return 0, fmt.Errorf("simulated read failure")
}
