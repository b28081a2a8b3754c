// Copyright 2026 The Tally Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides HTTP I/O helpers for the Tally clients.
//
// ReadResponse and DecodeResponse bound every response body read at
// MaxResponseSize so a misbehaving server cannot drive unbounded
// memory allocation. They are meant for the accounting service's JSON
// API responses, not for streaming or large binary downloads.
package netutil

import (
	"encoding/json"
	"fmt"
	"io"
)

// MaxResponseSize is the bound on JSON API response body reads: 32 MB.
// Accounting responses are small — a user snapshot, a transaction, a
// user registry — so the limit only exists to cap a pathological
// response, never to constrain normal operation.
const MaxResponseSize int64 = 32 << 20

// ReadResponse reads a JSON API response body up to MaxResponseSize
// bytes. Use instead of io.ReadAll when reading HTTP response bodies.
func ReadResponse(body io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, MaxResponseSize))
}

// DecodeResponse reads a JSON API response body (up to MaxResponseSize
// bytes) and JSON-decodes it into v.
func DecodeResponse(body io.Reader, v any) error {
	data, err := io.ReadAll(io.LimitReader(body, MaxResponseSize))
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	return json.Unmarshal(data, v)
}
