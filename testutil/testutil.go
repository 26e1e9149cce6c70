// Copyright (c) 2026 Juryboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/juryboard/juryboard/auth"
	"github.com/juryboard/juryboard/models"
	"github.com/juryboard/juryboard/store"
	"github.com/juryboard/juryboard/store/memstore"
)

// Test credentials shared by the seeded accounts.
const TestPassword = "correct horse"

// TestSecret signs session tokens in tests.
const TestSecret = "test-jwt-secret"

// NewTestStore returns an empty in-memory store with default settings.
func NewTestStore(t *testing.T) *memstore.Store {
	t.Helper()
	return memstore.New()
}

// TestAccounts returns a fixed roster: two judges and one admin, all
// using TestPassword.
func TestAccounts(t *testing.T) []auth.Account {
	t.Helper()

	hash, err := auth.HashPassword(TestPassword)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	return []auth.Account{
		{Username: "azra", DisplayName: "Azra", PasswordHash: hash, Role: models.RoleJudge},
		{Username: "safi", DisplayName: "Safi", PasswordHash: hash, Role: models.RoleJudge},
		{Username: "admin", DisplayName: "Admin", PasswordHash: hash, Role: models.RoleAdmin},
	}
}

// NewTestAuthenticator builds an authenticator over TestAccounts.
func NewTestAuthenticator(t *testing.T) *auth.Authenticator {
	t.Helper()
	return auth.NewAuthenticator(TestAccounts(t), TestSecret)
}

// LoginAs logs a seeded account in and returns its bearer token.
func LoginAs(t *testing.T, a *auth.Authenticator, username string) string {
	t.Helper()

	token, _, err := a.Login(username, TestPassword)
	if err != nil {
		t.Fatalf("Failed to log in as %q: %v", username, err)
	}
	return token
}

// SeedContestant adds a contestant to the roster.
func SeedContestant(t *testing.T, st store.Store, name string) {
	t.Helper()

	if _, err := st.AddContestant(name); err != nil {
		t.Fatalf("Failed to seed contestant %q: %v", name, err)
	}
}

// SeedVote appends a vote record directly to the ledger and returns its ID.
func SeedVote(t *testing.T, st store.Store, judge, contestant string, score int) string {
	t.Helper()

	id, err := st.Append(models.Vote{
		ID:         uuid.NewString(),
		Judge:      judge,
		Contestant: contestant,
		Score:      score,
		Timestamp:  time.Now(),
	})
	if err != nil {
		t.Fatalf("Failed to seed vote: %v", err)
	}
	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
