// Copyright (c) 2026 Juryboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/juryboard/juryboard/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
)

const tokenLifetime = 12 * time.Hour

// Account is one entry of the fixed deployment roster. Password hashes
// are bcrypt; the service never stores plaintext passwords.
type Account struct {
	Username     string `json:"username"`
	DisplayName  string `json:"display_name"`
	PasswordHash string `json:"password_hash"`
	Role         string `json:"role"`
}

// Identity is a resolved session: who the viewer is and what they may do.
type Identity struct {
	Username    string
	DisplayName string
	Role        string
}

// Anonymous is the identity of an unauthenticated viewer.
func Anonymous() Identity {
	return Identity{Role: models.RoleAnonymous}
}

// Claims is the JWT payload carried by session tokens.
type Claims struct {
	DisplayName string `json:"name"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator resolves credentials and bearer tokens against the
// deployment's account roster.
type Authenticator struct {
	accounts map[string]Account
	secret   []byte
}

// LoadAccounts reads the roster file: a JSON array of Account objects.
func LoadAccounts(path string) ([]Account, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts file: %w", err)
	}

	var accounts []Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return nil, fmt.Errorf("failed to parse accounts file: %w", err)
	}

	for _, a := range accounts {
		if a.Username == "" || a.PasswordHash == "" {
			return nil, fmt.Errorf("account %q missing username or password hash", a.Username)
		}
		if a.Role != models.RoleJudge && a.Role != models.RoleAdmin {
			return nil, fmt.Errorf("account %q has unknown role %q", a.Username, a.Role)
		}
	}
	return accounts, nil
}

// NewAuthenticator builds a resolver over the given accounts, signing
// session tokens with secret.
func NewAuthenticator(accounts []Account, secret string) *Authenticator {
	byName := make(map[string]Account, len(accounts))
	for _, a := range accounts {
		byName[a.Username] = a
	}
	return &Authenticator{accounts: byName, secret: []byte(secret)}
}

// Login verifies the password and issues a signed session token.
func (a *Authenticator) Login(username, password string) (string, Identity, error) {
	acct, ok := a.accounts[username]
	if !ok {
		return "", Identity{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return "", Identity{}, ErrInvalidCredentials
	}

	now := time.Now()
	claims := Claims{
		DisplayName: acct.DisplayName,
		Role:        acct.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   acct.Username,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", Identity{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return token, Identity{
		Username:    acct.Username,
		DisplayName: acct.DisplayName,
		Role:        acct.Role,
	}, nil
}

// Verify parses a session token and returns the identity it carries.
func (a *Authenticator) Verify(tokenString string) (Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	// Accounts can be rotated out or re-roled between deploys; a token
	// for a removed account is no longer valid, and role and display
	// name always come from the current roster, not the token.
	acct, exists := a.accounts[claims.Subject]
	if !exists {
		return Identity{}, ErrInvalidToken
	}

	return Identity{
		Username:    acct.Username,
		DisplayName: acct.DisplayName,
		Role:        acct.Role,
	}, nil
}

// HashPassword hashes a password for the accounts file.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}
