// Copyright (c) 2026 Juryboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth resolves credentials and session tokens to viewer identities.

# Accounts

The judge roster is fixed at deployment time and loaded from a JSON file:

	[
	  {"username": "azra", "display_name": "Azra", "password_hash": "$2a$10$...", "role": "judge"},
	  {"username": "safi", "display_name": "Safi", "password_hash": "$2a$10$...", "role": "admin"}
	]

Password hashes are bcrypt. Generate one with auth.HashPassword.

# Sessions

Login verifies the password and issues an HS256 JWT carrying the
username, display name, and role:

	token, identity, err := authenticator.Login(username, password)

Requests present the token as a Bearer header; Verify turns it back into
an Identity. Tokens expire after 12 hours, and a token for an account
that has since been removed from the roster is rejected.

Viewers without a token are anonymous:

	identity := auth.Anonymous()
*/
package auth
