// Copyright (c) 2026 Juryboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package policy

import (
	"errors"

	"github.com/juryboard/juryboard/models"
)

// ErrForbidden signals that the viewer's role lacks permission for the
// requested mutation.
var ErrForbidden = errors.New("role lacks permission for this operation")

// CanSubmit reports whether the role may call the scoring engine.
func CanSubmit(role string) bool {
	return role == models.RoleJudge || role == models.RoleAdmin
}

// CanAdministrate reports whether the role may mutate settings, the
// roster, or perform bulk deletes.
func CanAdministrate(role string) bool {
	return role == models.RoleAdmin
}

// MaskVotes applies the read gate to a vote detail view. The returned
// slice is a copy; the input is never mutated.
//
// Admins see full attribution. A judge always sees their own rows; for
// other rows they follow the anonymous rule. Anonymous viewers see real
// judge identifiers only while HideJudges is off - otherwise the judge
// field is replaced with the generic placeholder.
func MaskVotes(votes []models.Vote, role, username string, settings models.Settings) []models.Vote {
	out := make([]models.Vote, len(votes))
	copy(out, votes)

	if role == models.RoleAdmin {
		return out
	}

	for i := range out {
		if role == models.RoleJudge && out[i].Judge == username {
			continue
		}
		if settings.HideJudges {
			out[i].Judge = models.MaskedJudge
		}
	}
	return out
}
