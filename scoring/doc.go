// Copyright (c) 2026 Juryboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scoring implements the vote submission engine.

# Submission

Engine.Submit runs the full pipeline for one score:

 1. Validate the score (integers 1-10 only).
 2. Check the voting window (admins bypass a closed window).
 3. Normalize the contestant name and check it against the roster.
 4. Upsert: if the judge already scored this contestant, replace the
    score in place; otherwise append a new vote.

The upsert keeps the invariant that a judge holds at most one vote per
contestant. A resubmission keeps the original vote ID and bumps the
timestamp.

# Errors

Sentinel errors distinguish caller mistakes from state:

  - ErrInvalidScore: out-of-range score
  - ErrUnknownContestant: name not on the roster
  - ErrVotingClosed: window closed and caller is not admin

Storage failures pass through wrapped as store.ErrUnavailable.
*/
package scoring
