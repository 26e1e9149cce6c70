// Copyright (c) 2026 Juryboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package policy decides who may do what, and what each viewer sees.

Three roles exist: anonymous, judge, admin. CanSubmit and
CanAdministrate gate the write paths. MaskVotes rewrites judge
attribution on vote listings: admins see everything, judges see their
own rows attributed, and anonymous viewers see judge names replaced
with a shared label while hide_judges_from_viewers is on.
*/
package policy
