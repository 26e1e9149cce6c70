// Copyright (c) 2026 Juryboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package leaderboard computes ranked standings from the vote ledger.

Compute aggregates votes per contestant (total, average, count, count of
tens) and sorts descending by total, breaking ties by average, then
optionally by count of tens, then ascending by name. The final
name tie-break makes the ordering fully deterministic: the same ledger
always yields the same board.

Votes with scores outside 1-10 are skipped during aggregation rather
than poisoning the totals.
*/
package leaderboard
