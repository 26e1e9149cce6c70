// Copyright (c) 2026 Juryboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package leaderboard

import (
	"math"
	"sort"

	"github.com/juryboard/juryboard/models"
)

// Options configures optional ranking behavior.
type Options struct {
	// TieBreakTens inserts a third tie-break between average and name:
	// more scores of 10 ranks higher. Off by default.
	TieBreakTens bool
}

// Compute aggregates a full ledger snapshot into a ranked board.
//
// Votes with a score outside [1,10] are dropped silently; historical bad
// data must not take the board down. The output order is deterministic
// for a given snapshot: total desc, average desc, optionally tens desc,
// then contestant name asc.
func Compute(votes []models.Vote, opts Options) []models.LeaderboardRow {
	type agg struct {
		total int
		count int
		tens  int
	}

	groups := make(map[string]*agg)
	for _, v := range votes {
		if v.Score < 1 || v.Score > 10 {
			continue
		}
		g := groups[v.Contestant]
		if g == nil {
			g = &agg{}
			groups[v.Contestant] = g
		}
		g.total += v.Score
		g.count++
		if v.Score == 10 {
			g.tens++
		}
	}

	rows := make([]models.LeaderboardRow, 0, len(groups))
	for name, g := range groups {
		rows = append(rows, models.LeaderboardRow{
			Contestant: name,
			Total:      g.total,
			Average:    round2(float64(g.total) / float64(g.count)),
			Count:      g.count,
			Tens:       g.tens,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]

		// 1. Higher total wins
		if a.Total != b.Total {
			return a.Total > b.Total
		}

		// 2. Higher average wins
		if a.Average != b.Average {
			return a.Average > b.Average
		}

		// 3. More tens wins (optional)
		if opts.TieBreakTens && a.Tens != b.Tens {
			return a.Tens > b.Tens
		}

		// 4. Stable tie-breaking by contestant name (ascending)
		return a.Contestant < b.Contestant
	})

	for i := range rows {
		rows[i].Rank = i + 1
	}

	return rows
}

// round2 rounds to 2 decimal places, half away from zero.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
