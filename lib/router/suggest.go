// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package router

import (
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxSuggestDistance is the largest edit distance still worth
// suggesting. It catches transpositions, dropped characters, and extra
// characters without proposing unrelated names.
const maxSuggestDistance = 3

// Suggest returns the candidate closest to unknown, or "" if nothing is
// close enough. Candidates containing unknown's characters in order
// ("dep" in "Deploy") are preferred, ranked by how few characters they
// add. Otherwise the candidate with the smallest edit distance, at most
// 3, is returned. Ties go to the earlier candidate.
func Suggest(unknown string, candidates []string) string {
	if unknown == "" || len(candidates) == 0 {
		return ""
	}

	if ranks := fuzzy.RankFindFold(unknown, candidates); len(ranks) > 0 {
		best := ranks[0]
		for _, rank := range ranks[1:] {
			if rank.Distance < best.Distance ||
				(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
				best = rank
			}
		}
		return best.Target
	}

	bestName := ""
	bestDistance := maxSuggestDistance + 1
	for _, candidate := range candidates {
		distance := fuzzy.LevenshteinDistance(unknown, candidate)
		if distance < bestDistance {
			bestDistance = distance
			bestName = candidate
		}
	}
	return bestName
}
