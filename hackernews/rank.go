package hackernews

import (
	"slices"

	"github.com/pevans/hnstories/fuzzy"
)

// RankByTitle orders stories by descending token-set similarity between
// query and each title, and returns the first num of them. Stories with
// equal scores keep their input order. A missing title scores as "". The
// input slice is left untouched.
func RankByTitle(query string, stories []Story, num int) ([]Story, error) {
	if num < 0 {
		return nil, ErrInvalidCount
	}

	type scored struct {
		story Story
		score int
	}

	ranked := make([]scored, len(stories))
	for i, story := range stories {
		ranked[i] = scored{
			story: story,
			score: fuzzy.TokenSetRatio(query, story.TitleOrEmpty()),
		}
	}

	slices.SortStableFunc(ranked, func(a, b scored) int {
		return b.score - a.score
	})

	if num > len(ranked) {
		num = len(ranked)
	}

	result := make([]Story, 0, num)
	for _, r := range ranked[:num] {
		result = append(result, r.story)
	}
	return result, nil
}
