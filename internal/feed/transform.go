package feed

import (
	"sort"

	"github.com/vongst/web-audio-api/internal/models"
)

// SortByTitle returns a new ordering of posts by title. Comparison is plain
// byte-wise string comparison: case-sensitive, locale-unaware. Descending is
// the reversed ascending result. Equal titles have no secondary key, so
// their relative order is unspecified. The input slice is not mutated.
func SortByTitle(posts []models.Post, descending bool) []models.Post {
	out := make([]models.Post, len(posts))
	copy(out, posts)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Title < out[j].Title
	})
	if descending {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// GroupByUser returns a new ordering where all posts sharing a userId are
// contiguous. Groups appear in the order their userId is first encountered
// in the input; order within a group is preserved. This is a stable
// partition, not a sort: no ordering is imposed on the userId values
// themselves. The input slice is not mutated.
func GroupByUser(posts []models.Post) []models.Post {
	seen := make(map[int]int, len(posts)) // userId -> position in order
	order := make([]int, 0, len(posts))
	buckets := make(map[int][]models.Post, len(posts))
	for _, p := range posts {
		if _, ok := seen[p.UserID]; !ok {
			seen[p.UserID] = len(order)
			order = append(order, p.UserID)
		}
		buckets[p.UserID] = append(buckets[p.UserID], p)
	}
	out := make([]models.Post, 0, len(posts))
	for _, uid := range order {
		out = append(out, buckets[uid]...)
	}
	return out
}
