// Package rank turns accumulated state into orderings: per-hashtag,
// per-attribute rank centrality scores grouped by strongly connected
// component, plus the smaller aggregate queries (compare, hashtag stats)
// that read the same preference data without running the full algorithm.
package rank

import (
	"sort"

	"github.com/tOgg1/ranksort/internal/state"
)

// Ranking is one item's position within its component for a given
// hashtag/attribute ranking.
type Ranking struct {
	Title     string  `json:"title"`
	Score     float64 `json:"score"`
	Rank      int     `json:"rank"`
	Component int     `json:"component"`
}

// ComputeRankings ranks every item tagged with hashtag according to votes
// recorded under attribute. Items never compared, directly or
// transitively, end up in different components and are not comparable to
// each other.
func ComputeRankings(st *state.State, hashtag, attribute string) []Ranking {
	candidates := st.ItemsByHashtag(hashtag)
	if len(candidates) == 0 {
		return nil
	}

	titles := make([]string, 0, len(candidates))
	inCandidates := make(map[string]struct{}, len(candidates))
	for _, item := range candidates {
		titles = append(titles, item.Title)
		inCandidates[item.Title] = struct{}{}
	}
	sort.Strings(titles)

	var edges []state.VoteRecord
	for _, v := range st.VotesByAttribute(attribute) {
		if _, ok := inCandidates[v.Item1]; !ok {
			continue
		}
		if _, ok := inCandidates[v.Item2]; !ok {
			continue
		}
		edges = append(edges, v)
	}

	if len(edges) == 0 {
		out := make([]Ranking, len(titles))
		for i, title := range titles {
			out[i] = Ranking{Title: title, Score: 1.0 / float64(len(titles)), Rank: 1, Component: i}
		}
		return out
	}

	n := len(titles)
	titleIdx := make(map[string]int, n)
	for i, title := range titles {
		titleIdx[title] = i
	}

	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
	}
	for _, v := range edges {
		i := titleIdx[v.Item1]
		j := titleIdx[v.Item2]
		a[j][i] += float64(v.RatioLeft)
		a[i][j] += float64(v.RatioRight)
	}

	components := tarjanSCC(a)

	var results []Ranking
	for componentID, indices := range components {
		if len(indices) == 1 {
			results = append(results, Ranking{
				Title:     titles[indices[0]],
				Score:     1.0,
				Rank:      1,
				Component: componentID,
			})
			continue
		}

		sub := make([][]float64, len(indices))
		for i, oi := range indices {
			sub[i] = make([]float64, len(indices))
			for j, oj := range indices {
				sub[i][j] = a[oi][oj]
			}
		}

		scores := rankCentrality(sub)

		order := make([]int, len(indices))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			if scores[order[a]] != scores[order[b]] {
				return scores[order[a]] > scores[order[b]]
			}
			return titles[indices[order[a]]] < titles[indices[order[b]]]
		})

		for rank, subIdx := range order {
			results = append(results, Ranking{
				Title:     titles[indices[subIdx]],
				Score:     scores[subIdx],
				Rank:      rank + 1,
				Component: componentID,
			})
		}
	}

	return results
}

// CompareResult aggregates the preference weight of one item over another,
// restricted to a single attribute.
type CompareResult struct {
	Left     string             `json:"left"`
	Right    string             `json:"right"`
	LeftSum  float64            `json:"left_sum"`
	RightSum float64            `json:"right_sum"`
	Votes    []state.VoteRecord `json:"votes,omitempty"`
}

// Compare aggregates every vote between item1 and item2 under attribute.
// Titles are canonicalized (ascending) so callers get a stable Left/Right
// regardless of argument order.
func Compare(st *state.State, item1, item2, attribute string) (CompareResult, error) {
	if _, ok := st.Items[item1]; !ok {
		return CompareResult{}, ErrUnknownItem
	}
	if _, ok := st.Items[item2]; !ok {
		return CompareResult{}, ErrUnknownItem
	}

	left, right := item1, item2
	if right < left {
		left, right = right, left
	}

	result := CompareResult{Left: left, Right: right}
	for _, v := range st.Votes {
		if v.Attribute != attribute {
			continue
		}
		switch {
		case v.Item1 == left && v.Item2 == right:
			result.LeftSum += float64(v.RatioLeft)
			result.RightSum += float64(v.RatioRight)
		case v.Item1 == right && v.Item2 == left:
			result.LeftSum += float64(v.RatioRight)
			result.RightSum += float64(v.RatioLeft)
		default:
			continue
		}
		result.Votes = append(result.Votes, v)
	}
	return result, nil
}

// HashtagStats summarizes activity under a single hashtag.
type HashtagStats struct {
	Name          string `json:"name"`
	ItemCount     int    `json:"item_count"`
	VoteCount     int    `json:"vote_count"`
	LastUpdatedTS string `json:"last_updated_ts"`
}

// ListHashtags returns per-hashtag statistics, sorted by name. A vote
// counts toward a hashtag only when both items it references share that
// hashtag.
func ListHashtags(st *state.State) []HashtagStats {
	byHashtag := make(map[string]*HashtagStats)

	ensure := func(name string) *HashtagStats {
		stats, ok := byHashtag[name]
		if !ok {
			stats = &HashtagStats{Name: name}
			byHashtag[name] = stats
		}
		return stats
	}

	for _, item := range st.Items {
		for hashtag := range item.Hashtags {
			stats := ensure(hashtag)
			stats.ItemCount++
			if item.SubmittedAt > stats.LastUpdatedTS {
				stats.LastUpdatedTS = item.SubmittedAt
			}
		}
	}

	for _, v := range st.Votes {
		item1, ok1 := st.Items[v.Item1]
		item2, ok2 := st.Items[v.Item2]
		if !ok1 || !ok2 {
			continue
		}
		for hashtag := range item1.Hashtags {
			if _, shared := item2.Hashtags[hashtag]; !shared {
				continue
			}
			stats := ensure(hashtag)
			stats.VoteCount++
			if v.SubmittedAt > stats.LastUpdatedTS {
				stats.LastUpdatedTS = v.SubmittedAt
			}
		}
	}

	names := make([]string, 0, len(byHashtag))
	for name := range byHashtag {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]HashtagStats, len(names))
	for i, name := range names {
		out[i] = *byHashtag[name]
	}
	return out
}
