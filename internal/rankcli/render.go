package rankcli

import (
	"fmt"
	"io"
	"sort"

	"github.com/tOgg1/ranksort/internal/rank"
)

// RenderRankings writes a human-readable rank table for hashtag/attribute.
// A single connected component renders as one table; multiple disconnected
// groups render as one table per component, each under a "Component N:"
// heading, mirroring how the original ranking tool grouped output by
// component.
func RenderRankings(w io.Writer, hashtag, attribute string, rankings []rank.Ranking) error {
	if len(rankings) == 0 {
		_, err := fmt.Fprintf(w, "No rankings found for #%s with attribute :%s\n", hashtag, attribute)
		return err
	}

	byComponent := make(map[int][]rank.Ranking)
	var componentIDs []int
	for _, r := range rankings {
		if _, ok := byComponent[r.Component]; !ok {
			componentIDs = append(componentIDs, r.Component)
		}
		byComponent[r.Component] = append(byComponent[r.Component], r)
	}
	sort.Ints(componentIDs)

	if _, err := fmt.Fprintf(w, "Rankings for #%s by :%s\n\n", hashtag, attribute); err != nil {
		return err
	}

	if len(componentIDs) == 1 {
		return writeRankingTable(w, byComponent[componentIDs[0]])
	}

	if _, err := fmt.Fprintf(w, "Found %d disconnected groups:\n\n", len(componentIDs)); err != nil {
		return err
	}
	for _, id := range componentIDs {
		if _, err := fmt.Fprintf(w, "Component %d:\n", id+1); err != nil {
			return err
		}
		if err := writeRankingTable(w, byComponent[id]); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func writeRankingTable(w io.Writer, rankings []rank.Ranking) error {
	sort.Slice(rankings, func(i, j int) bool { return rankings[i].Rank < rankings[j].Rank })
	rows := make([][]string, len(rankings))
	for i, r := range rankings {
		rows[i] = []string{
			fmt.Sprintf("%d.", r.Rank),
			r.Title,
			fmt.Sprintf("(%.4f)", r.Score),
		}
	}
	return writeTable(w, nil, rows)
}

// RenderCompare writes the aggregate preference weights between two items.
func RenderCompare(w io.Writer, attribute string, result rank.CompareResult) error {
	if _, err := fmt.Fprintf(w, "Comparing %s vs %s on :%s\n\n", result.Left, result.Right, attribute); err != nil {
		return err
	}
	rows := [][]string{
		{result.Left, fmt.Sprintf("%.2f", result.LeftSum)},
		{result.Right, fmt.Sprintf("%.2f", result.RightSum)},
	}
	if err := writeTable(w, []string{"Item", "Weight"}, rows); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nbased on %d vote(s)\n", len(result.Votes))
	return err
}

// RenderHashtags writes per-hashtag statistics.
func RenderHashtags(w io.Writer, stats []rank.HashtagStats) error {
	if len(stats) == 0 {
		_, err := fmt.Fprintln(w, "No hashtags found.")
		return err
	}
	headers := []string{"Hashtag", "Items", "Votes", "Last Updated"}
	rows := make([][]string, len(stats))
	for i, s := range stats {
		lastUpdated := s.LastUpdatedTS
		if lastUpdated == "" {
			lastUpdated = "-"
		}
		rows[i] = []string{"#" + s.Name, fmt.Sprintf("%d", s.ItemCount), fmt.Sprintf("%d", s.VoteCount), lastUpdated}
	}
	return writeTable(w, headers, rows)
}
