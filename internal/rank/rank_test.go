package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tOgg1/ranksort/internal/dsl"
	"github.com/tOgg1/ranksort/internal/state"
)

func buildState(t *testing.T, stmts []dsl.Statement) *state.State {
	t.Helper()
	r := state.NewReducer()
	require.NoError(t, r.ProcessDocument(&dsl.Document{Statements: stmts}, "0", "", ""))
	return r.State()
}

func strPtr(s string) *string { return &s }

func TestComputeRankingsEmptyCandidatesReturnsNil(t *testing.T) {
	st := state.NewState()
	out := ComputeRankings(st, "ideas", "impact")
	assert.Nil(t, out)
}

func TestComputeRankingsNoVotesGivesUniformSingletons(t *testing.T) {
	st := buildState(t, []dsl.Statement{
		dsl.Hashtag{Name: "ideas"},
		dsl.Item{Title: "b"},
		dsl.Item{Title: "a"},
	})

	out := ComputeRankings(st, "ideas", "impact")
	require.Len(t, out, 2)
	for _, r := range out {
		assert.InDelta(t, 0.5, r.Score, 1e-9)
		assert.Equal(t, 1, r.Rank)
	}
	assert.Equal(t, "a", out[0].Title)
	assert.Equal(t, "b", out[1].Title)
}

func TestComputeRankingsTwoItemOneVotePrefersWinner(t *testing.T) {
	st := buildState(t, []dsl.Statement{
		dsl.Hashtag{Name: "ideas"},
		dsl.Item{Title: "a"},
		dsl.Item{Title: "b"},
		dsl.AttributeDecl{Names: []string{"impact"}},
		dsl.Vote{Item1: "a", Item2: "b", RatioLeft: 10, RatioRight: 1},
	})

	out := ComputeRankings(st, "ideas", "impact")
	require.Len(t, out, 2)
	assert.Equal(t, 0, out[0].Component)
	assert.Equal(t, 0, out[1].Component)
	assert.Equal(t, "a", out[0].Title)
	assert.Equal(t, 1, out[0].Rank)
	assert.Equal(t, "b", out[1].Title)
	assert.Equal(t, 2, out[1].Rank)
	assert.Greater(t, out[0].Score, out[1].Score)
	assert.InDelta(t, 1.0, out[0].Score+out[1].Score, 1e-6)
}

func TestComputeRankingsDisconnectedGroupsGetDistinctComponents(t *testing.T) {
	st := buildState(t, []dsl.Statement{
		dsl.Hashtag{Name: "food"},
		dsl.Item{Title: "apple"},
		dsl.Item{Title: "orange"},
		dsl.Item{Title: "carrot"},
		dsl.Item{Title: "celery"},
		dsl.AttributeDecl{Names: []string{"taste"}},
		dsl.Vote{Item1: "apple", Item2: "orange", RatioLeft: 2, RatioRight: 1},
		dsl.Vote{Item1: "carrot", Item2: "celery", RatioLeft: 2, RatioRight: 1},
	})

	out := ComputeRankings(st, "food", "taste")
	require.Len(t, out, 4)

	components := make(map[string]int)
	for _, r := range out {
		components[r.Title] = r.Component
	}
	assert.Equal(t, components["apple"], components["orange"])
	assert.Equal(t, components["carrot"], components["celery"])
	assert.NotEqual(t, components["apple"], components["carrot"])
}

func TestComputeRankingsIgnoresItemsWithoutHashtag(t *testing.T) {
	st := buildState(t, []dsl.Statement{
		dsl.Hashtag{Name: "ideas"},
		dsl.Item{Title: "a"},
		dsl.Hashtag{Name: "backlog"},
		dsl.Item{Title: "z"},
	})

	out := ComputeRankings(st, "ideas", "impact")
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].Title)
}

func TestCompareAggregatesVotesCanonicalized(t *testing.T) {
	st := buildState(t, []dsl.Statement{
		dsl.Hashtag{Name: "ideas"},
		dsl.Item{Title: "zeta"},
		dsl.Item{Title: "alpha"},
		dsl.AttributeDecl{Names: []string{"impact"}},
		dsl.Vote{Item1: "zeta", Item2: "alpha", RatioLeft: 2, RatioRight: 1, Explanation: strPtr("zeta wins")},
		dsl.Vote{Item1: "alpha", Item2: "zeta", RatioLeft: 1, RatioRight: 3},
	})

	result, err := Compare(st, "zeta", "alpha", "impact")
	require.NoError(t, err)
	assert.Equal(t, "alpha", result.Left)
	assert.Equal(t, "zeta", result.Right)
	// first vote: zeta(right)=2 -> RightSum, alpha(left)=1 -> LeftSum
	// second vote: alpha(left)=1 -> LeftSum, zeta(right)=3 -> RightSum
	assert.Equal(t, 2.0, result.LeftSum)
	assert.Equal(t, 5.0, result.RightSum)
	assert.Len(t, result.Votes, 2)
}

func TestCompareUnknownItemFails(t *testing.T) {
	st := buildState(t, []dsl.Statement{
		dsl.Hashtag{Name: "ideas"},
		dsl.Item{Title: "a"},
	})
	_, err := Compare(st, "a", "ghost", "impact")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestListHashtagsCountsItemsAndSharedVotes(t *testing.T) {
	st := buildState(t, []dsl.Statement{
		dsl.Hashtag{Name: "ideas"},
		dsl.Item{Title: "a"},
		dsl.Item{Title: "b"},
		dsl.AttributeDecl{Names: []string{"impact"}},
		dsl.Vote{Item1: "a", Item2: "b", RatioLeft: 1, RatioRight: 1},
	})

	stats := ListHashtags(st)
	require.Len(t, stats, 1)
	assert.Equal(t, "ideas", stats[0].Name)
	assert.Equal(t, 2, stats[0].ItemCount)
	assert.Equal(t, 1, stats[0].VoteCount)
}

func TestTarjanSCCSingleCycle(t *testing.T) {
	adj := [][]float64{
		{0, 1, 0},
		{0, 0, 1},
		{1, 0, 0},
	}
	components := tarjanSCC(adj)
	require.Len(t, components, 1)
	assert.Len(t, components[0], 3)
}

func TestTarjanSCCAllIsolatedNodes(t *testing.T) {
	adj := [][]float64{
		{0, 0},
		{0, 0},
	}
	components := tarjanSCC(adj)
	assert.Len(t, components, 2)
}

func TestRankCentralitySumsToOne(t *testing.T) {
	a := [][]float64{
		{0, 1},
		{9, 0},
	}
	scores := rankCentrality(a)
	require.Len(t, scores, 2)
	assert.InDelta(t, 1.0, scores[0]+scores[1], 1e-6)
	assert.Greater(t, scores[0], scores[1])
}
