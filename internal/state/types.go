// Package state reduces parsed DSL documents into accumulated application
// state: items, votes, and the hashtags/attributes associated with them.
package state

// ItemRecord is a submitted item and the hashtags it has been tagged under.
type ItemRecord struct {
	Title       string
	Body        *string
	Hashtags    map[string]struct{}
	CreatedBy   string
	SubmittedAt string
}

// VoteRecord is a single comparison between two items under one attribute.
type VoteRecord struct {
	Item1          string
	Item2          string
	RatioLeft      int
	RatioRight     int
	Attribute      string
	Explanation    *string
	VoterEmail     string
	SubmittedAt    string
	SourceFilename string
}

// State is the full set of items and votes accumulated across every
// processed document.
type State struct {
	Items map[string]*ItemRecord
	Votes []VoteRecord
	// Emails tracks every bare email address literal seen, in first-seen order.
	Emails []string
}

// NewState returns an empty State ready for reduction.
func NewState() *State {
	return &State{Items: make(map[string]*ItemRecord)}
}

// Clone returns a deep copy of s, safe to mutate independently of the
// original. Used by Reducer to stage a document's mutations and discard
// them wholesale on a mid-document semantic error.
func (s *State) Clone() *State {
	clone := &State{
		Items:  make(map[string]*ItemRecord, len(s.Items)),
		Votes:  append([]VoteRecord(nil), s.Votes...),
		Emails: append([]string(nil), s.Emails...),
	}
	for title, item := range s.Items {
		hashtags := make(map[string]struct{}, len(item.Hashtags))
		for h := range item.Hashtags {
			hashtags[h] = struct{}{}
		}
		cloned := *item
		cloned.Hashtags = hashtags
		clone.Items[title] = &cloned
	}
	return clone
}

// ItemsByHashtag returns every item tagged with the given hashtag.
func (s *State) ItemsByHashtag(hashtag string) []*ItemRecord {
	var out []*ItemRecord
	for _, item := range s.Items {
		if _, ok := item.Hashtags[hashtag]; ok {
			out = append(out, item)
		}
	}
	return out
}

// VotesByAttribute returns every vote recorded under the given attribute.
func (s *State) VotesByAttribute(attribute string) []VoteRecord {
	var out []VoteRecord
	for _, v := range s.Votes {
		if v.Attribute == attribute {
			out = append(out, v)
		}
	}
	return out
}

// VotesForItem returns every vote that references the given item title on
// either side.
func (s *State) VotesForItem(title string) []VoteRecord {
	var out []VoteRecord
	for _, v := range s.Votes {
		if v.Item1 == title || v.Item2 == title {
			out = append(out, v)
		}
	}
	return out
}
