package state

import (
	"fmt"

	"github.com/tOgg1/ranksort/internal/dsl"
)

// Reducer applies parsed documents to a State, enforcing the semantic rules
// that the grammar itself cannot: hashtag/attribute context, item
// existence, and non-zero vote ratios.
type Reducer struct {
	state *State

	currentHashtag   string
	currentAttribute string
	currentUserEmail string
	currentSource    string
}

// NewReducer returns a Reducer over a fresh empty State.
func NewReducer() *Reducer {
	return &Reducer{state: NewState()}
}

// State returns the accumulated state. The returned pointer is shared; it
// reflects every document processed so far.
func (r *Reducer) State() *State {
	return r.state
}

// ProcessDocument applies every statement in doc to the accumulated state,
// in order. Hashtag and attribute context reset at the start of each
// document: context declared in one email does not carry over into the
// next. A document is applied atomically: its statements are staged
// against a clone of the current state, and on the first semantic error
// the clone is discarded and State() returns exactly what it did before
// ProcessDocument was called.
func (r *Reducer) ProcessDocument(doc *dsl.Document, submittedAt, userEmail, sourceFilename string) error {
	r.currentHashtag = ""
	r.currentAttribute = ""
	r.currentUserEmail = userEmail
	r.currentSource = sourceFilename

	committed := r.state
	r.state = committed.Clone()

	for _, stmt := range doc.Statements {
		switch s := stmt.(type) {
		case dsl.Hashtag:
			r.processHashtag(s)
		case dsl.Item:
			if err := r.processItem(s, submittedAt); err != nil {
				r.state = committed
				return err
			}
		case dsl.AttributeDecl:
			r.processAttributeDecl(s)
		case dsl.Vote:
			if err := r.processVote(s, submittedAt); err != nil {
				r.state = committed
				return err
			}
		case dsl.EmailLiteral:
			r.processEmail(s)
		}
	}
	return nil
}

func (r *Reducer) processHashtag(h dsl.Hashtag) {
	r.currentHashtag = h.Name
}

func (r *Reducer) processItem(item dsl.Item, submittedAt string) error {
	if r.currentHashtag == "" {
		return fmt.Errorf("%w: %q (use #hashtag before submitting items)", ErrMissingHashtagContext, item.Title)
	}

	existing, ok := r.state.Items[item.Title]
	if ok {
		if item.Body != nil {
			return fmt.Errorf("%w: %q (bodies are immutable; to add to another hashtag, resubmit without a body)", ErrImmutableBody, item.Title)
		}
		existing.Hashtags[r.currentHashtag] = struct{}{}
		return nil
	}

	r.state.Items[item.Title] = &ItemRecord{
		Title:       item.Title,
		Body:        item.Body,
		Hashtags:    map[string]struct{}{r.currentHashtag: {}},
		CreatedBy:   r.currentUserEmail,
		SubmittedAt: submittedAt,
	}
	return nil
}

func (r *Reducer) processAttributeDecl(decl dsl.AttributeDecl) {
	if len(decl.Names) == 0 {
		return
	}
	r.currentAttribute = decl.Names[len(decl.Names)-1]
}

func (r *Reducer) processVote(vote dsl.Vote, submittedAt string) error {
	if r.currentAttribute == "" {
		return fmt.Errorf("%w (use an attribute declaration, e.g. :impact, before voting)", ErrMissingAttributeContext)
	}
	if _, ok := r.state.Items[vote.Item1]; !ok {
		return fmt.Errorf("%w: %q (items must be declared before voting)", ErrUnknownItem, vote.Item1)
	}
	if _, ok := r.state.Items[vote.Item2]; !ok {
		return fmt.Errorf("%w: %q (items must be declared before voting)", ErrUnknownItem, vote.Item2)
	}
	if vote.RatioLeft == 0 || vote.RatioRight == 0 {
		return fmt.Errorf("%w (%d:%d); use small nonzero numbers like 1:10 instead", ErrZeroRatio, vote.RatioLeft, vote.RatioRight)
	}

	r.state.Votes = append(r.state.Votes, VoteRecord{
		Item1:          vote.Item1,
		Item2:          vote.Item2,
		RatioLeft:      vote.RatioLeft,
		RatioRight:     vote.RatioRight,
		Attribute:      r.currentAttribute,
		Explanation:    vote.Explanation,
		VoterEmail:     r.currentUserEmail,
		SubmittedAt:    submittedAt,
		SourceFilename: r.currentSource,
	})
	return nil
}

func (r *Reducer) processEmail(e dsl.EmailLiteral) {
	for _, known := range r.state.Emails {
		if known == e.Address {
			return
		}
	}
	r.state.Emails = append(r.state.Emails, e.Address)
}
