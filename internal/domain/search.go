package domain

import (
	"strings"
	"time"
)

// SearchRequest holds optional filter criteria.
//
// A nil slice or nil pointer means the criterion is absent and always passes.
// A non-nil empty slice is a supplied criterion with nothing to match, so it never passes.
type SearchRequest struct {
	TitlePrefixes    []string   `json:"titlePrefixes,omitempty"`
	ContainsContents []string   `json:"containsContents,omitempty"`
	AuthorIDs        []string   `json:"authorIds,omitempty"`
	CreatedFrom      *time.Time `json:"createdFrom,omitempty"`
	CreatedTo        *time.Time `json:"createdTo,omitempty"`
}

// IsEmpty reports whether no criterion is supplied.
func (r SearchRequest) IsEmpty() bool {
	return r.TitlePrefixes == nil &&
		r.ContainsContents == nil &&
		r.AuthorIDs == nil &&
		r.CreatedFrom == nil &&
		r.CreatedTo == nil
}

// Matches reports whether doc passes every supplied criterion of req.
// Each list criterion passes when any of its values matches.
func Matches(req SearchRequest, doc Document) bool {
	if req.TitlePrefixes != nil && !anyOf(req.TitlePrefixes, func(p string) bool {
		return strings.HasPrefix(doc.Title, p)
	}) {
		return false
	}

	if req.ContainsContents != nil && !anyOf(req.ContainsContents, func(s string) bool {
		return strings.Contains(doc.Content, s)
	}) {
		return false
	}

	if req.AuthorIDs != nil && !anyOf(req.AuthorIDs, func(id string) bool {
		return doc.Author.ID == id
	}) {
		return false
	}

	// Both bounds are inclusive.
	if req.CreatedFrom != nil && doc.Created.Before(*req.CreatedFrom) {
		return false
	}
	if req.CreatedTo != nil && doc.Created.After(*req.CreatedTo) {
		return false
	}

	return true
}

func anyOf(values []string, match func(string) bool) bool {
	for _, v := range values {
		if match(v) {
			return true
		}
	}
	return false
}
