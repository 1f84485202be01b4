// Package search evaluates a SearchRequest against a set of documents by full scan.
package search

import (
	"sort"
	"strings"

	"github.com/gogotex/docstore/internal/document"
)

// Filter returns every document that satisfies all set criterion groups of req.
// Results are ordered by ID (byte-wise) so equal inputs give equal output.
// The input slice is not modified.
func Filter(docs []document.Document, req document.SearchRequest) []document.Document {
	out := make([]document.Document, 0, len(docs))
	for _, d := range docs {
		if Matches(d, req) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Matches is the AND of the four criterion groups. Within a group any value may match.
func Matches(d document.Document, req document.SearchRequest) bool {
	return titleMatch(d, req.TitlePrefixes) &&
		contentMatch(d, req.ContainsContents) &&
		authorMatch(d, req.AuthorIDs) &&
		createdMatch(d, req)
}

func titleMatch(d document.Document, prefixes []string) bool {
	if prefixes == nil {
		return true
	}
	for _, p := range prefixes {
		if strings.HasPrefix(d.Title, p) {
			return true
		}
	}
	return false
}

func contentMatch(d document.Document, parts []string) bool {
	if parts == nil {
		return true
	}
	for _, s := range parts {
		if strings.Contains(d.Content, s) {
			return true
		}
	}
	return false
}

func authorMatch(d document.Document, ids []string) bool {
	if ids == nil {
		return true
	}
	for _, id := range ids {
		if d.Author.ID == id {
			return true
		}
	}
	return false
}

// both bounds inclusive
func createdMatch(d document.Document, req document.SearchRequest) bool {
	if req.CreatedFrom != nil && d.Created.Before(*req.CreatedFrom) {
		return false
	}
	if req.CreatedTo != nil && d.Created.After(*req.CreatedTo) {
		return false
	}
	return true
}
