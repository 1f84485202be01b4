package document

import "time"

// Author identifies who wrote a document. Identity is ID.
type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Document is the stored unit of content. ID and Created are empty until the
// document has been saved by a repository.
type Document struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Author  Author    `json:"author"`
	Created time.Time `json:"created"`
}

// Saved reports whether the document carries the identity a repository assigns.
func (d Document) Saved() bool {
	return d.ID != "" && !d.Created.IsZero()
}

// SearchRequest is a composite filter. A nil field leaves its criterion group
// unset; a non-nil empty slice is a set group with no values and matches nothing.
type SearchRequest struct {
	TitlePrefixes    []string   `json:"titlePrefixes,omitempty"`
	ContainsContents []string   `json:"containsContents,omitempty"`
	AuthorIDs        []string   `json:"authorIds,omitempty"`
	CreatedFrom      *time.Time `json:"createdFrom,omitempty"`
	CreatedTo        *time.Time `json:"createdTo,omitempty"`
}
