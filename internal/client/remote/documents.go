package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// DocumentStore is the contract the gallery coordinator needs from the
// document backend. The out parameters are decoded from the response JSON,
// so callers pass their own typed models.
type DocumentStore interface {
	CreateDocument(ctx context.Context, collection, id string, fields, out any) error
	GetDocument(ctx context.Context, collection, id string, out any) error
	UpdateDocument(ctx context.Context, collection, id string, fields, out any) error
	DeleteDocument(ctx context.Context, collection, id string) error
	ListDocuments(ctx context.Context, collection string, filters map[string]string, out any) error
}

type documentEnvelope struct {
	DocumentID string `json:"documentId,omitempty"`
	Data       any    `json:"data"`
}

func (c *Client) documentsPath(collection string) string {
	return fmt.Sprintf("/databases/%s/collections/%s/documents",
		url.PathEscape(c.databaseID), url.PathEscape(collection))
}

func (c *Client) CreateDocument(ctx context.Context, collection, id string, fields, out any) error {
	p := c.documentsPath(collection)
	return c.do(ctx, http.MethodPost, p, documentEnvelope{DocumentID: id, Data: fields}, out)
}

func (c *Client) GetDocument(ctx context.Context, collection, id string, out any) error {
	p := c.documentsPath(collection) + "/" + url.PathEscape(id)
	return c.do(ctx, http.MethodGet, p, nil, out)
}

// UpdateDocument patches the given fields, leaving the rest of the document
// untouched. The write itself is last-write-wins on the backend; there is no
// version token to check against.
func (c *Client) UpdateDocument(ctx context.Context, collection, id string, fields, out any) error {
	p := c.documentsPath(collection) + "/" + url.PathEscape(id)
	return c.do(ctx, http.MethodPatch, p, documentEnvelope{Data: fields}, out)
}

func (c *Client) DeleteDocument(ctx context.Context, collection, id string) error {
	p := c.documentsPath(collection) + "/" + url.PathEscape(id)
	return c.do(ctx, http.MethodDelete, p, nil, nil)
}

// documentList is the response envelope for list queries. Out points at a
// slice; callers get only the documents, not the total.
type documentList struct {
	Total     int `json:"total"`
	Documents any `json:"documents"`
}

// ListDocuments fetches documents matching the equality filters. Filters are
// sent as query parameters; an empty map lists the whole collection.
func (c *Client) ListDocuments(ctx context.Context, collection string, filters map[string]string, out any) error {
	p := c.documentsPath(collection)
	if len(filters) > 0 {
		q := url.Values{}
		for k, v := range filters {
			q.Set(k, v)
		}
		p += "?" + q.Encode()
	}
	return c.do(ctx, http.MethodGet, p, nil, &documentList{Documents: out})
}
