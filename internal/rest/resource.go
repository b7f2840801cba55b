package rest

import (
	"context"
	"net/http"
)

// Resource is the typed client for one entity collection. The path is
// the collection name: GET /{path}, POST /{path}, PUT /{path}/{id},
// DELETE /{path}/{id}.
type Resource[T any] struct {
	c    *Client
	path string
}

// NewResource builds the resource client for a collection.
func NewResource[T any](c *Client, collection string) Resource[T] {
	return Resource[T]{c: c, path: "/" + collection}
}

// List fetches the full collection.
func (r Resource[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.c.do(ctx, http.MethodGet, r.path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create posts a partial entity body and returns the created record.
func (r Resource[T]) Create(ctx context.Context, body any) (T, error) {
	var out T
	err := r.c.do(ctx, http.MethodPost, r.path, body, &out)
	return out, err
}

// Update puts a partial body against an id and returns the updated
// record.
func (r Resource[T]) Update(ctx context.Context, id string, body any) (T, error) {
	var out T
	err := r.c.do(ctx, http.MethodPut, r.path+"/"+id, body, &out)
	return out, err
}

// Delete removes a record. Success is carried by the status code alone;
// the response body is empty.
func (r Resource[T]) Delete(ctx context.Context, id string) error {
	return r.c.do(ctx, http.MethodDelete, r.path+"/"+id, nil, nil)
}

// Move posts a stage change for a pipeline entity and returns the
// updated record.
func (r Resource[T]) Move(ctx context.Context, id, toStage string) (T, error) {
	var out T
	body := map[string]string{"toStage": toStage}
	err := r.c.do(ctx, http.MethodPost, r.path+"/"+id+"/move", body, &out)
	return out, err
}
