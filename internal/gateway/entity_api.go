package gateway

import (
	"context"
	"net/http"
	"time"

	"dairy_admin/internal/entity"
)

// EntityAPI wraps the REST collection endpoints of one server-backed
// entity: GET/POST on the collection, PUT/DELETE on a single id.
type EntityAPI struct {
	client *Client
	base   string
}

func NewEntityAPI(client *Client, basePath string) *EntityAPI {
	return &EntityAPI{client: client, base: basePath}
}

// List fetches the whole remote collection.
func (a *EntityAPI) List(ctx context.Context) ([]entity.Record, error) {
	var raw []map[string]any
	if err := a.client.Do(ctx, http.MethodGet, a.base, nil, &raw); err != nil {
		return nil, err
	}
	out := make([]entity.Record, 0, len(raw))
	for _, obj := range raw {
		out = append(out, decodeRecord(obj))
	}
	return out, nil
}

// Create posts the field map and returns the record under its
// server-assigned id when the response carries one.
func (a *EntityAPI) Create(ctx context.Context, fields map[string]any) (entity.Record, error) {
	var raw map[string]any
	if err := a.client.Do(ctx, http.MethodPost, a.base, fields, &raw); err != nil {
		return entity.Record{}, err
	}
	return decodeRecord(raw), nil
}

func (a *EntityAPI) Update(ctx context.Context, id string, fields map[string]any) error {
	return a.client.Do(ctx, http.MethodPut, a.base+"/"+id, fields, nil)
}

func (a *EntityAPI) Delete(ctx context.Context, id string) error {
	return a.client.Do(ctx, http.MethodDelete, a.base+"/"+id, nil, nil)
}

// decodeRecord maps a remote JSON object onto a Record. The API uses
// Mongo-style "_id" keys; "id" is accepted too. Remaining keys become
// the field map.
func decodeRecord(obj map[string]any) entity.Record {
	rec := entity.Record{Fields: make(map[string]any, len(obj))}
	for k, v := range obj {
		switch k {
		case "_id", "id":
			if s, ok := v.(string); ok {
				rec.ID = s
			}
		case "createdAt":
			if s, ok := v.(string); ok {
				if t, err := time.Parse(time.RFC3339, s); err == nil {
					rec.CreatedAt = t
					continue
				}
			}
			rec.Fields[k] = v
		default:
			rec.Fields[k] = v
		}
	}
	return rec
}
