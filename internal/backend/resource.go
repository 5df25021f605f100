// Package backend holds the service layer over the platform REST API.
//
// CRUD over /admin/<resource> is identical for every entity, so it is driven
// by a Resource descriptor instead of one hand-written module per entity.
// Typed services exist only where an endpoint deviates from plain CRUD.
package backend

import (
	"context"
	"net/url"
	"strconv"

	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/api"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/pkg/view"
)

// Resource describes one backend entity: its display name, the path segment
// under /admin, the list action (some endpoints nest one), and the query
// parameter carrying the entity id.
type Resource struct {
	Name       string // "product"
	BasePath   string // "/admin/product"
	ListAction string // optional, e.g. "getSellerList"
	IDParam    string // defaults to Name + "Id"
}

func (r Resource) idParam() string {
	if r.IDParam != "" {
		return r.IDParam
	}
	return r.Name + "Id"
}

func (r Resource) listPath() string {
	if r.ListAction != "" {
		return r.BasePath + "/" + r.ListAction
	}
	return r.BasePath
}

// Service is the generic per-resource client. One request per call, the
// envelope returned verbatim; no validation, no retries.
type Service struct {
	api *api.Client
	res Resource
}

func NewService(c *api.Client, r Resource) *Service {
	return &Service{api: c, res: r}
}

func (s *Service) Resource() Resource { return s.res }

// List fetches one page: start is the absolute record offset, limit the page
// size. extra carries entity-specific filters (roleType, sub-type, search).
func (s *Service) List(ctx context.Context, start, limit int, extra url.Values) (*api.Envelope, error) {
	q := url.Values{}
	q.Set("start", strconv.Itoa(start))
	q.Set("limit", strconv.Itoa(limit))
	for k, vs := range extra {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	return s.api.Get(ctx, s.res.listPath(), q)
}

func (s *Service) Get(ctx context.Context, id string) (*api.Envelope, error) {
	q := url.Values{}
	q.Set(s.res.idParam(), id)
	return s.api.Get(ctx, s.res.BasePath, q)
}

func (s *Service) Create(ctx context.Context, body any) (*api.Envelope, error) {
	return s.api.PostJSON(ctx, s.res.BasePath, nil, body)
}

// CreateMultipart is the create path for entities whose endpoint takes file
// uploads directly instead of staged URLs.
func (s *Service) CreateMultipart(ctx context.Context, fields map[string]string, files []api.FilePart) (*api.Envelope, error) {
	return s.api.PostMultipart(ctx, s.res.BasePath, nil, fields, files)
}

func (s *Service) Update(ctx context.Context, id string, body any) (*api.Envelope, error) {
	q := url.Values{}
	q.Set(s.res.idParam(), id)
	return s.api.PatchJSON(ctx, s.res.BasePath, q, body)
}

func (s *Service) Delete(ctx context.Context, id string) (*api.Envelope, error) {
	q := url.Values{}
	q.Set(s.res.idParam(), id)
	return s.api.Delete(ctx, s.res.BasePath, q)
}

// Toggle flips a boolean flag (isActive, isBlock, ...) via the backend's
// PATCH-with-no-body convention.
func (s *Service) Toggle(ctx context.Context, id, flag string) (*api.Envelope, error) {
	q := url.Values{}
	q.Set(s.res.idParam(), id)
	return s.api.PatchJSON(ctx, s.res.BasePath+"/"+flag, q, nil)
}

// Records pulls the record list out of a list envelope. Most endpoints put it
// under `data`; a few use an entity-named key, passed as altKey.
func Records(env *api.Envelope, altKey string) ([]view.Record, error) {
	var recs []view.Record
	if err := env.DecodeData(&recs); err == nil {
		return recs, nil
	}
	if altKey != "" {
		if err := env.DecodeKey(altKey, &recs); err == nil {
			return recs, nil
		}
	}
	return nil, errNoRecords
}

var errNoRecords = errNoRecordsType{}

type errNoRecordsType struct{}

func (errNoRecordsType) Error() string { return "backend: response carries no record list" }
