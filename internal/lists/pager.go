// Package lists is the generic paginated table behind every entity screen:
// one fetch per page, rows rendered through a caller-supplied renderer,
// has-more inferred from the returned page length.
package lists

import (
	"context"

	"github.com/codestorhub-123/TrendyCart-Admin-sub001/pkg/view"
)

const DefaultPageSize = 20

// Page is what a fetch function reports: the backend's verdict plus the raw
// records of the requested window.
type Page struct {
	Success bool
	Message string
	Records []view.Record
}

// FetchFunc loads one window. identifier/roleType scope the query (a user's
// history, a fake-seller list); offset/limit are absolute record counts.
type FetchFunc func(ctx context.Context, identifier, roleType string, offset, limit int) (Page, error)

// RowFunc renders one record. absoluteIndex counts from the start of the
// whole result set, localIndex from the top of the current page.
type RowFunc func(rec view.Record, absoluteIndex, localIndex int) view.Row

type Pager struct {
	Title           string
	Headers         []string
	Fetch           FetchFunc
	Render          RowFunc
	PageSize        int
	IdentifierParam string // query param name carrying the subject's id

	identifier string
	roleType   string
	pageIndex  int

	records []view.Record
	hasMore bool
	message string
}

func (p *Pager) sizeOrDefault() int {
	if p.PageSize > 0 {
		return p.PageSize
	}
	return DefaultPageSize
}

func (p *Pager) SetIdentifier(id, roleType string) {
	if id != p.identifier || roleType != p.roleType {
		p.identifier = id
		p.roleType = roleType
		p.pageIndex = 0
	}
}

func (p *Pager) SetPage(index int) {
	if index < 0 {
		index = 0
	}
	p.pageIndex = index
}

func (p *Pager) SetPageSize(size int) {
	if size > 0 && size != p.PageSize {
		p.PageSize = size
		p.pageIndex = 0
	}
}

func (p *Pager) PageIndex() int         { return p.pageIndex }
func (p *Pager) HasMore() bool          { return p.hasMore }
func (p *Pager) Message() string        { return p.message }
func (p *Pager) Records() []view.Record { return p.records }

// Load fetches the current page and replaces the held records wholesale.
// No caching: revisiting a page re-fetches it. The returned error is only
// ever the fetch function's hard error (session expiry); ordinary failures
// land in Message with the list cleared.
func (p *Pager) Load(ctx context.Context) error {
	limit := p.sizeOrDefault()
	offset := p.pageIndex * limit

	page, err := p.Fetch(ctx, p.identifier, p.roleType, offset, limit)
	if err != nil {
		p.records = nil
		p.hasMore = false
		return err
	}
	if !page.Success {
		p.records = nil
		p.hasMore = false
		p.message = page.Message
		if p.message == "" {
			p.message = "failed to load " + p.Title
		}
		return nil
	}

	p.records = page.Records
	// A full page means more may exist; a short page is the last one. The
	// backend never reports a total, so this heuristic is all there is.
	p.hasMore = len(page.Records) == limit
	p.message = ""
	return nil
}

// Rows renders the current page through the row renderer.
func (p *Pager) Rows() []view.Row {
	if p.Render == nil {
		return nil
	}
	offset := p.pageIndex * p.sizeOrDefault()
	rows := make([]view.Row, 0, len(p.records))
	for i, rec := range p.records {
		rows = append(rows, p.Render(rec, offset+i, i))
	}
	return rows
}

// ViewModel assembles the list screen payload.
func (p *Pager) ViewModel() view.ListPage {
	return view.ListPage{
		Title:    p.Title,
		Headers:  p.Headers,
		Rows:     p.Rows(),
		Page:     p.pageIndex,
		PageSize: p.sizeOrDefault(),
		HasMore:  p.hasMore,
		Message:  p.message,
	}
}
