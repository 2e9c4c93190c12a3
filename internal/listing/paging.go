package listing

import (
	"errors"

	"github.com/alumnet/admin-gateway/internal/models"
)

const (
	// MinPerPage and MaxPerPage bound the page-size control.
	MinPerPage = 1
	MaxPerPage = 100
)

// ErrOutOfRange rejects typed page or page-size values outside their
// bounds. Prev/Next never return it: stepper controls clamp instead.
var ErrOutOfRange = errors.New("value out of range")

// ClampPage forces a page number into [1, totalPages].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// ClampPerPage forces a page size into [MinPerPage, MaxPerPage].
func ClampPerPage(perPage int) int {
	if perPage < MinPerPage {
		return MinPerPage
	}
	if perPage > MaxPerPage {
		return MaxPerPage
	}
	return perPage
}

// PageProvider is the pagination strategy behind the list widget. The two
// implementations replace the original's runtime branch on whether a
// server descriptor was supplied.
type PageProvider interface {
	// Rows returns the rows for the current page.
	Rows() []map[string]interface{}
	// Descriptor returns the page metadata for the current view.
	Descriptor() models.Pagination
	// SetPage moves to a typed page number; out-of-range values are
	// rejected, not clamped.
	SetPage(page int) error
	// SetPerPage changes the typed page size; out-of-range values are
	// rejected, not clamped.
	SetPerPage(perPage int) error
	// Prev steps back one page, clamping at the first page.
	Prev()
	// Next steps forward one page, clamping at the last page.
	Next()
}

// ServerPaged renders exactly the rows the backend returned and delegates
// page and size changes to callbacks; the caller is expected to refetch.
// The descriptor always comes from the backend response.
type ServerPaged struct {
	rows       []map[string]interface{}
	descriptor models.Pagination
	onPage     func(page int)
	onPerPage  func(perPage int)
}

// NewServerPaged wraps one backend page.
func NewServerPaged(rows []map[string]interface{}, descriptor models.Pagination, onPage func(int), onPerPage func(int)) *ServerPaged {
	return &ServerPaged{rows: rows, descriptor: descriptor, onPage: onPage, onPerPage: onPerPage}
}

func (p *ServerPaged) Rows() []map[string]interface{} { return p.rows }

func (p *ServerPaged) Descriptor() models.Pagination { return p.descriptor }

func (p *ServerPaged) SetPage(page int) error {
	if page != ClampPage(page, p.descriptor.TotalPages) {
		return ErrOutOfRange
	}
	p.moveTo(page)
	return nil
}

func (p *ServerPaged) SetPerPage(perPage int) error {
	if perPage != ClampPerPage(perPage) {
		return ErrOutOfRange
	}
	p.descriptor.PerPage = perPage
	if p.onPerPage != nil {
		p.onPerPage(perPage)
	}
	return nil
}

func (p *ServerPaged) Prev() {
	p.moveTo(ClampPage(p.descriptor.CurrentPage-1, p.descriptor.TotalPages))
}

func (p *ServerPaged) Next() {
	p.moveTo(ClampPage(p.descriptor.CurrentPage+1, p.descriptor.TotalPages))
}

func (p *ServerPaged) moveTo(page int) {
	if page == p.descriptor.CurrentPage {
		return
	}
	p.descriptor.CurrentPage = page
	if p.onPage != nil {
		p.onPage(page)
	}
}

// ClientPaged pages over a fully loaded row set locally.
type ClientPaged struct {
	all     []map[string]interface{}
	page    int
	perPage int
}

// NewClientPaged wraps a complete row collection.
func NewClientPaged(rows []map[string]interface{}, perPage int) *ClientPaged {
	return &ClientPaged{all: rows, page: 1, perPage: ClampPerPage(perPage)}
}

func (p *ClientPaged) totalPages() int {
	if len(p.all) == 0 {
		return 1
	}
	return (len(p.all) + p.perPage - 1) / p.perPage
}

func (p *ClientPaged) Rows() []map[string]interface{} {
	start := (p.page - 1) * p.perPage
	if start >= len(p.all) {
		return nil
	}
	end := start + p.perPage
	if end > len(p.all) {
		end = len(p.all)
	}
	return p.all[start:end]
}

func (p *ClientPaged) Descriptor() models.Pagination {
	return models.Pagination{
		Total:       len(p.all),
		TotalPages:  p.totalPages(),
		CurrentPage: p.page,
		PerPage:     p.perPage,
	}
}

func (p *ClientPaged) SetPage(page int) error {
	if page != ClampPage(page, p.totalPages()) {
		return ErrOutOfRange
	}
	p.page = page
	return nil
}

func (p *ClientPaged) SetPerPage(perPage int) error {
	if perPage != ClampPerPage(perPage) {
		return ErrOutOfRange
	}
	p.perPage = perPage
	p.page = ClampPage(p.page, p.totalPages())
	return nil
}

func (p *ClientPaged) Prev() { p.page = ClampPage(p.page-1, p.totalPages()) }

func (p *ClientPaged) Next() { p.page = ClampPage(p.page+1, p.totalPages()) }
