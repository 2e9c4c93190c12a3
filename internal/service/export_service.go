package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alumnet/admin-gateway/internal/listing"
	"github.com/alumnet/admin-gateway/internal/models"
	"github.com/alumnet/admin-gateway/internal/upstream"
	appErrors "github.com/alumnet/admin-gateway/pkg/errors"
)

// exportPaths maps exportable resources to their upstream list endpoints.
var exportPaths = map[string]string{
	"alumni":    "/alumni-details",
	"users":     "/users",
	"events":    "/events",
	"jobs":      "/jobs",
	"referrals": "/referrals",
	"contacts":  "/contactus",
}

// ExportResult is a rendered report ready for download.
type ExportResult struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportService builds downloadable reports over the upstream list
// endpoints. Scope "current" exports exactly one page; scope "all" walks
// the upstream pagination and is bounded by maxRows.
type ExportService struct {
	client    *upstream.Client
	maxRows   int
	fetchSize int
	logger    *zap.Logger
}

// NewExportService constructs the service. fetchSize is the page size used
// while walking upstream pagination for full exports.
func NewExportService(client *upstream.Client, maxRows, fetchSize int, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if fetchSize < listing.MinPerPage || fetchSize > listing.MaxPerPage {
		fetchSize = listing.MaxPerPage
	}
	return &ExportService{client: client, maxRows: maxRows, fetchSize: fetchSize, logger: logger}
}

// Export renders a report for one resource.
func (s *ExportService) Export(ctx context.Context, token, resource, rawFormat, rawScope string, q models.ListQuery) (*ExportResult, error) {
	path, ok := exportPaths[resource]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown resource")
	}
	format, err := listing.ParseFormat(rawFormat)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	scope, err := listing.ParseScope(rawScope)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}

	var rows []map[string]interface{}
	if scope == listing.ScopeCurrent {
		res, err := s.client.Get(ctx, path, token, q.Values())
		if err != nil {
			return nil, err
		}
		if !res.OK() {
			return nil, appErrors.Upstream(res.Status, res.Message("Failed to fetch export data"))
		}
		rows, _, _ = decodeListBody(res.Body)
	}

	report := listing.NewReport(resource, rows, s.fetchAllFunc(path, token, q), s.maxRows)
	body, err := report.Generate(ctx, scope, format)
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		Filename:    fmt.Sprintf("%s-report-%s.%s", resource, uuid.NewString(), format),
		ContentType: format.ContentType(),
		Body:        body,
	}, nil
}

// fetchAllFunc walks every upstream page for the filtered result set. The
// search and filter values carry over; only page and limit are replaced.
func (s *ExportService) fetchAllFunc(path, token string, q models.ListQuery) listing.FetchAllFunc {
	return func(ctx context.Context) ([]map[string]interface{}, error) {
		all := make([]map[string]interface{}, 0, s.fetchSize)
		for page := 1; ; page++ {
			pageQuery := q
			pageQuery.Page = strconv.Itoa(page)
			pageQuery.Limit = strconv.Itoa(s.fetchSize)

			res, err := s.client.Get(ctx, path, token, pageQuery.Values())
			if err != nil {
				return nil, err
			}
			if !res.OK() {
				return nil, appErrors.Upstream(res.Status, res.Message("Failed to fetch export data"))
			}

			rows, pg, ok := decodeListBody(res.Body)
			if !ok {
				return nil, appErrors.Clone(appErrors.ErrInternal, "unexpected list response shape")
			}
			all = append(all, rows...)

			if s.maxRows > 0 && len(all) > s.maxRows {
				return nil, appErrors.Clone(appErrors.ErrExportTooLarge,
					fmt.Sprintf("export exceeds the ceiling of %d rows", s.maxRows))
			}
			if pg == nil || page >= pg.TotalPages || len(rows) == 0 {
				return all, nil
			}
		}
	}
}

// decodeListBody extracts the row collection and pagination descriptor from
// an upstream list response. The backend wraps collections differently per
// resource (a bare array, a {data: [...]} envelope, or a keyed object such
// as {users: [...], pagination: {...}}), so this probes in that order.
func decodeListBody(body []byte) ([]map[string]interface{}, *models.Pagination, bool) {
	var direct []map[string]interface{}
	if err := json.Unmarshal(body, &direct); err == nil {
		return direct, nil, true
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, nil, false
	}

	var pg *models.Pagination
	if raw, ok := wrapped["pagination"]; ok {
		var decoded models.Pagination
		if err := json.Unmarshal(raw, &decoded); err == nil {
			pg = &decoded
		}
	}

	if raw, ok := wrapped["data"]; ok {
		var rows []map[string]interface{}
		if err := json.Unmarshal(raw, &rows); err == nil {
			return rows, pg, true
		}
		// data may itself be an envelope around the collection
		inner, innerPg, ok := decodeListBody(raw)
		if ok {
			if innerPg == nil {
				innerPg = pg
			}
			return inner, innerPg, true
		}
	}

	for key, raw := range wrapped {
		if key == "pagination" || key == "meta" {
			continue
		}
		var rows []map[string]interface{}
		if err := json.Unmarshal(raw, &rows); err == nil {
			return rows, pg, true
		}
	}
	return nil, pg, false
}
