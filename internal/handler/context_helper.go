package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/alumnet/admin-gateway/internal/listing"
	"github.com/alumnet/admin-gateway/internal/middleware"
	"github.com/alumnet/admin-gateway/internal/models"
)

func sessionFromContext(c *gin.Context) *models.Session {
	value, exists := c.Get(middleware.ContextSessionKey)
	if !exists {
		return nil
	}
	sess, ok := value.(*models.Session)
	if !ok {
		return nil
	}
	return sess
}

func tokenFromContext(c *gin.Context) string {
	if sess := sessionFromContext(c); sess != nil {
		return sess.Token
	}
	return ""
}

// parseListQuery collects the forwardable query parameters, clamping page
// and limit into their valid ranges. Non-numeric values are dropped rather
// than forwarded.
func parseListQuery(c *gin.Context) models.ListQuery {
	q := models.ListQuery{
		Search:         strings.TrimSpace(c.Query("search")),
		Batch:          c.Query("batch"),
		Department:     c.Query("department"),
		Role:           c.Query("role"),
		Verified:       c.Query("verified"),
		Type:           c.Query("type"),
		WorkType:       c.Query("workType"),
		StartMonthYear: c.Query("startMonthYear"),
		EndMonthYear:   c.Query("endMonthYear"),
		StartDate:      c.Query("startDate"),
		EndDate:        c.Query("endDate"),
		DateField:      c.Query("dateField"),
		MinReferrals:   c.Query("minReferrals"),
		MaxReferrals:   c.Query("maxReferrals"),
		Resolved:       c.Query("resolved"),
	}
	if raw := c.Query("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			if page < 1 {
				page = 1
			}
			q.Page = strconv.Itoa(page)
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			q.Limit = strconv.Itoa(listing.ClampPerPage(limit))
		}
	}
	return q
}
