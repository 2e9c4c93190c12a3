package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/alumnet/admin-gateway/internal/middleware"
	"github.com/alumnet/admin-gateway/internal/repository"
	"github.com/alumnet/admin-gateway/internal/session"
)

// Router bundles every handler and the route-level middleware inputs.
type Router struct {
	Auth      *AuthHandler
	Dashboard *DashboardHandler
	Analytics *AnalyticsHandler
	Alumni    *AlumniHandler
	Users     *UserHandler
	Events    *EventHandler
	Jobs      *JobHandler
	Referrals *ReferralHandler
	Contacts  *ContactHandler
	Views     *ViewStateHandler
	Exports   *ExportHandler
	Metrics   *MetricsHandler

	Sessions   *session.Store
	CookieName string
	Audit      *repository.AuditRepository
}

// Register wires every route onto the engine.
func (rt *Router) Register(r *gin.Engine) {
	r.GET("/health", rt.Metrics.Health)
	r.GET("/ready", rt.Metrics.Health)
	r.GET("/metrics", rt.Metrics.Prometheus)

	api := r.Group("/api")
	api.POST("/auth/login", rt.Auth.Login)
	api.POST("/auth/logout", rt.Auth.Logout)

	secured := api.Group("", middleware.RequireSession(rt.Sessions, rt.CookieName))
	secured.GET("/auth/me", rt.Auth.Me)

	secured.GET("/admin/dashboard", rt.Dashboard.Summary)
	for _, resource := range []string{"alumni", "users", "events", "jobs", "referrals", "contacts"} {
		secured.GET("/admin/"+resource+"-analytics", rt.Analytics.ForResource(resource))
	}

	secured.GET("/alumni", rt.Alumni.List)
	secured.PUT("/alumni/:id", rt.audited("update", "alumni"), rt.Alumni.SetVerified)
	secured.DELETE("/alumni/:id", rt.audited("delete", "alumni"), rt.Alumni.Delete)

	secured.GET("/users", rt.Users.List)
	secured.PUT("/users/:id", rt.audited("update", "users"), rt.Users.Update)
	secured.DELETE("/users/:id", rt.audited("delete", "users"), rt.Users.Delete)

	secured.GET("/events", rt.Events.List)
	secured.POST("/events", rt.audited("create", "events"), rt.Events.Create)
	secured.PUT("/events/:id", rt.audited("update", "events"), rt.Events.Update)
	secured.DELETE("/events/:id", rt.audited("delete", "events"), rt.Events.Delete)

	secured.GET("/jobs", rt.Jobs.List)
	secured.POST("/jobs", rt.audited("create", "jobs"), rt.Jobs.Create)
	secured.PUT("/jobs/:id", rt.audited("update", "jobs"), rt.Jobs.Update)
	secured.DELETE("/jobs/:id", rt.audited("delete", "jobs"), rt.Jobs.Delete)

	secured.GET("/referrals", rt.Referrals.List)
	secured.POST("/referrals", rt.audited("create", "referrals"), rt.Referrals.Create)
	secured.PUT("/referrals/:id", rt.audited("update", "referrals"), rt.Referrals.Update)
	secured.DELETE("/referrals/:id", rt.audited("delete", "referrals"), rt.Referrals.Delete)

	secured.GET("/contactus", rt.Contacts.List)
	secured.POST("/contactus", rt.audited("respond", "contacts"), rt.Contacts.Respond)

	secured.GET("/views/:resource/filters", rt.Views.Get)
	secured.PUT("/views/:resource/filters", rt.Views.Stage)
	secured.POST("/views/:resource/filters/apply", rt.Views.Apply)
	secured.POST("/views/:resource/filters/clear", rt.Views.Clear)

	secured.GET("/export/:resource", rt.Exports.Download)
}

func (rt *Router) audited(action, resource string) gin.HandlerFunc {
	return middleware.Audit(rt.Audit, action, resource)
}
