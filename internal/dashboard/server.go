// Package dashboard serves the admin/consultancy web app: server-rendered
// pages over the REST resources, with all state living backend-side. Templates
// render declaratively from view models; no page mutates anything locally.
package dashboard

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Ayushs57139/jobportal-go/internal/api"
	"github.com/Ayushs57139/jobportal-go/internal/state"
)

//go:embed templates/*.html
var templateFS embed.FS

// Readiness check bounds: the dashboard refuses to start while the backend
// is unreachable, but only for so long.
const (
	readyAttempts = 10
	readyInterval = 2 * time.Second
)

// Server is the dashboard web app.
type Server struct {
	client *api.Client
	auth   *state.AuthStore
	engine *gin.Engine
}

// New wires the dashboard over the shared client and auth container.
func New(client *api.Client, auth *state.AuthStore) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("dashboard: parse templates: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.SetHTMLTemplate(tmpl)

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsCfg))

	s := &Server{client: client, auth: auth, engine: engine}
	s.routes()
	return s, nil
}

// WaitForAPI polls the backend health endpoint with a fixed interval and a
// fixed attempt cap. After the last failed attempt the dashboard is
// considered unable to load.
func (s *Server) WaitForAPI(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= readyAttempts; attempt++ {
		if err := s.client.Health(ctx); err == nil {
			slog.Info("dashboard: backend ready", slog.Int("attempt", attempt))
			return nil
		} else {
			lastErr = err
			slog.Debug("dashboard: backend not ready", slog.Int("attempt", attempt), slog.Any("error", err))
		}
		select {
		case <-time.After(readyInterval):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return fmt.Errorf("dashboard: failed to load: backend unreachable after %d attempts: %w", readyAttempts, lastErr)
}

// Run blocks serving the dashboard on addr.
func (s *Server) Run(addr string) error {
	slog.Info("dashboard: listening", slog.String("addr", addr))
	return s.engine.Run(addr)
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	admin := s.engine.Group("/", s.requireRole(api.UserAdmin, api.UserSuperadmin))
	{
		admin.GET("/", s.handleHome)
		admin.GET("/users", s.handleUsers)
		admin.POST("/users/:id/delete", s.handleDeleteUser)
		admin.GET("/jobs", s.handleJobs)
		admin.POST("/jobs/:id/status", s.handleJobStatus)
		admin.POST("/jobs/:id/delete", s.handleDeleteJob)
		admin.GET("/applications", s.handleApplications)
		admin.POST("/applications/:id/status", s.handleApplicationStatus)
		admin.GET("/team-limits", s.handleTeamLimits)
		admin.POST("/team-limits/:id", s.handleSetTeamLimit)
		admin.GET("/custom-fields", s.handleCustomFields)
		admin.POST("/custom-fields", s.handleCreateCustomField)
		admin.POST("/custom-fields/:id/delete", s.handleDeleteCustomField)
		admin.GET("/blogs", s.handleBlogs)
		admin.POST("/blogs", s.handleCreateBlog)
		admin.POST("/blogs/:id/delete", s.handleDeleteBlog)
		admin.GET("/verification", s.handleVerifications)
		admin.POST("/verification/:id", s.handleResolveVerification)
		admin.GET("/sales-enquiries", s.handleSalesEnquiries)
		admin.POST("/sales-enquiries/:id/status", s.handleSalesEnquiryStatus)
		admin.GET("/bulk/export/:type", s.handleBulkExport)
		admin.GET("/bulk/sample/:type", s.handleBulkSample)
		admin.POST("/bulk/import/:type", s.handleBulkImport)
	}

	consultancy := s.engine.Group("/consultancy", s.requireRole(api.UserEmployer, api.UserAdmin, api.UserSuperadmin))
	{
		consultancy.GET("", s.handleConsultancy)
		consultancy.GET("/my-jobs", s.handleMyJobs)
		consultancy.POST("/my-jobs/:id/delete", s.handleDeleteMyJob)
	}
}

// requireRole verifies the signed-in user's role before rendering a page.
// Defense in depth only: the backend rejects unauthorized requests anyway.
func (s *Server) requireRole(roles ...api.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := s.auth.State()
		if !st.Authenticated() {
			c.HTML(http.StatusUnauthorized, "error.html", gin.H{
				"Message": "You must log in before opening the dashboard.",
			})
			c.Abort()
			return
		}
		for _, role := range roles {
			if st.User.UserType == role {
				c.Next()
				return
			}
		}
		c.HTML(http.StatusForbidden, "error.html", gin.H{
			"Message": "Your account does not have access to this dashboard.",
		})
		c.Abort()
	}
}

// renderError shows the shared error page with the server's message.
func (s *Server) renderError(c *gin.Context, err error) {
	slog.Warn("dashboard: request failed", slog.String("path", c.Request.URL.Path), slog.Any("error", err))
	status := http.StatusBadGateway
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		status = apiErr.Status
	}
	c.HTML(status, "error.html", gin.H{
		"Message": api.ErrorMessage(err, "Cannot reach the server. Please try again."),
	})
}
