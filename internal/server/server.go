// Package server exposes the portfolio over HTTP: the page, the per-view
// frame stream and the htmx endpoints that feed each view's effects, plus the
// privacy-conscious visitor log and its admin pages.
package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/page"
	"github.com/Zachkp/folio/internal/store"
	"github.com/Zachkp/folio/internal/views"
	"github.com/Zachkp/folio/pkg/logger"
	"github.com/Zachkp/folio/pkg/metrics"
)

const shutdownTimeout = 10 * time.Second

// Server owns the gin engine and everything its handlers touch.
type Server struct {
	cfg     *config.Config
	content *content.Content
	views   *page.Registry
	store   *store.Store
	metrics *metrics.Manager
	log     *zap.Logger

	engine  *gin.Engine
	limiter *ipLimiter
	admin   *adminAuth

	// tracking counts visitor writes still in flight.
	tracking sync.WaitGroup
}

// New wires the routes. metrics may be nil.
func New(cfg *config.Config, c *content.Content, reg *page.Registry, st *store.Store, m *metrics.Manager, log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}
	admin, err := newAdminAuth(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "admin auth")
	}

	s := &Server{
		cfg:     cfg,
		content: c,
		views:   reg,
		store:   st,
		metrics: m,
		log:     log,
		limiter: newIPLimiter(cfg.ContactRate, cfg.ContactBurst),
		admin:   admin,
	}
	s.engine = s.routes()
	return s, nil
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		logger.GinMiddleware(s.log),
		s.metrics.Middleware(),
		secureHeaders(),
		s.trackVisits(),
	)

	r.GET("/", s.index)

	v := r.Group("/views/:id")
	v.GET("/events", s.events)
	v.POST("/sections/:section/visible", s.visible)
	v.POST("/hover", s.hover)
	v.POST("/contact/draft", s.draft)
	v.POST("/contact", s.limitContact(), s.submit)
	v.GET("/projects/:slug", s.openProject)
	v.DELETE("/projects", s.closeProject)
	v.GET("/certificates/:slug", s.openCertificate)
	v.DELETE("/certificates", s.closeCertificate)

	r.GET("/static/*filepath", s.static)
	r.Static("/images", s.cfg.ImagesDir)

	r.GET("/healthz", s.healthz)
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	r.GET("/privacy", s.privacy)

	s.adminRoutes(r)

	r.NoRoute(func(c *gin.Context) {
		c.Render(http.StatusNotFound, views.Render{Node: views.ErrorPage(http.StatusNotFound, "Page not found")})
	})
	return r
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"views":  s.views.Len(),
	})
}

func (s *Server) privacy(c *gin.Context) {
	days := int(s.cfg.VisitorRetention / (24 * time.Hour))
	c.Render(http.StatusOK, views.Render{Node: views.Privacy(days)})
}

// Run serves until ctx is done, then drains requests and pending visitor
// writes.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.limiter.janitor(ctx, time.Minute)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", s.cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return errors.Wrap(err, "listen")
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	// Streams only end when their views do.
	s.views.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	s.tracking.Wait()
	return errors.Wrap(err, "shutdown")
}
