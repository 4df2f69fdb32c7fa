package server

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/views"
)

const (
	adminCookie     = "admin_token"
	adminCookieAge  = 24 * time.Hour
	dashboardInbox  = 10
	messagesPerPage = 200
)

// adminAuth holds the per-process session token and the salt used to hash
// client addresses. Both change on every restart.
type adminAuth struct {
	username string
	password string
	token    string
	salt     string
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "read random")
	}
	return hex.EncodeToString(b), nil
}

func newAdminAuth(cfg *config.Config) (*adminAuth, error) {
	token, err := randomToken()
	if err != nil {
		return nil, err
	}
	salt, err := randomToken()
	if err != nil {
		return nil, err
	}
	a := &adminAuth{token: token, salt: salt}
	if cfg.AdminEnabled() {
		a.username, a.password = cfg.AdminUsername, cfg.AdminPassword
	}
	return a, nil
}

// hashIP is stable for one address within one process.
func (a *adminAuth) hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + a.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func (a *adminAuth) enabled() bool {
	return a.password != ""
}

func (a *adminAuth) check(username, password string) bool {
	if !a.enabled() {
		return false
	}
	u := subtle.ConstantTimeCompare([]byte(username), []byte(a.username))
	p := subtle.ConstantTimeCompare([]byte(password), []byte(a.password))
	return u&p == 1
}

func (a *adminAuth) valid(token string) bool {
	return subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) == 1
}

func (s *Server) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || !s.admin.valid(token) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) adminRoutes(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.Render(http.StatusOK, views.Render{Node: views.AdminLogin("")})
	})
	r.POST("/admin/login", s.adminLogin)
	r.GET("/admin/logout", s.adminLogout)

	g := r.Group("/admin", s.requireAdmin())
	g.GET("/dashboard", s.adminDashboard)
	g.GET("/api/stats", s.adminStats)
	g.GET("/messages", s.adminMessages)
	g.GET("/export/stats", s.adminExport)
	g.POST("/privacy/prune", s.adminPrune)
}

func (s *Server) adminLogin(c *gin.Context) {
	client := s.admin.hashIP(c.ClientIP())
	if !s.admin.enabled() {
		s.log.Warn("admin login attempted while disabled", zap.String("client", client))
		c.Render(http.StatusForbidden, views.Render{Node: views.AdminLogin("Admin access is disabled")})
		return
	}
	if !s.admin.check(c.PostForm("username"), c.PostForm("password")) {
		s.log.Warn("failed admin login", zap.String("client", client))
		c.Render(http.StatusUnauthorized, views.Render{Node: views.AdminLogin("Invalid credentials")})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(adminCookie, s.admin.token, int(adminCookieAge.Seconds()), "/admin", "", c.Request.TLS != nil, true)
	s.log.Info("admin login", zap.String("client", client))
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (s *Server) adminLogout(c *gin.Context) {
	c.SetCookie(adminCookie, "", -1, "/admin", "", c.Request.TLS != nil, true)
	s.log.Info("admin logout", zap.String("client", s.admin.hashIP(c.ClientIP())))
	c.Redirect(http.StatusFound, "/admin/login")
}

func (s *Server) adminDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	stats, err := s.store.Stats(ctx)
	if err != nil {
		s.log.Error("load admin stats", zap.Error(err))
		c.Render(http.StatusInternalServerError, views.Render{Node: views.ErrorPage(http.StatusInternalServerError, "Failed to load statistics")})
		return
	}
	msgs, err := s.store.Messages(ctx, dashboardInbox)
	if err != nil {
		s.log.Error("load messages", zap.Error(err))
		c.Render(http.StatusInternalServerError, views.Render{Node: views.ErrorPage(http.StatusInternalServerError, "Failed to load messages")})
		return
	}
	c.Render(http.StatusOK, views.Render{Node: views.AdminDashboard(stats, msgs)})
}

func (s *Server) adminStats(c *gin.Context) {
	stats, err := s.store.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"stats":        stats,
		"active_views": s.views.Len(),
	})
}

func (s *Server) adminMessages(c *gin.Context) {
	msgs, err := s.store.Messages(c.Request.Context(), messagesPerPage)
	if err != nil {
		s.log.Error("load messages", zap.Error(err))
		c.Render(http.StatusInternalServerError, views.Render{Node: views.ErrorPage(http.StatusInternalServerError, "Failed to load messages")})
		return
	}
	c.Render(http.StatusOK, views.Render{Node: views.AdminMessages(msgs)})
}

func (s *Server) adminExport(c *gin.Context) {
	stats, err := s.store.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
	s.log.Info("admin stats exported", zap.String("client", s.admin.hashIP(c.ClientIP())))
	c.JSON(http.StatusOK, stats)
}

func (s *Server) adminPrune(c *gin.Context) {
	n, err := s.store.PruneVisits(c.Request.Context(), s.cfg.VisitorRetention)
	if err != nil {
		s.log.Error("prune visits", zap.Error(err))
		c.Render(http.StatusInternalServerError, views.Render{Node: views.ErrorPage(http.StatusInternalServerError, "Failed to prune visitor data")})
		return
	}
	s.log.Info("visitor data pruned", zap.Int64("rows", n))
	c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}
