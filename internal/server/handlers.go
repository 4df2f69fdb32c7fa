package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/effects"
	"github.com/Zachkp/folio/internal/page"
	"github.com/Zachkp/folio/internal/views"
)

const keepAlive = 15 * time.Second

func (s *Server) index(c *gin.Context) {
	p := s.views.Mount()
	c.Header("Cache-Control", "no-store")
	c.Render(http.StatusOK, views.Render{Node: views.Index(s.content, p.ID())})
}

// view resolves the :id parameter or answers 404.
func (s *Server) view(c *gin.Context) (*page.Page, bool) {
	p, err := s.views.Get(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "view not found")
		return nil, false
	}
	return p, true
}

// fail maps page errors onto responses.
func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, page.ErrViewNotFound), errors.Is(err, effects.ErrLoopClosed):
		c.String(http.StatusNotFound, "view not found")
	case errors.Is(err, page.ErrRecordNotFound):
		c.String(http.StatusNotFound, "not found")
	case errors.Is(err, page.ErrUnknownArea), errors.Is(err, effects.ErrUnknownField):
		c.String(http.StatusBadRequest, err.Error())
	default:
		s.log.Error("view request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.String(http.StatusInternalServerError, "internal error")
	}
}

// events streams the view's frames. Attaching starts the hero effects; the
// view is unmounted when the stream goes away. Unknown views get 204, which
// tells EventSource not to reconnect.
func (s *Server) events(c *gin.Context) {
	p, err := s.views.Get(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNoContent)
		return
	}
	if err := p.Attach(); err != nil {
		c.Status(http.StatusNoContent)
		return
	}
	defer func() {
		p.Detach()
		s.views.Unmount(p.ID())
	}()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ticker := time.NewTicker(keepAlive)
	defer ticker.Stop()

	ctx := c.Request.Context()
	for {
		for _, f := range p.Outbox().Drain() {
			c.SSEvent(string(f.Kind), f)
		}
		c.Writer.Flush()

		select {
		case <-ctx.Done():
			return
		case <-p.Done():
			return
		case <-p.Outbox().Ready():
		case <-ticker.C:
			if _, err := c.Writer.WriteString(": keep-alive\n\n"); err != nil {
				return
			}
		}
	}
}

// visible feeds a visibility ratio to a section. It answers 200 once the
// section is revealed so the browser can stop observing it.
func (s *Server) visible(c *gin.Context) {
	p, ok := s.view(c)
	if !ok {
		return
	}
	ratio, err := strconv.ParseFloat(c.PostForm("ratio"), 64)
	if err != nil {
		c.String(http.StatusBadRequest, "bad ratio")
		return
	}
	section := c.Param("section")
	if _, err := p.Reveal(section, ratio); err != nil {
		s.fail(c, err)
		return
	}
	revealed, err := p.Revealed(section)
	if err != nil {
		s.fail(c, err)
		return
	}
	if revealed {
		c.String(http.StatusOK, "revealed")
		return
	}
	c.Status(http.StatusNoContent)
}

// hover records mouseenter/mouseleave and renders the card's hover slot.
func (s *Server) hover(c *gin.Context) {
	p, ok := s.view(c)
	if !ok {
		return
	}
	area, key := c.PostForm("area"), c.PostForm("key")
	var enter bool
	switch c.PostForm("state") {
	case "enter", "mouseenter":
		enter = true
	case "leave", "mouseleave":
	default:
		c.String(http.StatusBadRequest, "bad state")
		return
	}

	hovered, err := p.Hover(area, key, enter)
	if err != nil {
		s.fail(c, err)
		return
	}

	switch area {
	case page.AreaProjects:
		c.Render(http.StatusOK, views.Render{Node: views.ProjectHover(hovered)})
	case page.AreaCertifications:
		c.Render(http.StatusOK, views.Render{Node: views.CertificateHover(hovered)})
	case page.AreaSkills:
		skill, found := s.skill(key)
		if !found {
			c.String(http.StatusNotFound, "not found")
			return
		}
		c.Render(http.StatusOK, views.Render{Node: views.SkillHover(skill, hovered)})
	}
}

func (s *Server) skill(key string) (content.Skill, bool) {
	for _, cat := range s.content.Skills {
		for _, sk := range cat.Skills {
			if sk.Key() == key {
				return sk, true
			}
		}
	}
	return content.Skill{}, false
}

// draft records one field of the contact form as it is typed.
func (s *Server) draft(c *gin.Context) {
	p, ok := s.view(c)
	if !ok {
		return
	}
	field := c.PostForm("field")
	value, has := c.GetPostForm("value")
	if !has {
		value = c.PostForm(field)
	}
	if err := p.UpdateDraft(field, value); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// submit starts a contact submission and renders the status block in its new
// state.
// A busy submission renders its current state unchanged.
func (s *Server) submit(c *gin.Context) {
	p, ok := s.view(c)
	if !ok {
		return
	}
	d := effects.Draft{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Message: c.PostForm("message"),
	}
	status, _, err := p.Submit(d)
	if err != nil && !errors.Is(err, effects.ErrSubmissionBusy) {
		s.fail(c, err)
		return
	}
	c.Render(http.StatusOK, views.Render{Node: views.ContactStatus(status)})
}

func (s *Server) openProject(c *gin.Context) {
	p, ok := s.view(c)
	if !ok {
		return
	}
	proj, err := p.OpenProject(c.Param("slug"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Render(http.StatusOK, views.Render{Node: views.ProjectModal(p.ID(), proj, true)})
}

func (s *Server) closeProject(c *gin.Context) {
	p, ok := s.view(c)
	if !ok {
		return
	}
	if err := p.CloseProject(); err != nil {
		s.fail(c, err)
		return
	}
	c.Render(http.StatusOK, views.Render{})
}

func (s *Server) openCertificate(c *gin.Context) {
	p, ok := s.view(c)
	if !ok {
		return
	}
	cert, err := p.OpenCertificate(c.Param("slug"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Render(http.StatusOK, views.Render{Node: views.CertificateModal(p.ID(), cert, true)})
}

func (s *Server) closeCertificate(c *gin.Context) {
	p, ok := s.view(c)
	if !ok {
		return
	}
	if err := p.CloseCertificate(); err != nil {
		s.fail(c, err)
		return
	}
	c.Render(http.StatusOK, views.Render{})
}
