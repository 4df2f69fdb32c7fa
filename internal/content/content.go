// Package content defines the portfolio's display records. Everything here is
// read-only data: the page renders it, nothing mutates it.
package content

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/Zachkp/folio/internal/effects"
)

// ErrInvalidContent wraps every validation failure.
var ErrInvalidContent = errors.New("invalid content")

// Sections lists the page sections that reveal on scroll, in page order.
var Sections = []string{"about", "skills", "projects", "certifications", "contact"}

// Link is a labelled external URL.
type Link struct {
	Label string `koanf:"label"`
	URL   string `koanf:"url"`
}

// Profile is the hero and footer identity.
type Profile struct {
	Name       string `koanf:"name"`
	Title      string `koanf:"title"`
	Headline   string `koanf:"headline"`
	Tagline    string `koanf:"tagline"`
	Location   string `koanf:"location"`
	Bio        string `koanf:"bio"`
	Photo      string `koanf:"photo"`
	Resume     string `koanf:"resume"`
	ResumeName string `koanf:"resume_name"`
	Available  string `koanf:"available"`
	Socials    []Link `koanf:"socials"`
}

// Highlight is a hero credential badge.
type Highlight struct {
	Label    string `koanf:"label"`
	Sublabel string `koanf:"sublabel"`
}

// Stat is an About statistic. Value is the raw display target, e.g. "7.4".
type Stat struct {
	Label string `koanf:"label"`
	Value string `koanf:"value"`
}

// Target parses the statistic's count-up target.
func (s Stat) Target() (effects.Target, error) {
	return effects.ParseTarget(s.Value)
}

// Education is one entry of the education timeline.
type Education struct {
	Title       string `koanf:"title"`
	Institution string `koanf:"institution"`
	Period      string `koanf:"period"`
	Score       string `koanf:"score"`
}

// Skill is a named proficiency from 0 to 100.
type Skill struct {
	Name  string `koanf:"name"`
	Level int    `koanf:"level"`
}

// Key identifies the skill on the page.
func (s Skill) Key() string { return Slugify(s.Name) }

// SkillCategory groups skills under a heading.
type SkillCategory struct {
	Title  string  `koanf:"title"`
	Skills []Skill `koanf:"skills"`
}

// Metric is a headline number shown in a project overlay.
type Metric struct {
	Value string `koanf:"value"`
	Label string `koanf:"label"`
}

// Project is a portfolio project card and its overlay.
type Project struct {
	Slug            string   `koanf:"slug"`
	Title           string   `koanf:"title"`
	Category        string   `koanf:"category"`
	Description     string   `koanf:"description"`
	FullDescription string   `koanf:"full_description"`
	Impact          string   `koanf:"impact"`
	Tech            []string `koanf:"tech"`
	Features        []string `koanf:"features"`
	Implementation  []string `koanf:"implementation"`
	Metrics         []Metric `koanf:"metrics"`
	Links           []Link   `koanf:"links"`
}

// Certificate is a certification or award card and its overlay.
type Certificate struct {
	Slug         string   `koanf:"slug"`
	Title        string   `koanf:"title"`
	Organization string   `koanf:"organization"`
	Date         string   `koanf:"date"`
	Type         string   `koanf:"type"`
	Description  string   `koanf:"description"`
	CredentialID string   `koanf:"credential_id"`
	Image        string   `koanf:"image"`
	Skills       []string `koanf:"skills"`
	Links        []Link   `koanf:"links"`
}

// Contact is the contact section's static details.
type Contact struct {
	Intro    string `koanf:"intro"`
	Email    string `koanf:"email"`
	Phone    string `koanf:"phone"`
	Location string `koanf:"location"`
}

// Content is everything the page shows.
type Content struct {
	Profile      Profile         `koanf:"profile"`
	Highlights   []Highlight     `koanf:"highlights"`
	Stats        []Stat          `koanf:"stats"`
	Education    []Education     `koanf:"education"`
	Skills       []SkillCategory `koanf:"skills"`
	Projects     []Project       `koanf:"projects"`
	Certificates []Certificate   `koanf:"certificates"`
	Contact      Contact         `koanf:"contact"`
}

// Project looks a project up by slug.
func (c *Content) Project(slug string) (Project, bool) {
	for _, p := range c.Projects {
		if p.Slug == slug {
			return p, true
		}
	}
	return Project{}, false
}

// Certificate looks a certificate up by slug.
func (c *Content) Certificate(slug string) (Certificate, bool) {
	for _, cert := range c.Certificates {
		if cert.Slug == slug {
			return cert, true
		}
	}
	return Certificate{}, false
}

// Validate checks the invariants the page relies on.
func (c *Content) Validate() error {
	if strings.TrimSpace(c.Profile.Name) == "" {
		return errors.Wrap(ErrInvalidContent, "profile name is empty")
	}
	if strings.TrimSpace(c.Profile.Headline) == "" {
		return errors.Wrap(ErrInvalidContent, "profile headline is empty")
	}
	for _, s := range c.Stats {
		if _, err := s.Target(); err != nil {
			return errors.Wrapf(ErrInvalidContent, "stat %q: %v", s.Label, err)
		}
	}
	for _, cat := range c.Skills {
		for _, s := range cat.Skills {
			if s.Level < 0 || s.Level > 100 {
				return errors.Wrapf(ErrInvalidContent, "skill %q level %d out of range", s.Name, s.Level)
			}
		}
	}

	seen := make(map[string]bool)
	for _, p := range c.Projects {
		if p.Slug == "" || seen[p.Slug] {
			return errors.Wrapf(ErrInvalidContent, "project %q needs a unique slug", p.Title)
		}
		seen[p.Slug] = true
	}
	seen = make(map[string]bool)
	for _, cert := range c.Certificates {
		if cert.Slug == "" || seen[cert.Slug] {
			return errors.Wrapf(ErrInvalidContent, "certificate %q needs a unique slug", cert.Title)
		}
		seen[cert.Slug] = true
	}
	return nil
}

// Slugify lowercases s and joins its letters and digits with dashes.
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}
