package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const sampleYAML = `
profile:
  name: Zach
  headline: Go developer building terminal tools
  socials:
    - label: GitHub
      url: https://github.com/Zachkp
stats:
  - label: Projects
    value: "4"
  - label: GPA
    value: "3.8"
skills:
  - title: Languages
    skills:
      - name: Go
        level: 90
projects:
  - slug: mail-tui
    title: Mail TUI
    tech: [Go, go-imap]
certificates:
  - slug: pm
    title: Project Management
`

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write content: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	Convey("Given the compiled-in content", t, func() {
		c := Default()

		Convey("Then it validates", func() {
			So(c.Validate(), ShouldBeNil)
		})

		Convey("Then every stat parses", func() {
			for _, s := range c.Stats {
				_, err := s.Target()
				So(err, ShouldBeNil)
			}
		})

		Convey("Then projects and certificates are found by slug", func() {
			p, ok := c.Project("smart-lock-uno")
			So(ok, ShouldBeTrue)
			So(p.Title, ShouldEqual, "Smart Lock Uno")

			_, ok = c.Project("missing")
			So(ok, ShouldBeFalse)

			cert, ok := c.Certificate("nasa-space-apps")
			So(ok, ShouldBeTrue)
			So(cert.Organization, ShouldEqual, "NASA")
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given content with a broken invariant", t, func() {
		c := Default()

		Convey("A duplicate project slug is rejected", func() {
			c.Projects = append(c.Projects, c.Projects[0])
			So(errors.Is(c.Validate(), ErrInvalidContent), ShouldBeTrue)
		})

		Convey("A skill level above 100 is rejected", func() {
			c.Skills[0].Skills[0].Level = 101
			So(errors.Is(c.Validate(), ErrInvalidContent), ShouldBeTrue)
		})

		Convey("A statistic without digits is rejected", func() {
			c.Stats[0].Value = "lots"
			So(errors.Is(c.Validate(), ErrInvalidContent), ShouldBeTrue)
		})

		Convey("An empty headline is rejected", func() {
			c.Profile.Headline = " "
			So(errors.Is(c.Validate(), ErrInvalidContent), ShouldBeTrue)
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given content files", t, func() {
		Convey("An empty path returns the defaults", func() {
			c, err := Load("")
			So(err, ShouldBeNil)
			So(c.Profile.Name, ShouldEqual, Default().Profile.Name)
		})

		Convey("A YAML file replaces the defaults", func() {
			c, err := Load(writeFile(t, sampleYAML))
			So(err, ShouldBeNil)
			So(c.Profile.Name, ShouldEqual, "Zach")
			So(c.Profile.Socials, ShouldResemble, []Link{{Label: "GitHub", URL: "https://github.com/Zachkp"}})
			So(c.Stats, ShouldHaveLength, 2)
			So(c.Stats[1].Value, ShouldEqual, "3.8")
			So(c.Skills[0].Skills[0], ShouldResemble, Skill{Name: "Go", Level: 90})
			So(c.Projects[0].Tech, ShouldResemble, []string{"Go", "go-imap"})
			So(c.Education, ShouldBeEmpty)
		})

		Convey("An invalid file is rejected", func() {
			_, err := Load(writeFile(t, "profile:\n  name: Zach\n"))
			So(errors.Is(err, ErrInvalidContent), ShouldBeTrue)
		})

		Convey("A missing file is an error", func() {
			_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSlugify(t *testing.T) {
	Convey("Slugify joins words with dashes", t, func() {
		So(Slugify("HTML/CSS"), ShouldEqual, "html-css")
		So(Slugify("  Git/GitHub "), ShouldEqual, "git-github")
		So(Slugify("Google Cloud APIs"), ShouldEqual, "google-cloud-apis")
		So(Slugify("C"), ShouldEqual, "c")
	})
}
