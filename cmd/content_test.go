package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func runCommand(args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestContentCheck(t *testing.T) {
	Convey("Given the content check command", t, func() {
		Convey("The compiled-in content passes", func() {
			out, err := runCommand("content", "check")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "profile:      Anand Suresh")
			So(out, ShouldContainSubstring, "projects:     3")
		})

		Convey("A content file is loaded and summarised", func() {
			path := filepath.Join(t.TempDir(), "content.yaml")
			body := `profile:
  name: Grace
  headline: Compilers and more
projects:
  - slug: cobol
    title: COBOL
`
			So(os.WriteFile(path, []byte(body), 0o600), ShouldBeNil)

			out, err := runCommand("content", "check", path)
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "profile:      Grace")
			So(out, ShouldContainSubstring, "projects:     1")
		})

		Convey("Invalid content fails", func() {
			path := filepath.Join(t.TempDir(), "content.yaml")
			So(os.WriteFile(path, []byte("profile:\n  name: Grace\n"), 0o600), ShouldBeNil)

			_, err := runCommand("content", "check", path)
			So(err, ShouldNotBeNil)
		})
	})
}
