package page

import "strconv"

// DOM ids shared by the markup and the frames that update it.
const (
	HeroTypedID   = "hero-typed"
	HeroCursorID  = "hero-cursor"
	ContactID     = "contact-status"
	ContactFormID = "contact-panel"
	ProjectSlotID = "project-modal"
	CertSlotID    = "certificate-modal"

	// CursorHiddenClass hides the cursor between blinks.
	CursorHiddenClass = "opacity-0"
	// RevealClass animates a section in once it is visible.
	RevealClass = "animate-fade-in-up"
)

// Hover areas.
const (
	AreaProjects       = "projects"
	AreaSkills         = "skills"
	AreaCertifications = "certifications"
)

// StatID is the id of the i-th About statistic.
func StatID(i int) string {
	return "stat-" + strconv.Itoa(i)
}

// SectionID is the id of a revealable section.
func SectionID(section string) string {
	return section
}
