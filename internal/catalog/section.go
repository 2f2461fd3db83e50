package catalog

import (
	"errors"
	"fmt"
)

// Section is a navigation section of the sidebar
type Section int

const (
	SectionInbox Section = iota
	SectionCatalog
	SectionProjects
)

// Sections lists every section in sidebar order
var Sections = []Section{SectionInbox, SectionCatalog, SectionProjects}

func (s Section) String() string {
	switch s {
	case SectionInbox:
		return "inbox"
	case SectionCatalog:
		return "catalog"
	case SectionProjects:
		return "projects"
	default:
		return fmt.Sprintf("section(%d)", int(s))
	}
}

// Title returns the heading shown above the list
func (s Section) Title() string {
	switch s {
	case SectionInbox:
		return "Входящие"
	case SectionCatalog:
		return "Каталог идей"
	case SectionProjects:
		return "Проекты"
	default:
		return ""
	}
}

// Label returns the sidebar label
func (s Section) Label() string {
	if s == SectionCatalog {
		return "Каталог"
	}
	return s.Title()
}

var ErrUnknownSection = errors.New("неизвестный раздел")

// ParseSection parses inbox, catalog or projects
func ParseSection(name string) (Section, error) {
	for _, s := range Sections {
		if s.String() == name {
			return s, nil
		}
	}
	return SectionCatalog, fmt.Errorf("%w: %q (inbox|catalog|projects)", ErrUnknownSection, name)
}
