// Package navigation provides utilities for managing navigation state and breadcrumbs.
package navigation

// Sections of the admin area.
const (
	SectionAdmin = "admin"
)

// Pages of the admin area.
const (
	PageBackup = "backup"
)

// BreadcrumbItem represents a single breadcrumb link.
type BreadcrumbItem struct {
	Title  string
	URL    string
	Active bool
}

// Context represents the navigation context for a page.
type Context struct {
	ActiveSection string
	ActivePage    string
	Breadcrumbs   []BreadcrumbItem
	PageTitle     string
}

// NewContext creates a new navigation context.
func NewContext(pageTitle, activeSection, activePage string) *Context {
	return &Context{
		PageTitle:     pageTitle,
		ActiveSection: activeSection,
		ActivePage:    activePage,
		Breadcrumbs:   make([]BreadcrumbItem, 0),
	}
}

// Admin creates the context of an admin page with the Admin breadcrumb in front.
func Admin(pageTitle, page, url string) *Context {
	return NewContext(pageTitle, SectionAdmin, page).
		AddBreadcrumb("Admin", "", false).
		AddBreadcrumb(pageTitle, url, true)
}

// AddBreadcrumb adds a breadcrumb item to the context.
// Adding an active item marks all earlier items inactive.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	if active {
		for i := range c.Breadcrumbs {
			c.Breadcrumbs[i].Active = false
		}
	}

	c.Breadcrumbs = append(c.Breadcrumbs, BreadcrumbItem{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// IsActive checks if the given section and page match the current context.
func (c *Context) IsActive(section, page string) bool {
	return c.ActiveSection == section && c.ActivePage == page
}

// IsSectionActive checks if the given section is active.
func (c *Context) IsSectionActive(section string) bool {
	return c.ActiveSection == section
}
