package layout

import "html/template"

const (
	dashboardClass = "min-h-screen bg-gradient-to-br from-gray-900 to-gray-800"
	mainClass      = "flex-1 p-6 lg:p-8"
)

// Dashboard is the page chrome: Header on top, then Sidebar beside the
// content region.
type Dashboard struct {
	Header  *Header
	Sidebar *Sidebar
	// Content is page output forwarded into <main> as is.
	Content template.HTML
}

func NewDashboard(header *Header, sidebar *Sidebar, content template.HTML) *Dashboard {
	return &Dashboard{Header: header, Sidebar: sidebar, Content: content}
}

func (d *Dashboard) Class() string { return dashboardClass }

func (d *Dashboard) MainClass() string { return mainClass }
