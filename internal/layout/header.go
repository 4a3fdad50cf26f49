package layout

import "github.com/newthinker/hypergluex/internal/ui"

const (
	headerClass  = "bg-gray-900 border-b border-gray-800 sticky top-0 z-50"
	navLinkClass = "text-gray-300 hover:text-white transition-colors"
)

// Link is a header navigation anchor.
type Link struct {
	Label string
	Href  string
}

func (Link) Class() string { return navLinkClass }

var headerLinks = []Link{
	{Label: "Portfolio", Href: "#portfolio"},
	{Label: "Markets", Href: "#markets"},
	{Label: "Trading", Href: "#trading"},
}

// Header is the sticky top bar. It has no state.
type Header struct {
	Name     string
	Subtitle string
	Links    []Link
	// Wallet is a stub action with no handler attached.
	Wallet *ui.Button
}

func NewHeader(name, subtitle string) *Header {
	links := make([]Link, len(headerLinks))
	copy(links, headerLinks)

	return &Header{
		Name:     name,
		Subtitle: subtitle,
		Links:    links,
		Wallet:   ui.NewButton("Connect Wallet"),
	}
}

func (h *Header) Class() string { return headerClass }
