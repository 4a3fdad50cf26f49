package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"

	"github.com/newthinker/hypergluex/internal/core"
	"github.com/newthinker/hypergluex/internal/layout"
	"github.com/newthinker/hypergluex/internal/ui"
	"github.com/shopspring/decimal"
)

const pageHome = "home.html"

// panelTitleClass is a plain heading; CardTitle's text-xl base would clash
// with text-2xl.
const panelTitleClass = "text-2xl font-semibold text-white mb-2"

// Panel is one placeholder card on the home page.
type Panel struct {
	Key         string
	Title       string
	Description string
	Value       string

	Card    ui.Card
	Content ui.CardContent
}

func (Panel) TitleClass() string { return panelTitleClass }

func newPanel(title, description, value, valueClass string) Panel {
	return Panel{
		Key:         strings.ToLower(title),
		Title:       title,
		Description: description,
		Value:       value,
		Card:        ui.NewCard(ui.Hover(true)),
		Content:     ui.NewCardContent(ui.Merge("mt-4", valueClass)),
	}
}

// HomeData holds data for the home content template
type HomeData struct {
	Heading string
	Welcome string
	Panels  []Panel
}

// portfolioValue is a placeholder; no account data source exists.
var portfolioValue = decimal.Zero

// NewHomeData builds the fixed home page content.
func NewHomeData(site Site) HomeData {
	return HomeData{
		Heading: "Dashboard",
		Welcome: fmt.Sprintf("Welcome to %s - Your HyperLiquid trading companion", site.Name),
		Panels: []Panel{
			newPanel("Portfolio", "View your positions and portfolio performance",
				formatUSD(portfolioValue), "text-3xl font-bold text-primary-500"),
			newPanel("Markets", "Real-time market data and analytics",
				"↑ Markets Active", "text-sm text-green-500"),
			newPanel("Trading", "Execute trades and manage orders",
				"Connect wallet to start", "text-sm text-gray-500"),
		},
	}
}

// formatUSD renders d as dollars with two decimals, e.g. $1234.50 or -$3.00.
func formatUSD(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Abs().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// documentData feeds layout.html.
type documentData struct {
	Title       string
	Description string
	Dashboard   *layout.Dashboard
}

// Home renders the dashboard home page. The sidebar query parameter selects
// the state the page is rendered in; anything else renders it open.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	state := layout.StateOpen
	if st, ok := layout.ParseState(r.URL.Query().Get(layout.QueryParam)); ok {
		state = st
	}

	var buf bytes.Buffer
	err := h.RenderHome(&buf, state)
	h.write(w, "home", buf.Bytes(), err)
}

// RenderHome writes the complete home document with the sidebar in state.
func (h *Handler) RenderHome(w io.Writer, state layout.State) error {
	tmpl, err := h.lookup(pageHome)
	if err != nil {
		return err
	}

	sidebar := layout.NewSidebar(h.breakpoint, layout.WithObserver(h.observeSidebar))
	if err := sidebar.Restore(state); err != nil {
		return err
	}

	var content bytes.Buffer
	if err := tmpl.ExecuteTemplate(&content, "content", NewHomeData(h.site)); err != nil {
		return core.WrapError(core.ErrRenderFailed, err)
	}

	doc := documentData{
		Title:       h.site.Title,
		Description: h.site.Description,
		Dashboard: layout.NewDashboard(
			layout.NewHeader(h.site.Name, h.site.Subtitle),
			sidebar,
			template.HTML(content.String()),
		),
	}
	if err := tmpl.ExecuteTemplate(w, "layout.html", doc); err != nil {
		return core.WrapError(core.ErrRenderFailed, err)
	}

	if h.recorder != nil {
		h.recorder.RecordPageRendered("home")
	}
	return nil
}

func (h *Handler) observeSidebar(from, to layout.State) {
	if h.recorder != nil {
		h.recorder.RecordSidebarTransition(string(from), string(to))
	}
}
