package web

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/newthinker/hypergluex/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var testSite = Site{
	Name:        "HyperGlueX",
	Subtitle:    "HyperLiquid Dashboard",
	Title:       "HyperGlueX - HyperLiquid Dashboard",
	Description: "Analytics and monitoring dashboard for HyperLiquid",
}

type fakeRecorder struct {
	mu          sync.Mutex
	pages       []string
	errors      []string
	transitions []string
	reloads     []bool
}

func (f *fakeRecorder) RecordPageRendered(page string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pages = append(f.pages, page)
}

func (f *fakeRecorder) RecordRenderError(page string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors = append(f.errors, page)
}

func (f *fakeRecorder) RecordSidebarTransition(from, to string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transitions = append(f.transitions, from+"->"+to)
}

func (f *fakeRecorder) RecordTemplateReload(ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reloads = append(f.reloads, ok)
}

// embeddedMapFS copies the embedded templates so tests can edit them.
func embeddedMapFS(t *testing.T) fstest.MapFS {
	t.Helper()
	mfs := fstest.MapFS{}
	entries, err := fs.ReadDir(TemplateFS(), ".")
	require.NoError(t, err)
	for _, e := range entries {
		data, err := fs.ReadFile(TemplateFS(), e.Name())
		require.NoError(t, err)
		mfs[e.Name()] = &fstest.MapFile{Data: data}
	}
	return mfs
}

func newTestHandler(t *testing.T, rec Recorder) *Handler {
	t.Helper()
	h, err := NewHandler(Options{Site: testSite, Recorder: rec})
	require.NoError(t, err)
	return h
}

func get(t *testing.T, h *Handler, target string) (*httptest.ResponseRecorder, *html.Node) {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	w := httptest.NewRecorder()
	h.Home(w, req)

	doc, err := html.Parse(strings.NewReader(w.Body.String()))
	require.NoError(t, err)
	return w, doc
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func byTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == tag }
}

func byAttr(key, val string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		v, ok := attr(n, key)
		return ok && v == val
	}
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

func one(t *testing.T, doc *html.Node, match func(*html.Node) bool) *html.Node {
	t.Helper()
	nodes := findAll(doc, match)
	require.Len(t, nodes, 1)
	return nodes[0]
}

func TestNewHandler_Embedded(t *testing.T) {
	h, err := NewHandler(Options{Site: testSite})
	require.NoError(t, err)
	assert.Len(t, h.pageTemplates, len(pages))
}

func TestNewHandler_MissingDir(t *testing.T) {
	_, err := NewHandler(Options{TemplatesDir: filepath.Join(t.TempDir(), "nope")})
	assert.True(t, errors.Is(err, core.ErrTemplateNotFound), "got %v", err)
}

func TestNewHandlerWithFS_MissingPage(t *testing.T) {
	mfs := embeddedMapFS(t)
	delete(mfs, "home.html")

	_, err := NewHandlerWithFS(mfs, Options{Site: testSite})
	assert.True(t, errors.Is(err, core.ErrTemplateNotFound), "got %v", err)
}

func TestHome_DocumentShell(t *testing.T) {
	w, doc := get(t, newTestHandler(t, nil), "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	htmlEl := one(t, doc, byTag("html"))
	lang, _ := attr(htmlEl, "lang")
	assert.Equal(t, "en", lang)

	assert.Equal(t, testSite.Title, text(one(t, doc, byTag("title"))))
	meta := one(t, doc, byAttr("name", "description"))
	content, _ := attr(meta, "content")
	assert.Equal(t, testSite.Description, content)
}

func TestHome_Header(t *testing.T) {
	_, doc := get(t, newTestHandler(t, nil), "/")

	header := one(t, doc, byAttr("data-chrome", "header"))
	class, _ := attr(header, "class")
	assert.Contains(t, class, "sticky top-0 z-50")
	assert.Contains(t, text(header), "HyperGlueX")
	assert.Contains(t, text(header), "HyperLiquid Dashboard")

	var hrefs []string
	for _, a := range findAll(one(t, header, byTag("nav")), byTag("a")) {
		href, _ := attr(a, "href")
		hrefs = append(hrefs, href)
	}
	assert.Equal(t, []string{"#portfolio", "#markets", "#trading"}, hrefs)

	wallet := one(t, header, byTag("button"))
	assert.Equal(t, "Connect Wallet", text(wallet))
	_, disabled := attr(wallet, "disabled")
	assert.False(t, disabled)
}

func TestHome_SidebarInitiallyOpen(t *testing.T) {
	rec := &fakeRecorder{}
	_, doc := get(t, newTestHandler(t, rec), "/")

	panel := one(t, doc, byAttr("data-sidebar", "panel"))
	state, _ := attr(panel, "data-state")
	assert.Equal(t, "open", state)

	overlay := one(t, doc, byAttr("data-sidebar", "overlay"))
	overlayHref, _ := attr(overlay, "href")
	assert.Equal(t, "?sidebar=closed", overlayHref)

	toggle := one(t, doc, byAttr("data-sidebar", "toggle"))
	assert.Equal(t, "✕", text(toggle))
	toggleHref, _ := attr(toggle, "href")
	assert.Equal(t, "?sidebar=closed", toggleHref)

	assert.Empty(t, rec.transitions, "initial render applies no transition")
}

func TestHome_SidebarClosed(t *testing.T) {
	rec := &fakeRecorder{}
	_, doc := get(t, newTestHandler(t, rec), "/?sidebar=closed")

	panel := one(t, doc, byAttr("data-sidebar", "panel"))
	state, _ := attr(panel, "data-state")
	assert.Equal(t, "closed", state)
	class, _ := attr(panel, "class")
	assert.Contains(t, class, "-translate-x-full lg:translate-x-0")

	assert.Empty(t, findAll(doc, byAttr("data-sidebar", "overlay")))

	toggle := one(t, doc, byAttr("data-sidebar", "toggle"))
	assert.Equal(t, "☰", text(toggle))
	toggleHref, _ := attr(toggle, "href")
	assert.Equal(t, "?sidebar=open", toggleHref)

	assert.Equal(t, []string{"open->closed"}, rec.transitions)
}

func TestHome_UnknownSidebarValueRendersOpen(t *testing.T) {
	_, doc := get(t, newTestHandler(t, nil), "/?sidebar=sideways")

	panel := one(t, doc, byAttr("data-sidebar", "panel"))
	state, _ := attr(panel, "data-state")
	assert.Equal(t, "open", state)
	assert.Len(t, findAll(doc, byAttr("data-sidebar", "overlay")), 1)
}

func TestHome_SidebarItems(t *testing.T) {
	_, doc := get(t, newTestHandler(t, nil), "/")

	panel := one(t, doc, byAttr("data-sidebar", "panel"))
	items := findAll(panel, byTag("a"))
	require.Len(t, items, 10)

	var active []string
	for _, a := range items {
		label := text(a)
		href, _ := attr(a, "href")
		assert.Equal(t, "#"+strings.ToLower(label), href)

		class, _ := attr(a, "class")
		if _, ok := attr(a, "aria-current"); ok {
			active = append(active, label)
			assert.Contains(t, class, "bg-primary-600 text-white")
		} else {
			assert.Contains(t, class, "text-gray-300 hover:bg-gray-800 hover:text-white")
		}
	}
	assert.Equal(t, []string{"Dashboard"}, active)

	var sections []string
	for _, h3 := range findAll(panel, byTag("h3")) {
		sections = append(sections, text(h3))
	}
	assert.Equal(t, []string{"Overview", "Trading", "Portfolio", "Settings"}, sections)
}

func TestHome_Panels(t *testing.T) {
	_, doc := get(t, newTestHandler(t, nil), "/")

	mainEl := one(t, doc, byTag("main"))
	panels := findAll(mainEl, func(n *html.Node) bool {
		_, ok := attr(n, "data-panel")
		return ok
	})
	require.Len(t, panels, 3)

	var titles []string
	for _, p := range panels {
		h2 := one(t, p, byTag("h2"))
		titles = append(titles, text(h2))
		h2Class, _ := attr(h2, "class")
		assert.Equal(t, "text-2xl font-semibold text-white mb-2", h2Class)
		class, _ := attr(p, "class")
		assert.Contains(t, class, "hover:border-gray-600 transition-colors")
	}
	assert.Equal(t, []string{"Portfolio", "Markets", "Trading"}, titles)

	assert.Contains(t, text(panels[0]), "$0.00")
	assert.Contains(t, text(panels[1]), "↑ Markets Active")
	assert.Contains(t, text(panels[2]), "Connect wallet to start")
	assert.Equal(t, "Dashboard", text(one(t, mainEl, byTag("h1"))))
}

func TestHome_Breakpoint(t *testing.T) {
	h, err := NewHandler(Options{Site: testSite, Breakpoint: "md"})
	require.NoError(t, err)

	_, doc := get(t, h, "/")
	overlay := one(t, doc, byAttr("data-sidebar", "overlay"))
	class, _ := attr(overlay, "class")
	assert.Contains(t, class, "md:hidden")
}

func TestRenderHome_RecordsPage(t *testing.T) {
	rec := &fakeRecorder{}
	h := newTestHandler(t, rec)

	var sb strings.Builder
	require.NoError(t, h.RenderHome(&sb, "open"))
	assert.Equal(t, []string{"home"}, rec.pages)
	assert.True(t, strings.HasPrefix(sb.String(), "<!DOCTYPE html>"))
}

func TestHome_RenderErrorReturns500(t *testing.T) {
	mfs := embeddedMapFS(t)
	mfs["home.html"] = &fstest.MapFile{Data: []byte(`{{define "content"}}{{.Missing}}{{end}}`)}

	rec := &fakeRecorder{}
	h, err := NewHandlerWithFS(mfs, Options{Site: testSite, Recorder: rec})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	h.Home(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "<!DOCTYPE html>")
	assert.Equal(t, []string{"home"}, rec.errors)
	assert.Empty(t, rec.pages)
}

func TestReload(t *testing.T) {
	mfs := embeddedMapFS(t)
	h, err := NewHandlerWithFS(mfs, Options{Site: testSite})
	require.NoError(t, err)

	mfs["home.html"] = &fstest.MapFile{Data: []byte(`{{define "content"}}<p id="reloaded">v2</p>{{end}}`)}
	require.NoError(t, h.Reload())

	_, doc := get(t, h, "/")
	assert.Equal(t, "v2", text(one(t, doc, byAttr("id", "reloaded"))))
}

func TestReload_KeepsPreviousOnError(t *testing.T) {
	mfs := embeddedMapFS(t)
	h, err := NewHandlerWithFS(mfs, Options{Site: testSite})
	require.NoError(t, err)

	mfs["home.html"] = &fstest.MapFile{Data: []byte(`{{define "content"}}{{if}}{{end}}`)}
	assert.Error(t, h.Reload())

	w, _ := get(t, h, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Connect wallet to start")
}

func TestWatch_RequiresDir(t *testing.T) {
	h := newTestHandler(t, nil)
	err := h.Watch(context.Background())
	assert.True(t, errors.Is(err, core.ErrConfigMissing), "got %v", err)
}

func TestWatch_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	for name, f := range embeddedMapFS(t) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), f.Data, 0o644))
	}

	rec := &fakeRecorder{}
	h, err := NewHandler(Options{TemplatesDir: dir, Site: testSite, Recorder: rec})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.Watch(ctx) }()
	defer func() {
		cancel()
		assert.NoError(t, <-done)
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	updated := []byte(`{{define "content"}}<p id="watched">fresh</p>{{end}}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "home.html"), updated, 0o644))

	assert.Eventually(t, func() bool {
		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()
		h.Home(w, req)
		return strings.Contains(w.Body.String(), `id="watched"`)
	}, 5*time.Second, 50*time.Millisecond)
}
