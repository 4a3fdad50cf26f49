// internal/api/handler/web/handler.go
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"sync"

	"github.com/newthinker/hypergluex/internal/core"
	"github.com/newthinker/hypergluex/internal/layout"
	"go.uber.org/zap"
)

//go:embed templates/*
var templateFS embed.FS

// sharedTemplates are parsed into every page: the document shell, the
// dashboard chrome and the primitive partials.
var sharedTemplates = []string{"layout.html", "chrome.html", "components.html"}

// pages lists the page templates (excluding the shared ones).
var pages = []string{pageHome}

// Site is the static branding and document metadata.
type Site struct {
	Name        string
	Subtitle    string
	Title       string
	Description string
}

// Recorder receives render telemetry. metrics.Registry implements it.
type Recorder interface {
	RecordPageRendered(page string)
	RecordRenderError(page string)
	RecordSidebarTransition(from, to string)
	RecordTemplateReload(ok bool)
}

// Options configures a Handler.
type Options struct {
	// TemplatesDir loads templates from disk; empty uses the embedded set.
	TemplatesDir string
	Site         Site
	Breakpoint   layout.Breakpoint
	Recorder     Recorder
	Logger       *zap.Logger
}

// Handler provides web UI handlers with template rendering
type Handler struct {
	fsys         fs.FS
	templatesDir string
	site         Site
	breakpoint   layout.Breakpoint
	recorder     Recorder
	logger       *zap.Logger

	// pageTemplates holds separate template instances for each page
	// Each instance contains the shared templates + the specific page template
	mu            sync.RWMutex
	pageTemplates map[string]*template.Template
}

// NewHandler creates a new web handler with templates loaded from
// opts.TemplatesDir, or from the embedded templates when it is empty.
func NewHandler(opts Options) (*Handler, error) {
	fsys := TemplateFS()
	if opts.TemplatesDir != "" {
		if _, err := os.Stat(opts.TemplatesDir); err != nil {
			return nil, core.WrapError(core.ErrTemplateNotFound, err)
		}
		fsys = os.DirFS(opts.TemplatesDir)
	}
	return newHandler(fsys, opts)
}

// NewHandlerWithFS creates a new web handler using a custom filesystem.
// This is useful for testing or custom template sources.
func NewHandlerWithFS(fsys fs.FS, opts Options) (*Handler, error) {
	opts.TemplatesDir = ""
	return newHandler(fsys, opts)
}

func newHandler(fsys fs.FS, opts Options) (*Handler, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Breakpoint == "" {
		opts.Breakpoint = layout.DefaultBreakpoint
	}

	h := &Handler{
		fsys:         fsys,
		templatesDir: opts.TemplatesDir,
		site:         opts.Site,
		breakpoint:   opts.Breakpoint,
		recorder:     opts.Recorder,
		logger:       opts.Logger,
	}
	if err := h.Reload(); err != nil {
		return nil, err
	}
	return h, nil
}

// Reload re-parses every page template. On failure the previous set stays
// in use.
func (h *Handler) Reload() error {
	parsed, err := parsePages(h.fsys)
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.pageTemplates = parsed
	h.mu.Unlock()
	return nil
}

func parsePages(fsys fs.FS) (map[string]*template.Template, error) {
	pageTemplates := make(map[string]*template.Template, len(pages))

	for _, page := range pages {
		files := append(append([]string{}, sharedTemplates...), page)
		tmpl, err := template.ParseFS(fsys, files...)
		if err != nil {
			return nil, core.Wrapf(core.ErrTemplateNotFound, "parsing template %s: %w", page, err)
		}
		pageTemplates[page] = tmpl
	}

	return pageTemplates, nil
}

func (h *Handler) lookup(page string) (*template.Template, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	tmpl, ok := h.pageTemplates[page]
	if !ok {
		return nil, core.Wrapf(core.ErrTemplateNotFound, "page %s", page)
	}
	return tmpl, nil
}

// write sends a fully rendered page. Rendering happens before the first byte
// so a failed render never leaves a half-written document.
func (h *Handler) write(w http.ResponseWriter, page string, body []byte, err error) {
	if err != nil {
		h.logger.Error("render failed", zap.String("page", page), zap.Error(err))
		if h.recorder != nil {
			h.recorder.RecordRenderError(page)
		}
		status := core.StatusCode(err)
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(body)
}

// TemplateFS returns the embedded template filesystem for external use.
func TemplateFS() fs.FS {
	subFS, err := fs.Sub(templateFS, "templates")
	if err != nil {
		// This should never happen with valid embed directive
		return templateFS
	}
	return subFS
}
