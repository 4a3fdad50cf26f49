package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/newthinker/hypergluex/internal/api/handler/web"
	"github.com/newthinker/hypergluex/internal/config"
	"github.com/newthinker/hypergluex/internal/core"
	"github.com/newthinker/hypergluex/internal/layout"
	"github.com/newthinker/hypergluex/internal/logger"
	"github.com/spf13/cobra"
)

const (
	formatHTML     = "html"
	formatMarkdown = "markdown"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the home page without starting a server",
	Long: `Render writes the home page document to stdout or a file, as HTML or
converted to Markdown.`,
	RunE: runRender,
}

var (
	renderFormat  string
	renderSidebar string
	renderOutput  string
)

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", formatHTML, "output format: html or markdown")
	renderCmd.Flags().StringVar(&renderSidebar, "sidebar", string(layout.StateOpen), "sidebar state: open or closed")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "write to file instead of stdout")
}

func runRender(cmd *cobra.Command, args []string) error {
	log := logger.Must(logger.Options{Development: debug, Level: "warn"})
	defer func() { _ = log.Sync() }()

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	state, ok := layout.ParseState(renderSidebar)
	if !ok {
		return core.Wrapf(core.ErrConfigInvalid, "unknown sidebar state %q", renderSidebar)
	}

	// Render fully before touching --output so a failure never truncates it.
	var buf bytes.Buffer
	if err := renderPage(&buf, cfg, renderFormat, state); err != nil {
		return err
	}

	if renderOutput == "" {
		_, err = cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(renderOutput, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// renderPage writes the home document in format.
func renderPage(w io.Writer, cfg *config.Config, format string, state layout.State) error {
	if format != formatHTML && format != formatMarkdown {
		return core.Wrapf(core.ErrConfigInvalid, "unknown format %q", format)
	}

	bp, err := layout.ParseBreakpoint(cfg.UI.Breakpoint)
	if err != nil {
		return err
	}

	h, err := web.NewHandler(web.Options{
		TemplatesDir: cfg.Server.TemplatesDir,
		Site:         siteFromConfig(cfg),
		Breakpoint:   bp,
	})
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := h.RenderHome(&buf, state); err != nil {
		return err
	}

	if format == formatHTML {
		_, err = w.Write(buf.Bytes())
		return err
	}

	md, err := htmltomarkdown.ConvertString(buf.String())
	if err != nil {
		return core.Wrapf(core.ErrRenderFailed, "converting to markdown: %w", err)
	}
	_, err = fmt.Fprintln(w, md)
	return err
}
