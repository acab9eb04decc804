package main

import (
	"fmt"

	"cashsite/cmd/cashsite/ui"
	"cashsite/internal/config"
	"cashsite/internal/content"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	pageWidth int
	pageOpen  int
)

// pageCmd prints one of the secondary site pages
var pageCmd = &cobra.Command{
	Use:   "page performance|store|services",
	Short: "Render the performance, store or services page",
	Long: `Renders a site page as markdown for the terminal. Page content comes from
the performance_path, store_path and services_path config entries, or the
built-in samples when they are unset.

The services page is an accordion; --open N expands the Nth service.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"performance", "store", "services"},
	RunE:      runPage,
}

func init() {
	pageCmd.Flags().IntVar(&pageWidth, "width", 80, "Wrap width")
	pageCmd.Flags().IntVar(&pageOpen, "open", 0, "Services: expand the Nth service (0 = all collapsed)")
}

// sitePages is the content behind the non-gallery sections.
type sitePages struct {
	performance *content.Performance
	store       *content.Store
	services    *content.Services
}

// loadPages reads each configured page file, using the sample for any
// that is unset.
func loadPages(c *config.Config) (*sitePages, error) {
	p := &sitePages{
		performance: content.SamplePerformance(),
		store:       content.SampleStore(),
		services:    content.SampleServices(),
	}
	var err error
	if path := c.Showcase.PerformancePath; path != "" {
		if p.performance, err = content.LoadPerformance(path); err != nil {
			return nil, err
		}
	}
	if path := c.Showcase.StorePath; path != "" {
		if p.store, err = content.LoadStore(path); err != nil {
			return nil, err
		}
	}
	if path := c.Showcase.ServicesPath; path != "" {
		if p.services, err = content.LoadServices(path); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func runPage(cmd *cobra.Command, args []string) error {
	pages, err := loadPages(cfg)
	if err != nil {
		return err
	}

	var md string
	switch args[0] {
	case "performance":
		md = ui.PerformanceMarkdown(pages.performance, 0)
	case "store":
		md = ui.StoreMarkdown(pages.store)
	case "services":
		if pageOpen < 0 || pageOpen > len(pages.services.Items) {
			return fmt.Errorf("--open must be between 0 and %d", len(pages.services.Items))
		}
		md = ui.ServicesMarkdown(pages.services, -1, pageOpen-1)
	default:
		return fmt.Errorf("unknown page %q (want performance, store or services)", args[0])
	}

	style := "notty"
	if isTerminal(cmd.OutOrStdout()) {
		style = ui.NewStyles(ui.ThemeByName(cfg.Showcase.Theme)).MarkdownStyle()
	}
	out, err := ui.RenderMarkdown(md, style, pageWidth)
	if err != nil {
		return err
	}
	logger.Debug("Rendered page", zap.String("page", args[0]), zap.String("style", style))
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
