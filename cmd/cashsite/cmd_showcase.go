package main

import (
	"os"
	"os/signal"
	"syscall"

	"cashsite/cmd/cashsite/ui"
	"cashsite/internal/content"
	"cashsite/internal/logging"
	"cashsite/internal/scramble"

	"github.com/spf13/cobra"
)

// runShowcase launches the interactive works gallery.
func runShowcase(cmd *cobra.Command, args []string) error {
	opts, err := effectOptions(cfg)
	if err != nil {
		return err
	}

	portfolio := content.SamplePortfolio()
	if path := cfg.Showcase.ContentPath; path != "" {
		portfolio, err = content.LoadPortfolio(path)
		if err != nil {
			return err
		}
	}
	pages, err := loadPages(cfg)
	if err != nil {
		return err
	}
	logging.Boot("showcase starting", "works", len(portfolio.Works), "source", portfolio.Source,
		"projects", len(pages.performance.Projects()), "releases", len(pages.store.Releases), "services", len(pages.services.Items))

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return ui.Run(ctx, ui.Options{
		Portfolio:   portfolio,
		ContentPath: cfg.Showcase.ContentPath,
		Watch:       cfg.Showcase.WatchContent,
		Performance: pages.performance,
		Store:       pages.store,
		Services:    pages.services,
		Binding: scramble.Binding{
			EnableOnHover: cfg.Showcase.EnableOnHover,
			AutoStart:     cfg.Showcase.AutoStartTitles,
		},
		EffectOptions: opts,
		Styles:        ui.NewStyles(ui.ThemeByName(cfg.Showcase.Theme)),
	})
}
