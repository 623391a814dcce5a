package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/plantlore/internal/progress"
	"github.com/ziadkadry99/plantlore/internal/report"
	"github.com/ziadkadry99/plantlore/internal/server"
	"github.com/ziadkadry99/plantlore/internal/site"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Generate the report as a static website",
	Long:  `Writes one HTML page per view, an index showing the default view, the overlap chart, the analysis document and the configured assets.`,
	RunE:  runSite,
}

func init() {
	siteCmd.Flags().String("output", "", "override output directory")
	siteCmd.Flags().Bool("serve", false, "start a local HTTP server after generating")
	siteCmd.Flags().Int("port", 0, "port for the local server (overrides config)")
	siteCmd.Flags().Bool("open", false, "open browser automatically when serving")
	rootCmd.AddCommand(siteCmd)
}

func runSite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		cfg.OutputDir = output
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Port = port
	}
	logger, err := initLogger(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	doc, err := loadDocument(ctx, cfg, logger)
	if err != nil {
		return err
	}
	rep, err := report.New(cfg, doc)
	if err != nil {
		return err
	}

	generator := &site.Generator{
		OutputDir:   cfg.OutputDir,
		AssetsDir:   cfg.AssetsDir,
		Assets:      cfg.Assets,
		DefaultView: cfg.DefaultView,
		Renderer:    rep.Renderer,
		Reporter:    progress.NewReporter(),
		Logger:      logger,
	}
	manifest, err := generator.Generate(doc, rep.Page)
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}
	fmt.Printf("Static site generated: %s (%d files)\n", cfg.OutputDir, len(manifest.Files))

	if serve, _ := cmd.Flags().GetBool("serve"); !serve {
		return nil
	}

	srv := server.NewStatic(server.Config{Port: cfg.Port, AllowAll: cfg.Server.AllowAllOrigins}, cfg.OutputDir, logger)
	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	url := fmt.Sprintf("http://localhost:%d", cfg.Port)
	fmt.Printf("Serving site at %s (press Ctrl+C to stop)\n", url)
	if open, _ := cmd.Flags().GetBool("open"); open {
		site.OpenBrowser(url)
	}
	return srv.Start()
}
