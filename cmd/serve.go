package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/plantlore/internal/report"
	"github.com/ziadkadry99/plantlore/internal/server"
	"github.com/ziadkadry99/plantlore/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the report over HTTP",
	Long: `Loads the analysis document once and serves the report. Each request
renders the page with its own navigation state: / shows the default view,
/?view=<id> or /views/<id> select another one.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides config)")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
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

	srv := server.New(server.Config{
		Port:      cfg.Port,
		AssetsDir: cfg.AssetsDir,
		AllowAll:  cfg.Server.AllowAllOrigins,
	}, rep, logger)

	go func() {
		<-ctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	url := fmt.Sprintf("http://localhost:%d", cfg.Port)
	fmt.Fprintf(os.Stderr, "plantlore %s serving %s at %s\n", Version, cfg.Analysis, url)
	if open, _ := cmd.Flags().GetBool("open"); open {
		site.OpenBrowser(url)
	}
	return srv.Start()
}
