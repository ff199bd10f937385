package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Amor-Self-learning/docview/internal/prefs"
	"github.com/Amor-Self-learning/docview/internal/shell"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the documentation viewer server",
	Long:  `Serves the documentation corpus as a navigable single-page site with sidebar filtering, hash routing, and a persisted light/dark theme.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "override the configured port")
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

	store, err := prefs.Open(filepath.Join(cfg.DataDir, "prefs.db"))
	if err != nil {
		return fmt.Errorf("opening preferences store: %w", err)
	}
	defer store.Close()

	app, err := shell.NewApp(cfg, store)
	if err != nil {
		return fmt.Errorf("building application: %w", err)
	}

	srv, err := shell.NewServer(app)
	if err != nil {
		return err
	}

	// Shut down cleanly on SIGINT/SIGTERM.
	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-done
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	fmt.Printf("Serving %q at http://localhost:%d — press Ctrl+C to stop\n", cfg.Title, cfg.Port)
	if err := srv.Start(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}
