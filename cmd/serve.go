package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-skills/internal/logger"
	"github.com/spigell/resume-skills/internal/server"
	"github.com/spigell/resume-skills/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis HTTP API",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		serve(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	serveCmd.Flags().String("store-dsn", "", "persist analyses to a store (sqlite path or postgres:// url)")
}

func serve(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	cfg, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}
	if addr := cmd.Flag("addr").Value.String(); addr != "" {
		cfg.Server.Addr = addr
	}
	if dsn := cmd.Flag("store-dsn").Value.String(); dsn != "" {
		cfg.Store.DSN = dsn
	}

	zlog.Info("starting the resume-skills server",
		zap.String("version", version),
		zap.String("preset", cfg.Preset),
		zap.String("provider", cfg.Classifier.Provider),
	)

	analyzer, manager, err := buildAnalyzer(cfg, zlog)
	if err != nil {
		zlog.Fatal("building the analyzer", zap.Error(err))
	}

	var st store.Store
	if cfg.Store.DSN != "" {
		st, err = store.Open(ctx, cfg.Store.DSN)
		if err != nil {
			zlog.Fatal("opening the store", zap.Error(err))
		}
		defer st.Close()
	}

	srv := server.New(server.Config{
		Addr:           cfg.Server.Addr,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxUploadBytes: cfg.Server.MaxUploadMB << 20,
	}, analyzer, st, manager, zlog)

	if err := srv.Start(ctx); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
	zlog.Info("server stopped")
}
