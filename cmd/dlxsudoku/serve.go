package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	httpadapter "svw.info/dlxsudoku/internal/adapters/http"
	"svw.info/dlxsudoku/internal/infrastructure/storage"
	"svw.info/dlxsudoku/internal/logger"
	"svw.info/dlxsudoku/internal/usecase"
	"svw.info/dlxsudoku/internal/validator"
)

var (
	flagAddr    string
	flagPersist string
	flagSolver  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("addr") {
			cfg.Addr = flagAddr
		}
		if cmd.Flags().Changed("persist-path") {
			cfg.PersistPath = flagPersist
		}
		if cmd.Flags().Changed("solver") {
			cfg.Solver = flagSolver
		}
		if err := os.MkdirAll(cfg.PersistPath, 0o755); err != nil {
			return err
		}

		log := logger.Logger()

		// Wire providers -> use cases -> HTTP adapter
		s := newSolver(cfg.Solver)
		g := newGenerator(cfg.Solver)
		v := validator.New()
		st := storage.NewFS(cfg.PersistPath)
		uc := usecase.NewService(s, g, v, st)
		h := httpadapter.New(uc)

		gin.SetMode(gin.ReleaseMode)
		r := gin.New()
		r.Use(gin.Recovery(), httpadapter.RequestLogger(log), httpadapter.Metrics())
		h.Register(r)
		httpadapter.RegisterMetricsEndpoint(r)

		srv := &http.Server{
			Addr:              cfg.Addr,
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().
			Str("addr", cfg.Addr).
			Str("persist", cfg.PersistPath).
			Str("solver", cfg.Solver).
			Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&flagPersist, "persist-path", "./data", "save directory")
	serveCmd.Flags().StringVar(&flagSolver, "solver", "dlx", "solver to use: dlx|backtrack")
}
