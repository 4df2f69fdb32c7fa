package cmd

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/courier"
	"github.com/Zachkp/folio/internal/effects"
	"github.com/Zachkp/folio/internal/page"
	"github.com/Zachkp/folio/internal/server"
	"github.com/Zachkp/folio/internal/store"
	"github.com/Zachkp/folio/internal/views"
	"github.com/Zachkp/folio/pkg/logger"
	"github.com/Zachkp/folio/pkg/metrics"
)

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Runs the portfolio server until SIGINT or SIGTERM, then unmounts every
open page and drains in-flight requests.`,
	RunE: runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := background(cmd)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if err := logger.Init(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile}); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Log
	gin.SetMode(cfg.Mode)

	c, err := content.Load(cfg.ContentFile)
	if err != nil {
		return err
	}

	st, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if n, err := st.PruneVisits(ctx, cfg.VisitorRetention); err != nil {
		log.Warn("startup prune failed", zap.Error(err))
	} else if n > 0 {
		log.Info("pruned expired visitor data", zap.Int64("rows", n))
	}

	delivery, err := courier.New(cfg, st, logger.Named("courier"))
	if err != nil {
		return errors.Wrap(err, "contact delivery")
	}

	m := metrics.NewManager()
	reg := page.NewRegistry(c,
		page.WithRuntime(func() effects.Runtime { return effects.NewLoop() }),
		page.WithLogger(logger.Named("page")),
		page.WithCourier(delivery),
		page.WithMetrics(m),
		page.WithTTL(cfg.ViewTTL),
		page.WithTiming(page.Timing{
			Typing:    cfg.TypingInterval,
			Cursor:    cfg.CursorInterval,
			Count:     cfg.CountInterval,
			Send:      cfg.SendDelay,
			Reset:     cfg.ResetDelay,
			Threshold: cfg.RevealThreshold,
		}),
		page.WithContactRenderer(func(_ string, status effects.Status, _ effects.Draft) string {
			return views.String(views.ContactStatus(status))
		}),
	)
	go reg.Run(ctx, cfg.SweepInterval)

	srv, err := server.New(cfg, c, reg, st, m, logger.Named("http"))
	if err != nil {
		return err
	}

	log.Info("starting folio",
		zap.String("addr", cfg.Addr),
		zap.String("delivery", cfg.ContactDelivery),
		zap.Bool("admin", cfg.AdminEnabled()),
	)
	return srv.Run(ctx)
}
