package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	httpadp "seismic-catalog/internal/adapter/http"
	"seismic-catalog/internal/adapter/middleware"
	"seismic-catalog/internal/adapter/repository/mysql"
	"seismic-catalog/internal/auth"
	"seismic-catalog/internal/authz"
	"seismic-catalog/internal/config"
	"seismic-catalog/internal/infrastructure/cache"
	"seismic-catalog/internal/infrastructure/db"
	ucRequisition "seismic-catalog/internal/usecase/requisition"
	ucUser "seismic-catalog/internal/usecase/user"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, log)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	gdb, err := db.OpenGorm(cfg.MySQLDSN(), log)
	if err != nil {
		return err
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	rdb, err := openRedis(ctx, cfg, log)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	e, err := newServer(cfg, log, gdb, rdb)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.AppPort
		log.WithField("addr", addr).Info("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// openRedis is fatal only when idempotency needs it; the login limiter
// falls back to process memory.
func openRedis(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*redis.Client, error) {
	rdb, err := cache.OpenRedis(ctx, cache.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB, Password: cfg.RedisPassword})
	if err == nil {
		return rdb, nil
	}
	if cfg.IdempEnabled {
		return nil, err
	}
	log.WithError(err).Warn("redis unavailable; rate limiting uses process memory")
	return nil, nil
}

func newServer(cfg *config.Config, log *logrus.Logger, gdb *gorm.DB, rdb *redis.Client) (*echo.Echo, error) {
	enforcer, err := authz.NewEnforcer(log)
	if err != nil {
		return nil, err
	}
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)

	requisitions := ucRequisition.NewUsecase(
		mysql.NewRequisitionRepository(gdb),
		mysql.NewGormUoW(gdb),
		enforcer,
		ucRequisition.WithTxTimeout(cfg.TxTimeout),
		ucRequisition.WithUnknownRolePolicy(ucRequisition.UnknownRolePolicy(strings.ToLower(cfg.UnknownRolePolicy))),
		ucRequisition.WithLogger(log),
	)
	users := ucUser.NewUsecase(mysql.NewUserRepository(gdb), tokens, cfg.BcryptCost, log)

	loginLimiter, err := middleware.NewLimiter(cfg.LoginRateLimit, rdb)
	if err != nil {
		return nil, err
	}

	checks := map[string]httpadp.Check{
		"mysql": func(ctx context.Context) error {
			sqlDB, err := gdb.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(
		echomw.Recover(),
		echomw.RequestID(),
		middleware.RequestLogger(log),
		echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: cfg.CORSAllowOrigins,
			AllowHeaders: []string{
				echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization,
				middleware.HeaderIdempotencyKey, middleware.HeaderRequestAt,
			},
		}),
	)

	routes := httpadp.Routes{
		Health:       httpadp.NewHandler(checks),
		Requisitions: httpadp.NewRequisitionHandler(requisitions),
		Users:        httpadp.NewUserHandler(users, log),
		Authenticate: middleware.Authenticate(tokens),
		LoginLimit:   middleware.RateLimit(loginLimiter),
		MetricsPath:  cfg.MetricsPath,
	}
	if cfg.IdempEnabled {
		routes.Idempotency = middleware.Idempotency(rdb, cfg.IdempotencyTTL(), log)
	}
	routes.Register(e)
	return e, nil
}
