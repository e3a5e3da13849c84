package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/accountkit/user-service/internal/application/account"
	"github.com/accountkit/user-service/internal/config"
	"github.com/accountkit/user-service/internal/infrastructure/db/postgres"
	"github.com/accountkit/user-service/internal/infrastructure/memory"
	rabbitmq_pub "github.com/accountkit/user-service/internal/infrastructure/messaging/rabbitmq"
	"github.com/accountkit/user-service/internal/infrastructure/redis"
	"github.com/accountkit/user-service/internal/infrastructure/security"
	"github.com/accountkit/user-service/internal/logger"
	http_handlers "github.com/accountkit/user-service/internal/transport/http/handlers"
	"github.com/accountkit/user-service/internal/transport/http/middleware"
	"github.com/accountkit/user-service/internal/transport/http/response"
	"github.com/accountkit/user-service/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)

	NewDB func(addr string) (DBCloser, error)

	NewRedis func(addr, password string, db int) RedisClient

	NewPublisher func(rabbitURL string) (Publisher, error)

	NewRouter func(router.Deps) http.Handler
}

type DBCloser interface {
	Close() error
}

type RedisClient interface {
	Ping(ctx context.Context) error
	Close() error
}

type Publisher interface{}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	// 1) db
	db, err := deps.NewDB(cfg.DBAddr)
	if err != nil {
		return nil, nil, err
	}

	cleanupFns := []func(){
		func() { _ = db.Close() },
	}

	// 2) user repo
	sqlDB, ok := db.(*sql.DB)
	if !ok {
		runCleanup(cleanupFns)
		return nil, nil, errors.New("bootstrap: NewDB did not return *sql.DB")
	}

	userRepo := postgres.NewUserRepo(sqlDB)

	// 3) redis (best-effort, rate limiting only)
	var redisCli RedisClient
	if deps.NewRedis != nil && cfg.RedisAddr != "" {
		c := deps.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := c.Ping(ctx); err != nil {
			logger.Logger.Warn().Err(err).Msg("redis unavailable; rate limiting disabled")
			_ = c.Close()
		} else {
			logger.Logger.Info().Msg("redis connected")
			redisCli = c
			cleanupFns = append(cleanupFns, func() { _ = c.Close() })
		}
	}

	// 4) publisher
	var pub Publisher
	if deps.NewPublisher != nil && cfg.RabbitURL != "" {
		pub, err = deps.NewPublisher(cfg.RabbitURL)
		if err != nil {
			if cfg.Env == "dev" {
				logger.Logger.Warn().Err(err).Msg("rabbitmq unavailable; using noop publisher")
				pub = memory.NewNoopPublisher()
			} else {
				runCleanup(cleanupFns)
				return nil, nil, err
			}
		}
	} else {
		pub = memory.NewNoopPublisher()
	}

	if c, ok := pub.(interface{ Close() error }); ok {
		cleanupFns = append(cleanupFns, func() { _ = c.Close() })
	}

	eventPub, ok := pub.(account.EventPublisher)
	if !ok {
		runCleanup(cleanupFns)
		return nil, nil, errors.New("bootstrap: publisher does not implement account.EventPublisher")
	}

	// 5) security
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	signer := security.NewJWTSigner(cfg.JWTSecret, "user-service")

	// seed (dev only)
	if cfg.Env == "dev" {
		postgres.SeedUsers(context.Background(), userRepo, hasher)
	}

	// 6) service
	svc := account.NewService(
		userRepo,
		hasher,
		signer,
		eventPub,
		account.Config{TokenTTL: cfg.AccessTokenTTL},
	)

	// 7) handlers + middleware
	accountH := http_handlers.NewAccount(svc)
	healthH := http_handlers.NewHealth(sqlDB)

	authMW := middleware.Auth(signer, userRepo, response.WriteError)

	// rate limit (fail-open)
	var fwLimiter *redis.FixedWindowLimiter
	if redisCli != nil {
		if rc, ok := redisCli.(*redis.Client); ok {
			fwLimiter = redis.NewFixedWindowLimiter(rc)
		}
	}

	rl := func(key string) func(http.Handler) http.Handler {
		if fwLimiter == nil {
			return nil
		}
		return middleware.RateLimitFixedWindow(
			fwLimiter,
			middleware.FixedWindowConfig{
				RouteKey: key,
				Limit:    cfg.AuthRateLimit,
				Window:   cfg.AuthRateWindow,
			},
			response.WriteError,
		)
	}

	// 8) router
	mux := deps.NewRouter(router.Deps{
		Account: accountH,
		Health:  healthH,
		AuthMW:  authMW,

		RegisterLimit: rl("account.register"),
		LoginLimit:    rl("account.login"),
	})

	// 9) server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanup := func() {
		runCleanup(cleanupFns)
	}

	return srv, cleanup, nil
}

/*
========================
 Default deps (prod)
========================
*/

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewDB: func(addr string) (DBCloser, error) {
			return config.NewDB(addr)
		},
		NewRedis: func(addr, password string, db int) RedisClient {
			return redis.New(addr, password, db)
		},
		NewPublisher: func(url string) (Publisher, error) {
			return rabbitmq_pub.NewPublisher(url)
		},
		NewRouter: router.New,
	}
}

/*
========================
 helpers
========================
*/

func runCleanup(fns []func()) {
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
