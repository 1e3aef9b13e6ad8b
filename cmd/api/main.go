package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"todo-backend/internal/core/auth"
	"todo-backend/internal/core/cache"
	"todo-backend/internal/core/config"
	"todo-backend/internal/core/database"
	"todo-backend/internal/core/logger"
	"todo-backend/internal/core/server"
	"todo-backend/internal/domain"
	"todo-backend/internal/repo"
	"todo-backend/internal/service"
	"todo-backend/internal/transport/http/router"
	"todo-backend/pkg/utils"
)

type stores struct {
	users   domain.UserRepository
	todos   domain.TodoRepository
	closeFn func(context.Context)
}

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log, cleanup := logger.FromConfig(cfg.Log)
	defer cleanup()
	restoreStd := logger.RedirectStdLog(log, zapcore.InfoLevel)
	defer restoreStd()

	if cfg.App.Env != "local" && cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DefaultWriter = logger.ToWriter(log, zapcore.DebugLevel)
	gin.DefaultErrorWriter = logger.ToWriter(log, zapcore.ErrorLevel)

	st := mustOpenStores(cfg, log)
	defer st.closeFn(context.Background())

	todos := st.todos
	if cfg.Redis.Addr != "" {
		c := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		c.Prefix = cfg.App.Name + ":"
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := c.Ping(pingCtx); err != nil {
			// the decorator falls back to the store while redis is down
			log.Warn("redis ping failed", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}
		cancel()
		defer c.Close()
		todos = repo.NewCachedTodoRepo(todos, c, time.Duration(cfg.Redis.TodoTTLSec)*time.Second, log)
		log.Info("todo cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	if _, err := utils.ParseCost(cfg.Auth.SaltRounds); err != nil {
		log.Warn("auth.saltRounds is invalid, registration will fail", zap.Error(err))
	}
	hasher := utils.NewPasswordHasher(cfg.Auth.SaltRounds)
	jwter := &auth.JWTer{
		Secret: []byte(cfg.Auth.Secret),
		Issuer: cfg.Auth.Issuer,
		TTL:    time.Duration(cfg.Auth.TokenTTLHours) * time.Hour,
	}

	userSvc := service.NewUserService(log, st.users, hasher, jwter)
	todoSvc := service.NewTodoService(todos)

	h := cfg.App.HTTP
	r := router.NewAPIEngine(log, router.Options{
		RequestTimeout:      time.Duration(h.RequestTimeoutSec) * time.Second,
		MaxBodyBytes:        int64(h.MaxBodyMB) << 20,
		RateLimitRPS:        h.RateLimitRPS,
		RateLimitBurst:      h.RateLimitBurst,
		PerIPRPS:            h.PerIPRPS,
		PerIPBurst:          h.PerIPBurst,
		MaxInFlight:         h.MaxInFlight,
		CORSOrigins:         h.CORSOrigins,
		RequireAuthForTodos: cfg.Auth.RequireForTodos,
	}, router.Deps{Users: userSvc, Todos: todoSvc, Tokens: jwter})

	addr := server.Addr(h.Host, h.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(h.ReadTimeoutSec)*time.Second,
		time.Duration(h.WriteTimeoutSec)*time.Second,
		time.Duration(h.IdleTimeoutSec)*time.Second,
	)

	host4human := h.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(h.Port)
	log.Info("todo api starting",
		zap.String("addr", addr),
		zap.String("driver", cfg.DB.Driver),
		zap.String("health", baseURL+"/health"),
		zap.String("api", baseURL+"/api"),
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		log.Error("todo api start FAILED", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn("shutdown", zap.Error(err))
	}
	log.Info("todo api stopped")
}

func mustOpenStores(cfg *config.Config, l *zap.Logger) stores {
	timeout := time.Duration(cfg.DB.ConnectTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if cfg.DB.Driver == "mongo" {
		client, db, err := database.NewMongo(ctx, database.MongoOpts{
			URI:            cfg.DB.DSN,
			Database:       cfg.DB.Database,
			MaxPoolSize:    uint64(max(cfg.DB.MaxOpenConns, 0)),
			ConnectTimeout: timeout,
		})
		if err != nil {
			l.Fatal("mongo connect", zap.String("uri", database.MaskDSN(cfg.DB.DSN)), zap.Error(err))
		}
		users := repo.NewMongoUserRepo(db)
		if err := users.Migrate(ctx); err != nil {
			l.Fatal("mongo ensure indexes", zap.Error(err))
		}
		l.Info("database connected", zap.String("driver", "mongo"), zap.String("database", db.Name()))
		return stores{
			users: users,
			todos: repo.NewMongoTodoRepo(db),
			closeFn: func(ctx context.Context) {
				disconnect(ctx, client, l)
			},
		}
	}

	db := mustOpenGorm(cfg, l)
	users, todos := repo.NewUserRepo(db), repo.NewTodoRepo(db)
	if cfg.DB.AutoMigrate {
		if err := users.Migrate(ctx); err != nil {
			l.Fatal("automigrate users", zap.Error(err))
		}
		if err := todos.Migrate(ctx); err != nil {
			l.Fatal("automigrate todos", zap.Error(err))
		}
		l.Info("automigrate done")
	}
	return stores{
		users: users,
		todos: todos,
		closeFn: func(context.Context) {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		},
	}
}

func mustOpenGorm(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
		Log:                logger.ToStdLogger(l.Named("gorm"), zapcore.InfoLevel),
	})
	if err != nil {
		l.Fatal("db open", zap.String("dsn", database.MaskDSN(cfg.DB.DSN)), zap.Error(err))
	}
	l.Info("database connected", zap.String("driver", cfg.DB.Driver))
	return db
}

func disconnect(ctx context.Context, c *mongo.Client, l *zap.Logger) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := c.Disconnect(ctx); err != nil {
		l.Warn("mongo disconnect", zap.Error(err))
	}
}
