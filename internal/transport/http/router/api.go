package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"todo-backend/internal/core/server"
	"todo-backend/internal/service"
	"todo-backend/internal/transport/http/ez"
	"todo-backend/internal/transport/http/handler"
	mdw "todo-backend/internal/transport/http/middleware"
	resp "todo-backend/internal/transport/http/response"
)

// Options are the HTTP guard rails; zero values disable a guard.
type Options struct {
	RequestTimeout      time.Duration
	MaxBodyBytes        int64
	RateLimitRPS        float64
	RateLimitBurst      int
	PerIPRPS            float64
	PerIPBurst          int
	MaxInFlight         int64
	CORSOrigins         []string
	RequireAuthForTodos bool
}

type Deps struct {
	Users  *service.UserService
	Todos  *service.TodoService
	Tokens mdw.TokenVerifier
}

func NewAPIEngine(l *zap.Logger, o Options, d Deps) *gin.Engine {
	r := server.NewRouter(l, server.Options{
		CORSOrigins:  o.CORSOrigins,
		SkipLogPaths: []string{"/health", "/metrics"},
	})

	r.Use(mdw.RequestID(), mdw.Recovery(l), mdw.Metrics())
	if o.RateLimitRPS > 0 {
		r.Use(mdw.RateLimit(rate.Limit(o.RateLimitRPS), max(o.RateLimitBurst, 1)))
	}
	if o.PerIPRPS > 0 {
		r.Use(mdw.RateLimitPerIP(rate.Limit(o.PerIPRPS), max(o.PerIPBurst, 1)))
	}
	if o.MaxInFlight > 0 {
		r.Use(mdw.ConcurrencyLimit(o.MaxInFlight))
	}
	if o.MaxBodyBytes > 0 {
		r.Use(mdw.MaxBodyBytes(o.MaxBodyBytes))
	}
	r.Use(mdw.Timeout(o.RequestTimeout))

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", mdw.MetricsHandler())
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, resp.Error(http.StatusNotFound, ""))
	})

	api := r.Group("/api")
	requireAuth := mdw.AuthJWT(d.Tokens)

	users := api.Group("/user")
	handler.NewUserHandler(d.Users).Mount(ez.New(users, l), ez.New(users.Group("", requireAuth), l))

	todos := api.Group("/todos")
	if o.RequireAuthForTodos {
		todos.Use(requireAuth)
	}
	handler.NewTodoHandler(d.Todos).Mount(ez.New(todos, l))

	return r
}
