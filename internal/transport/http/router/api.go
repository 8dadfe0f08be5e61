// Package router assembles the gin engine: global middleware chain,
// operational endpoints and the API route table.
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"fittrack/internal/core/auth"
	"fittrack/internal/core/cache"
	"fittrack/internal/domain"
	"fittrack/internal/transport/http/handler"
	"fittrack/internal/transport/http/middleware"
)

type Deps struct {
	Log       *zap.Logger
	JWT       *auth.JWTer
	Users     domain.UserRepository
	Programs  domain.ProgramRepository
	Exercises domain.ExerciseRepository
	Completed domain.CompletedExerciseRepository
	Cache     *cache.Cache // nil when redis is not configured
}

func NewAPIEngine(d Deps) *gin.Engine {
	e := gin.New()

	e.Use(
		middleware.RequestID(),
		middleware.RateLimit(200, 400),
		middleware.ConcurrencyLimit(300),
		middleware.MaxBodyBytes(16<<20),
		middleware.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(d.Log, true),
		middleware.Metrics(),
		middleware.AccessLog(d.Log),
		cors.Default(),
		middleware.Locale(),
		middleware.ErrorResponder(d.Log),
	)

	e.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	e.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authn := middleware.AuthRequired(d.JWT, d.Users)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	userOnly := middleware.RequireRole(domain.RoleUser)
	anyRole := middleware.RequireRole(domain.RoleAdmin, domain.RoleUser)

	ah := handler.NewAuthHandler(d.Users, d.JWT)
	uh := handler.NewUserHandler(d.Users)
	ph := handler.NewProgramHandler(d.Programs, d.Exercises, d.Cache)
	eh := handler.NewExerciseHandler(d.Exercises, d.Programs)
	ch := handler.NewCompletedHandler(d.Completed, d.Exercises)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", ah.Register)
		authGroup.POST("/login", ah.Login)
	}

	users := e.Group("/users", authn)
	{
		users.GET("", anyRole, uh.List)
		users.GET("/me", userOnly, uh.Me)
		users.GET("/:id", adminOnly, uh.Get)
		users.PUT("/:id", adminOnly, uh.Update)
		users.DELETE("/:id", adminOnly, uh.Delete)

		completed := users.Group("/me/completed-exercises", userOnly)
		{
			completed.POST("", ch.Create)
			completed.GET("", ch.List)
			completed.DELETE("/:id", ch.Delete)
		}
	}

	programs := e.Group("/programs")
	{
		programs.GET("", ph.List)
		programs.POST("", authn, adminOnly, ph.Create)
		programs.PUT("/:programID/exercise/:exerciseID", authn, adminOnly, ph.Assign)
		programs.DELETE("/:programID/exercise/:exerciseID", authn, adminOnly, ph.Unassign)
	}

	exercises := e.Group("/exercises")
	{
		exercises.GET("", eh.List)
		exercises.POST("", authn, adminOnly, eh.Create)
		exercises.PUT("/:id", authn, adminOnly, eh.Update)
		exercises.DELETE("/:id", authn, adminOnly, eh.Delete)
	}

	return e
}
