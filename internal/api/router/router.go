package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Yasheenyash33/training-tracker-Dash/config"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/access"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/api/handler"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/api/middleware"
	"github.com/Yasheenyash33/training-tracker-Dash/pkg/jwt"
	"github.com/Yasheenyash33/training-tracker-Dash/pkg/redis"
)

// crud is the handler set behind one resource path.
type crud struct {
	list, get, create, update, remove gin.HandlerFunc
}

// mount registers list/retrieve/create/update/partial update/delete.
func mount(g *gin.RouterGroup, path string, allow access.Predicate, h crud) {
	rg := g.Group(path, middleware.Require(allow))
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.POST("", h.create)
	rg.PUT("/:id", h.update)
	rg.PATCH("/:id", h.update)
	rg.DELETE("/:id", h.remove)
}

// Setup builds the gin engine. rdb may be nil; revocation checks and rate
// limiting then allow everything. accounts reloads the caller on every
// authenticated request.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, accounts middleware.AccountLoader, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	r.GET("/", handler.Root)
	r.GET("/health", handler.Health)

	api := r.Group("/api")
	{
		// ── public ──
		api.POST("/register", h.Auth.Register)
		api.POST("/token", h.Auth.Login)
		api.POST("/token/refresh", h.Auth.Refresh)

		reset := api.Group("/password-reset",
			middleware.RateLimit(rdb, cfg.PasswordReset.RateLimit, cfg.PasswordReset.RateWindow))
		{
			reset.POST("", h.PasswordReset.Request)
			reset.POST("/confirm", h.PasswordReset.Confirm)
		}

		// ── authenticated ──
		authorized := api.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb, accounts))
		{
			authorized.GET("/auth/user", h.Auth.CurrentUser)
			authorized.POST("/auth/logout", h.Auth.Logout)

			mount(authorized, "/users", access.IsAdmin, crud{
				h.User.List, h.User.Get, h.User.Create, h.User.Update, h.User.Delete,
			})
			mount(authorized, "/programs", access.IsAdmin, crud{
				h.Program.List, h.Program.Get, h.Program.Create, h.Program.Update, h.Program.Delete,
			})
			mount(authorized, "/program-topics", access.IsAdmin, crud{
				h.Program.ListTopics, h.Program.GetTopic, h.Program.CreateTopic, h.Program.UpdateTopic, h.Program.DeleteTopic,
			})

			authorized.GET("/batches/:id/calendar", middleware.Require(access.IsTrainerOrAdmin), h.Export.BatchCalendar)
			mount(authorized, "/batches", access.IsTrainerOrAdmin, crud{
				h.Batch.List, h.Batch.Get, h.Batch.Create, h.Batch.Update, h.Batch.Delete,
			})
			mount(authorized, "/batch-trainers", access.IsTrainerOrAdmin, crud{
				h.Batch.ListTrainers, h.Batch.GetTrainer, h.Batch.AssignTrainer, h.Batch.UpdateTrainer, h.Batch.RemoveTrainer,
			})
			mount(authorized, "/batch-trainees", access.Authenticated, crud{
				h.Batch.ListTrainees, h.Batch.GetTrainee, h.Batch.Enroll, h.Batch.UpdateTrainee, h.Batch.RemoveTrainee,
			})

			mount(authorized, "/designations", access.IsAdmin, crud{
				h.Designation.List, h.Designation.Get, h.Designation.Create, h.Designation.Update, h.Designation.Delete,
			})
			mount(authorized, "/designation-programs", access.IsAdmin, crud{
				h.Designation.ListPrograms, h.Designation.GetProgram, h.Designation.LinkProgram, h.Designation.UpdateProgram, h.Designation.UnlinkProgram,
			})
			mount(authorized, "/trainee-designations", access.IsAdmin, crud{
				h.Designation.ListAssignments, h.Designation.GetAssignment, h.Designation.Assign, h.Designation.UpdateAssignment, h.Designation.Unassign,
			})

			authorized.GET("/progress-records/export", middleware.Require(access.IsTrainerOrAdmin), h.Export.ExportProgress)
			mount(authorized, "/progress-records", access.Authenticated, crud{
				h.Progress.List, h.Progress.Get, h.Progress.Create, h.Progress.Update, h.Progress.Delete,
			})

			mount(authorized, "/classes", access.IsTrainerOrAdmin, crud{
				h.Class.List, h.Class.Get, h.Class.Create, h.Class.Update, h.Class.Delete,
			})

			// audit logs are read-only
			audit := authorized.Group("/audit-logs", middleware.Require(access.IsAdmin))
			{
				audit.GET("", h.AuditLog.List)
				audit.GET("/:id", h.AuditLog.Get)
			}
		}
	}

	return r
}
