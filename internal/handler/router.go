package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/acadledger-api/internal/middleware"
	"github.com/noah-isme/acadledger-api/internal/models"
	"github.com/noah-isme/acadledger-api/internal/service"
	"github.com/noah-isme/acadledger-api/pkg/config"
	"github.com/noah-isme/acadledger-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/acadledger-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/acadledger-api/pkg/middleware/requestid"
)

// RouterDeps carries everything the route table needs. Audit is nil when the
// journal is disabled; Transcripts gates the export routes.
type RouterDeps struct {
	Config  *config.Config
	Logger  *zap.Logger
	Auth    *service.AuthService
	Metrics *service.MetricsService
	Audit   middleware.AuditRecorder

	AuthHandler       *AuthHandler
	TeacherHandler    *TeacherHandler
	StudentHandler    *StudentHandler
	CourseHandler     *CourseHandler
	EnrollmentHandler *EnrollmentHandler
	GradeHandler      *GradeHandler
	LedgerHandler     *LedgerHandler
	AuditHandler      *AuditHandler
}

// NewRouter builds the gin engine with the full route table.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(deps.Logger))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	api.POST("/auth/token",
		middleware.Audit(deps.Audit, models.AuditActionTokenIssue, "token"),
		deps.AuthHandler.Token)

	protected := api.Group("")
	protected.Use(middleware.Auth(deps.Auth))

	protected.POST("/teachers",
		middleware.Audit(deps.Audit, models.AuditActionTeacherAdd, "teacher"),
		deps.TeacherHandler.Add)
	protected.DELETE("/teachers/:identity",
		middleware.Audit(deps.Audit, models.AuditActionTeacherRemove, "teacher"),
		deps.TeacherHandler.Remove)
	protected.GET("/teachers", deps.TeacherHandler.List)

	protected.POST("/students",
		middleware.Audit(deps.Audit, models.AuditActionStudentRegister, "student"),
		deps.StudentHandler.Register)
	protected.GET("/students/:id", deps.StudentHandler.Get)
	protected.GET("/students/:id/courses/count", deps.StudentHandler.CourseCount)
	protected.GET("/students/:id/courses/:courseId/grade", deps.GradeHandler.ForCourse)
	if cfg.Transcripts.Enabled {
		protected.GET("/students/:id/transcript", deps.StudentHandler.Transcript)
	}

	protected.POST("/courses",
		middleware.Audit(deps.Audit, models.AuditActionCourseCreate, "course"),
		deps.CourseHandler.Create)
	protected.GET("/courses/:id", deps.CourseHandler.Get)

	protected.POST("/enrollments",
		middleware.Audit(deps.Audit, models.AuditActionEnroll, "enrollment"),
		deps.EnrollmentHandler.Enroll)
	protected.GET("/enrollments/:studentId/:courseId", deps.EnrollmentHandler.Status)

	protected.POST("/grades",
		middleware.Audit(deps.Audit, models.AuditActionGradeAssign, "grade"),
		deps.GradeHandler.Assign)
	protected.GET("/grades/:id", deps.GradeHandler.Get)

	protected.GET("/ledger/totals", deps.LedgerHandler.Totals)

	if deps.AuditHandler != nil {
		protected.GET("/audit/:identity", deps.AuditHandler.ListByCaller)
	}

	return r
}
