package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/merseybathrooms/jobtracker/internal/audit"
	"github.com/merseybathrooms/jobtracker/internal/auth"
	"github.com/merseybathrooms/jobtracker/internal/config"
	"github.com/merseybathrooms/jobtracker/internal/handlers"
	"github.com/merseybathrooms/jobtracker/internal/httperr"
	infraRepo "github.com/merseybathrooms/jobtracker/internal/infra/repository"
	"github.com/merseybathrooms/jobtracker/internal/middleware"
	"github.com/merseybathrooms/jobtracker/internal/models"
	"github.com/merseybathrooms/jobtracker/internal/reportpdf"
	ucAuth "github.com/merseybathrooms/jobtracker/internal/usecase/auth"
	ucJob "github.com/merseybathrooms/jobtracker/internal/usecase/job"
	ucReport "github.com/merseybathrooms/jobtracker/internal/usecase/report"
)

// Deps are the process-wide singletons built by the entrypoint.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Uploader ucReport.PhotoUploader
	Audit    *audit.Dispatcher
}

// NewEngine returns a gin engine with the JSON 404/405 handlers installed.
func NewEngine(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.HandleMethodNotAllowed = true
	r.MaxMultipartMemory = cfg.MaxUploadMB << 20

	r.NoRoute(func(c *gin.Context) {
		httperr.Write(c, http.StatusNotFound, "not_found", "Route not found.")
	})
	r.NoMethod(func(c *gin.Context) {
		httperr.Write(c, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed.")
	})

	return r
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	// ======================================================
	// INFRA
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(d.DB)
	jobRepo := infraRepo.NewJobGormRepository(d.DB)
	reportRepo := infraRepo.NewReportGormRepository(d.DB)

	tokens := auth.NewIssuer(cfg.JWTSecret, cfg.JWTTTL)

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucAuth.NewRegister(userRepo, d.Audit, cfg.ValidateEmailDomain)
	loginUC := ucAuth.NewLogin(userRepo, tokens)

	createJobUC := ucJob.NewCreateJob(jobRepo, d.Audit)
	listJobsUC := ucJob.NewListJobs(jobRepo, cfg.BusinessTimezone)
	getJobUC := ucJob.NewGetJob(jobRepo)

	submitReportUC := ucReport.NewSubmitReport(jobRepo, reportRepo, d.Uploader, d.Audit)
	listReportsUC := ucReport.NewListReports(reportRepo)
	renderPDFUC := ucReport.NewRenderReportPDF(reportRepo, reportpdf.NewCompiler(cfg.CompanyName))

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC)
	meHandler := handlers.NewMeHandler(userRepo)
	jobHandler := handlers.NewJobHandler(createJobUC, listJobsUC, getJobUC)
	reportHandler := handlers.NewReportHandler(
		submitReportUC,
		listReportsUC,
		renderPDFUC,
		cfg.MaxUploadMB<<20,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(d.DB), cfg.BusinessTimezone)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := d.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			httperr.Write(c, http.StatusServiceUnavailable, "database_unavailable", "Database unavailable.")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "status": "ok", "time": time.Now().UTC()})
	})

	r.POST("/auth/register", middleware.OptionalAuth(tokens), authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	// ======================================================
	// AUTHENTICATED
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(tokens))

	bossOnly := middleware.RequireRole(models.RoleBoss)
	anyRole := middleware.RequireRole(models.RoleBoss, models.RoleWorker)

	secured.GET("/me", meHandler.GetMe)

	secured.POST("/jobs", bossOnly, jobHandler.Create)
	secured.GET("/jobs", anyRole, jobHandler.List)
	secured.GET("/jobs/:id", anyRole, jobHandler.Get)

	secured.POST("/reports", anyRole, reportHandler.Submit)
	secured.GET("/reports", bossOnly, reportHandler.List)
	secured.GET("/reports/:id/pdf", bossOnly, reportHandler.PDF)

	secured.GET("/audit-logs", bossOnly, auditLogsHandler.List)
}
