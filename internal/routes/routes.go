package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/elite-admin/internal/audit"
	"github.com/BruksfildServices01/elite-admin/internal/auth"
	"github.com/BruksfildServices01/elite-admin/internal/domain/resource"
	"github.com/BruksfildServices01/elite-admin/internal/handlers"
	"github.com/BruksfildServices01/elite-admin/internal/httperr"
	infraRepo "github.com/BruksfildServices01/elite-admin/internal/infra/repository"
	"github.com/BruksfildServices01/elite-admin/internal/middleware"
	"github.com/BruksfildServices01/elite-admin/internal/models"
	"github.com/BruksfildServices01/elite-admin/internal/quote"
	"github.com/BruksfildServices01/elite-admin/internal/storage"
	"github.com/BruksfildServices01/elite-admin/internal/usecase/crud"
	ucJob "github.com/BruksfildServices01/elite-admin/internal/usecase/job"
	"github.com/BruksfildServices01/elite-admin/internal/web"
)

// Deps are the process-wide singletons built in cmd/api.
type Deps struct {
	DB    *gorm.DB
	Audit *audit.Dispatcher

	Issuer  *auth.Issuer
	Revoker auth.Revoker
	Cookie  handlers.CookieSettings

	Location *time.Location
	Logo     *quote.Logo
	// Archive is nil when quotes are not archived.
	Archive storage.Archive

	CORSOrigins []string
}

func RegisterRoutes(r *gin.Engine, d Deps) error {

	// ======================================================
	// TEMPLATES / STATIC
	// ======================================================
	tmpl, err := web.Templates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(web.Static()))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	jobRepo := infraRepo.NewJobGormRepository(d.DB)
	employeeRepo := infraRepo.NewEmployeeGormRepository(d.DB)

	authenticator := auth.NewAuthenticator(employeeRepo, d.Issuer, d.Revoker)

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware(d.CORSOrigins))
	r.Use(middleware.SessionGate(authenticator, d.Cookie.Name))

	// ======================================================
	// SERVICES: ENTITIES
	// ======================================================
	clientSvc := crud.NewService[models.Client](
		infraRepo.NewCrudGormRepository[models.Client](d.DB, resource.Clients).
			WithInUseCode(httperr.CodeClientInUse),
		resource.Clients,
		d.Audit,
		crud.ClientHooks(jobRepo),
	)

	employeeSvc := crud.NewService[models.Employee](
		infraRepo.NewCrudGormRepository[models.Employee](d.DB, resource.Employees),
		resource.Employees,
		d.Audit,
		crud.EmployeeHooks(),
	)

	machinerySvc := crud.NewService[models.Machinery](
		infraRepo.NewCrudGormRepository[models.Machinery](d.DB, resource.Machinery),
		resource.Machinery,
		d.Audit,
		crud.Hooks[models.Machinery]{},
	)

	supplySvc := crud.NewService[models.Supply](
		infraRepo.NewCrudGormRepository[models.Supply](d.DB, resource.Supplies),
		resource.Supplies,
		d.Audit,
		crud.Hooks[models.Supply]{},
	)

	scheduledJobSvc := crud.NewService[models.ScheduledJob](
		infraRepo.NewCrudGormRepository[models.ScheduledJob](d.DB, resource.ScheduledJobs),
		resource.ScheduledJobs,
		d.Audit,
		crud.Hooks[models.ScheduledJob]{},
	)

	workedJobSvc := crud.NewService[models.WorkedJob](
		infraRepo.NewCrudGormRepository[models.WorkedJob](d.DB, resource.WorkedJobs),
		resource.WorkedJobs,
		d.Audit,
		crud.WorkedJobHooks(),
	)

	// ======================================================
	// USE CASES: JOBS
	// ======================================================
	finishUC := ucJob.NewFinishAndBill(jobRepo, d.Audit)
	calendarUC := ucJob.NewCalendarMonth(jobRepo, d.Location)

	// ======================================================
	// HANDLERS
	// ======================================================
	appWebHandler := handlers.NewAppWebHandler([]handlers.ResourcePage{
		{Path: "/clients", Title: "Clientes", API: "/api/clients", Columns: handlers.ClientColumns, Search: handlers.Searcher(clientSvc)},
		{Path: "/employees", Title: "Empleados", API: "/api/employees", Columns: handlers.EmployeeColumns, Search: handlers.Searcher(employeeSvc)},
		{Path: "/machinery", Title: "Maquinaria", API: "/api/machinery", Columns: handlers.MachineryColumns, Search: handlers.Searcher(machinerySvc)},
		{Path: "/supplies", Title: "Insumos", API: "/api/supplies", Columns: handlers.SupplyColumns, Search: handlers.Searcher(supplySvc)},
		{Path: "/worked-jobs", Title: "Trabajos realizados", API: "/api/worked-jobs", Columns: handlers.WorkedJobColumns, Search: handlers.Searcher(workedJobSvc)},
	}, calendarUC, clientSvc, d.Location)

	authHandler := handlers.NewAuthHandler(authenticator, d.Cookie, appWebHandler)
	scheduledJobHandler := handlers.NewScheduledJobHandler(finishUC, calendarUC)
	quoteHandler := handlers.NewQuoteHandler(quote.NewRenderer(d.Logo), d.Archive, d.Location)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	// ======================================================
	// WEB (HTML)
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	appWebHandler.Register(r)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/auth/session", authHandler.Session)

		handlers.NewCrudHandler(clientSvc).Register(api, "/clients")
		handlers.NewCrudHandler(employeeSvc).Register(api, "/employees")
		handlers.NewCrudHandler(machinerySvc).Register(api, "/machinery")
		handlers.NewCrudHandler(supplySvc).Register(api, "/supplies")
		handlers.NewCrudHandler(workedJobSvc).Register(api, "/worked-jobs")

		handlers.NewCrudHandler(scheduledJobSvc).
			WithDeleteMessage("Job deleted successfully").
			Register(api, "/scheduled-jobs")
		api.POST("/scheduled-jobs/finish", scheduledJobHandler.Finish)
		api.GET("/scheduled-jobs/calendar", scheduledJobHandler.Calendar)

		api.POST("/quotes/pdf", quoteHandler.PDF)
		api.GET("/audit-logs", auditLogsHandler.List)
	}

	return nil
}
