package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbearia-api/internal/audit"
	"github.com/BruksfildServices01/barbearia-api/internal/config"
	"github.com/BruksfildServices01/barbearia-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barbearia-api/internal/infra/repository"
	"github.com/BruksfildServices01/barbearia-api/internal/middleware"
	"github.com/BruksfildServices01/barbearia-api/internal/throttle"
	"github.com/BruksfildServices01/barbearia-api/internal/timezone"
	"github.com/BruksfildServices01/barbearia-api/internal/token"
	ucAppointment "github.com/BruksfildServices01/barbearia-api/internal/usecase/appointment"
	ucAuth "github.com/BruksfildServices01/barbearia-api/internal/usecase/auth"
	ucBarber "github.com/BruksfildServices01/barbearia-api/internal/usecase/barber"
	ucCatalog "github.com/BruksfildServices01/barbearia-api/internal/usecase/catalog"
	ucClient "github.com/BruksfildServices01/barbearia-api/internal/usecase/client"
	ucReview "github.com/BruksfildServices01/barbearia-api/internal/usecase/review"
	"github.com/BruksfildServices01/barbearia-api/internal/validators"
)

type Deps struct {
	DB       *gorm.DB
	Pinger   handlers.Pinger
	Config   *config.Config
	Log      *zap.Logger
	Throttle throttle.LoginThrottle
	Audit    *audit.Dispatcher
	AuditLog *audit.Logger
}

// NewEngine monta o gin com os middlewares globais.
func NewEngine(cfg *config.Config, log *zap.Logger) (*gin.Engine, error) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validators.RegisterAll(v); err != nil {
			return nil, fmt.Errorf("register validators: %w", err)
		}
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RecoveryMiddleware(log))
	r.Use(middleware.LoggerMiddleware(log))
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins()))
	r.Use(middleware.RateLimitMiddleware(cfg.RateLimitPerMinute, log))

	return r, nil
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	clientRepo := infraRepo.NewClientGormRepository(d.DB)
	barberRepo := infraRepo.NewBarberGormRepository(d.DB)
	serviceRepo := infraRepo.NewServiceGormRepository(d.DB)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	reviewRepo := infraRepo.NewReviewGormRepository(d.DB)
	authRepo := infraRepo.NewAuthGormRepository(d.DB)

	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL())

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	clientUC := ucClient.New(clientRepo)
	barberUC := ucBarber.New(barberRepo)
	catalogUC := ucCatalog.New(serviceRepo)

	appointmentUC := ucAppointment.New(
		appointmentRepo,
		d.Audit,
		d.Log,
		ucAppointment.Options{
			Location:     timezone.Location(cfg.Timezone),
			StrictStatus: cfg.StrictStatusTransitions,
		},
	)

	reviewUC := ucReview.New(reviewRepo, d.Audit, d.Log)

	authUC := ucAuth.New(
		authRepo,
		tokens,
		d.Throttle,
		d.Audit,
		d.Log,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	clientHandler := handlers.NewClientHandler(clientUC)
	barberHandler := handlers.NewBarberHandler(barberUC)
	serviceHandler := handlers.NewServiceHandler(catalogUC)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentUC)
	reviewHandler := handlers.NewReviewHandler(reviewUC)
	authHandler := handlers.NewAuthHandler(authUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLog)
	healthHandler := handlers.NewHealthHandler(d.Pinger)

	// ======================================================
	// ❤️ HEALTH
	// ======================================================
	r.GET("/health", healthHandler.Check)

	// ======================================================
	// 🔐 AUTH
	// ======================================================
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/cliente/login", authHandler.LoginClient)
		authGroup.GET("/me", middleware.AuthMiddleware(tokens), authHandler.Me)
	}

	// ======================================================
	// 👤 CLIENTES
	// ======================================================
	clientes := r.Group("/clientes")
	{
		clientes.POST("", clientHandler.Create)
		clientes.GET("", clientHandler.List)
		clientes.GET("/:id", clientHandler.Get)
		clientes.PUT("/:id", clientHandler.Update)
		clientes.DELETE("/:id", clientHandler.Delete)
	}

	// ======================================================
	// ✂️ BARBEIROS
	// ======================================================
	barbeiros := r.Group("/barbeiros")
	{
		barbeiros.POST("", barberHandler.Create)
		barbeiros.GET("", barberHandler.List)
		barbeiros.GET("/:id", barberHandler.Get)
		barbeiros.PUT("/:id", barberHandler.Update)
		barbeiros.DELETE("/:id", barberHandler.Delete)
	}

	// ======================================================
	// 💈 SERVIÇOS
	// ======================================================
	servicos := r.Group("/servicos")
	{
		servicos.POST("", serviceHandler.Create)
		servicos.GET("", serviceHandler.List)
		servicos.GET("/:id", serviceHandler.Get)
		servicos.PUT("/:id", serviceHandler.Update)
		servicos.DELETE("/:id", serviceHandler.Delete)
	}

	// ======================================================
	// 📅 AGENDAMENTOS
	// ======================================================
	agendamentos := r.Group("/agendamentos")
	{
		agendamentos.POST("", appointmentHandler.Create)
		agendamentos.GET("", appointmentHandler.List)
		agendamentos.GET("/cliente/:clienteId", appointmentHandler.ListByClient)
		agendamentos.GET("/:id", appointmentHandler.Get)
		agendamentos.PUT("/:id", appointmentHandler.Update)
		agendamentos.DELETE("/:id", appointmentHandler.Delete)
	}

	// ======================================================
	// ⭐ AVALIAÇÕES
	// ======================================================
	avaliacoes := r.Group("/avaliacoes")
	{
		avaliacoes.POST("", reviewHandler.Create)
		avaliacoes.GET("", reviewHandler.List)
		avaliacoes.GET("/:id", reviewHandler.Get)
		avaliacoes.PUT("/:id", reviewHandler.Update)
		avaliacoes.DELETE("/:id", reviewHandler.Delete)
	}

	// ======================================================
	// 📜 AUDIT LOGS
	// ======================================================
	r.GET("/audit-logs", auditLogsHandler.List)
}
