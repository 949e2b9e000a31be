package router

import (
	"time"

	"github.com/Dadminete/dbsismovil/internal/config"
	"github.com/Dadminete/dbsismovil/internal/handler"
	"github.com/Dadminete/dbsismovil/internal/infra"
	"github.com/Dadminete/dbsismovil/internal/middleware"
	"github.com/Dadminete/dbsismovil/internal/repository"
	"github.com/Dadminete/dbsismovil/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, fotos *infra.FotoStorage) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(600, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	facturaRepo := repository.NewFacturaRepository(db)
	pagoRepo := repository.NewPagoRepository(db)
	cajaRepo := repository.NewCajaRepository(db)
	bancoRepo := repository.NewBancoRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	movimientoRepo := repository.NewMovimientoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	clienteSvc := service.NewClienteService(clienteRepo, fotos)
	finanzasSvc := service.NewFinanzasService(movimientoRepo, cajaRepo, bancoRepo, categoriaRepo)
	pagoSvc := service.NewPagoService(pagoRepo, facturaRepo, cajaRepo)
	reporteSvc := service.NewReporteService(clienteRepo, facturaRepo, pagoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	secure := cfg.Env == "production"
	authH := handler.NewAuthHandler(authSvc, secure)
	clientesH := handler.NewClientesHandler(clienteSvc, facturaRepo)
	facturasH := handler.NewFacturasHandler(facturaRepo)
	finanzasH := handler.NewFinanzasHandler(finanzasSvc, rdb)
	pagosH := handler.NewPagosHandler(pagoSvc)
	catalogosH := handler.NewCatalogosHandler(cajaRepo, bancoRepo)
	reportesH := handler.NewReportesHandler(reporteSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.Static(cfg.UploadPublicURL, cfg.UploadDir)

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/biometric", middleware.LoginRateLimiter(), authH.Biometric)
	}

	// Protected routes — one shared session per device, no roles
	session := middleware.SessionAuth(cfg.SessionSecret, usuarioRepo)
	api := r.Group("/api", session)
	{
		api.POST("/auth/logout", authH.Logout)

		api.GET("/clients", clientesH.Listar)
		api.GET("/clients/:id", clientesH.Obtener)
		api.PATCH("/clients/:id", clientesH.Actualizar)
		api.GET("/clients/:id/invoices", clientesH.ListarFacturas)

		api.PATCH("/invoices/:id", facturasH.Actualizar)

		api.POST("/payments", pagosH.Registrar)

		fin := api.Group("/finance")
		{
			fin.POST("/transactions", finanzasH.RegistrarTransaccion)
			fin.GET("/daily-summary", finanzasH.DailySummary)
			fin.GET("/form-data", finanzasH.FormData)
		}

		api.GET("/cajas", catalogosH.ListarCajas)
		api.GET("/banks", catalogosH.ListarBancos)

		api.GET("/stats", reportesH.Stats)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
