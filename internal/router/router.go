package router

import (
	"time"

	"github.com/CarlosLeonGaleas/EventRegistration/internal/config"
	"github.com/CarlosLeonGaleas/EventRegistration/internal/handler"
	"github.com/CarlosLeonGaleas/EventRegistration/internal/middleware"
	"github.com/CarlosLeonGaleas/EventRegistration/internal/repository"
	"github.com/CarlosLeonGaleas/EventRegistration/internal/service"
	"github.com/CarlosLeonGaleas/EventRegistration/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
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
	r.Use(middleware.RateLimiter(300, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	participanteRepo := repository.NewParticipanteRepository(db)
	eventoRepo := repository.NewEventoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	// Dispatcher — enqueues best-effort ticket deliveries after issuance
	dispatcher := worker.NewDispatcher(rdb)
	registroSvc := service.NewRegistroService(participanteRepo, eventoRepo, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	registroH := handler.NewRegistroHandler(registroSvc, participanteRepo)
	ticketsH := handler.NewTicketsHandler(participanteRepo, eventoRepo)
	eventosH := handler.NewEventosHandler(eventoRepo)

	// ── Routes ───────────────────────────────────────────────────────────────
	// Everything is public: registration has no authentication by design.

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		eventos := v1.Group("/eventos/:evento")
		{
			eventos.GET("", eventosH.Obtener)
			eventos.POST("/registros", middleware.RegistroRateLimiter(), registroH.Registrar)
			eventos.GET("/registros/:id", registroH.Obtener)
			eventos.GET("/registros/:id/ticket.png", ticketsH.DescargarPNG)
			eventos.GET("/registros/:id/ticket.pdf", ticketsH.DescargarPDF)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
