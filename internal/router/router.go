package router

import (
	"time"

	"livrocaixa/internal/config"
	"livrocaixa/internal/handler"
	"livrocaixa/internal/middleware"
	"livrocaixa/internal/model"
	"livrocaixa/internal/repository"
	"livrocaixa/internal/service"

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
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	livroRepo := repository.NewLivroRepository(db)
	contaRepo := repository.NewContaRepository(db)
	movimentoRepo := repository.NewMovimentoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	livroSvc := service.NewLivroService(livroRepo)
	contaSvc := service.NewContaService(contaRepo)
	movimentoSvc := service.NewMovimentoService(movimentoRepo, contaRepo)
	dashboardSvc := service.NewDashboardService(livroRepo, movimentoRepo, contaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	caixaH := handler.NewLivroHandler(livroSvc, model.LivroCaixa, "Caixa")
	bancoH := handler.NewLivroHandler(livroSvc, model.LivroBanco, "Banco")
	clientesH := handler.NewContasHandler(contaSvc, model.ContaCliente)
	fornecedoresH := handler.NewContasHandler(contaSvc, model.ContaFornecedor)
	movClientesH := handler.NewMovimentosHandler(movimentoSvc, contaSvc, model.ContaCliente)
	movFornecedoresH := handler.NewMovimentosHandler(movimentoSvc, contaSvc, model.ContaFornecedor)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(rdb, 20, time.Minute), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes — single shared admin, no role tiers
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/dashboard", dashboardH.Snapshot)

		caixa := v1.Group("/caixa")
		{
			caixa.GET("", caixaH.Listar)
			caixa.POST("", caixaH.Criar)
			caixa.PUT("/:id", caixaH.Actualizar)
			caixa.DELETE("/:id", caixaH.Eliminar)
			caixa.GET("/extrato", caixaH.Extrato)
		}

		bancos := v1.Group("/bancos")
		{
			bancos.GET("", bancoH.Listar)
			bancos.POST("", bancoH.Criar)
			bancos.PUT("/:id", bancoH.Actualizar)
			bancos.DELETE("/:id", bancoH.Eliminar)
			bancos.GET("/extrato", bancoH.Extrato)
		}

		clientes := v1.Group("/clientes")
		{
			clientes.GET("", clientesH.Listar)
			clientes.POST("", clientesH.Criar)
			clientes.PUT("/:id", clientesH.Actualizar)
			clientes.DELETE("/:id", clientesH.Eliminar)
			clientes.GET("/:id/resumo", movClientesH.Resumo)
			clientes.GET("/:id/extrato", movClientesH.Extrato)
			clientes.GET("/:id/movimentos", movClientesH.Listar)
			clientes.POST("/:id/movimentos", movClientesH.Criar)
			clientes.PUT("/:id/movimentos/:mid", movClientesH.Actualizar)
			clientes.DELETE("/:id/movimentos/:mid", movClientesH.Eliminar)
		}

		fornecedores := v1.Group("/fornecedores")
		{
			fornecedores.GET("", fornecedoresH.Listar)
			fornecedores.POST("", fornecedoresH.Criar)
			fornecedores.PUT("/:id", fornecedoresH.Actualizar)
			fornecedores.DELETE("/:id", fornecedoresH.Eliminar)
			fornecedores.GET("/:id/resumo", movFornecedoresH.Resumo)
			fornecedores.GET("/:id/extrato", movFornecedoresH.Extrato)
			fornecedores.GET("/:id/movimentos", movFornecedoresH.Listar)
			fornecedores.POST("/:id/movimentos", movFornecedoresH.Criar)
			fornecedores.PUT("/:id/movimentos/:mid", movFornecedoresH.Actualizar)
			fornecedores.DELETE("/:id/movimentos/:mid", movFornecedoresH.Eliminar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
