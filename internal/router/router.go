package router

import (
	"time"

	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/config"
	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/handler"
	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/middleware"
	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/repository"
	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
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
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	departamentoRepo := repository.NewDepartamentoRepository(db)
	provinciaRepo := repository.NewProvinciaRepository(db)
	distritoRepo := repository.NewDistritoRepository(db)
	monedaRepo := repository.NewMonedaRepository(db)
	tipoDocumentoRepo := repository.NewTipoDocumentoRepository(db)
	tipoLoteRepo := repository.NewTipoLoteRepository(db)
	estadoLoteRepo := repository.NewEstadoLoteRepository(db)
	estadoVentaRepo := repository.NewEstadoVentaRepository(db)
	rolRepo := repository.NewRolRepository(db)
	loteRepo := repository.NewLoteRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	ubigeoSvc := service.NewUbigeoService(departamentoRepo, provinciaRepo, distritoRepo)
	catalogoSvc := service.NewCatalogoService(monedaRepo, tipoDocumentoRepo, tipoLoteRepo, estadoLoteRepo, estadoVentaRepo, rolRepo)
	inventarioSvc := service.NewInventarioService(loteRepo, clienteRepo, ventaRepo)
	usuarioSvc := service.NewUsuarioService(usuarioRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	ubigeoHandler := handler.NewUbigeoHandler(ubigeoSvc)
	catalogosHandler := handler.NewCatalogosHandler(catalogoSvc)
	inventarioHandler := handler.NewInventarioHandler(inventarioSvc)
	usuariosHandler := handler.NewUsuariosHandler(usuarioSvc)

	r.GET("/health", handler.Health(db))

	v1 := r.Group("/v1")
	{
		v1.GET("/departamentos", ubigeoHandler.ListarDepartamentos)
		v1.GET("/departamentos/:id/provincias", ubigeoHandler.ListarProvincias)
		v1.GET("/provincias/:id/distritos", ubigeoHandler.ListarDistritos)

		catalogos := v1.Group("/catalogos")
		{
			catalogos.GET("/monedas", catalogosHandler.ListarMonedas)
			catalogos.GET("/tipos-documento", catalogosHandler.ListarTiposDocumento)
			catalogos.GET("/tipos-lote", catalogosHandler.ListarTiposLote)
			catalogos.GET("/estados-lote", catalogosHandler.ListarEstadosLote)
			catalogos.GET("/estados-venta", catalogosHandler.ListarEstadosVenta)
			catalogos.GET("/roles", catalogosHandler.ListarRoles)
		}

		v1.GET("/lotes", inventarioHandler.ListarLotes)
		v1.GET("/clientes", inventarioHandler.ListarClientes)
		v1.GET("/ventas", inventarioHandler.ListarVentas)
		v1.GET("/usuarios", usuariosHandler.ListarUsuarios)
	}

	return r
}
