package handler

import (
	"net/http"

	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/apierror"
	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type CatalogosHandler struct{ svc service.CatalogoService }

func NewCatalogosHandler(svc service.CatalogoService) *CatalogosHandler {
	return &CatalogosHandler{svc: svc}
}

// ListarMonedas GET /v1/catalogos/monedas
func (h *CatalogosHandler) ListarMonedas(c *gin.Context) {
	resp, err := h.svc.ListarMonedas(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar monedas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarTiposDocumento GET /v1/catalogos/tipos-documento
func (h *CatalogosHandler) ListarTiposDocumento(c *gin.Context) {
	resp, err := h.svc.ListarTiposDocumento(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar tipos de documento"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarTiposLote GET /v1/catalogos/tipos-lote
func (h *CatalogosHandler) ListarTiposLote(c *gin.Context) {
	resp, err := h.svc.ListarTiposLote(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar tipos de lote"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarEstadosLote GET /v1/catalogos/estados-lote
func (h *CatalogosHandler) ListarEstadosLote(c *gin.Context) {
	resp, err := h.svc.ListarEstadosLote(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar estados de lote"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarEstadosVenta GET /v1/catalogos/estados-venta
func (h *CatalogosHandler) ListarEstadosVenta(c *gin.Context) {
	resp, err := h.svc.ListarEstadosVenta(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar estados de venta"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarRoles GET /v1/catalogos/roles
func (h *CatalogosHandler) ListarRoles(c *gin.Context) {
	resp, err := h.svc.ListarRoles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar roles"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
