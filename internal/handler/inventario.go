package handler

import (
	"net/http"

	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/apierror"
	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type InventarioHandler struct{ svc service.InventarioService }

func NewInventarioHandler(svc service.InventarioService) *InventarioHandler {
	return &InventarioHandler{svc: svc}
}

// ListarLotes GET /v1/lotes
func (h *InventarioHandler) ListarLotes(c *gin.Context) {
	resp, err := h.svc.ListarLotes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar lotes"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarClientes GET /v1/clientes
func (h *InventarioHandler) ListarClientes(c *gin.Context) {
	resp, err := h.svc.ListarClientes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar clientes"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarVentas GET /v1/ventas
func (h *InventarioHandler) ListarVentas(c *gin.Context) {
	resp, err := h.svc.ListarVentas(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar ventas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
