package handler

import (
	"errors"
	"net/http"

	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/apierror"
	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UbigeoHandler struct{ svc service.UbigeoService }

func NewUbigeoHandler(svc service.UbigeoService) *UbigeoHandler {
	return &UbigeoHandler{svc: svc}
}

// ListarDepartamentos GET /v1/departamentos
func (h *UbigeoHandler) ListarDepartamentos(c *gin.Context) {
	resp, err := h.svc.ListarDepartamentos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar departamentos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarProvincias GET /v1/departamentos/:id/provincias
func (h *UbigeoHandler) ListarProvincias(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ListarProvincias(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Departamento no encontrado"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar provincias"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarDistritos GET /v1/provincias/:id/distritos
func (h *UbigeoHandler) ListarDistritos(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ListarDistritos(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Provincia no encontrada"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar distritos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
