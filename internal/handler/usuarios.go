package handler

import (
	"net/http"

	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/apierror"
	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type UsuariosHandler struct{ svc service.UsuarioService }

func NewUsuariosHandler(svc service.UsuarioService) *UsuariosHandler {
	return &UsuariosHandler{svc: svc}
}

// ListarUsuarios GET /v1/usuarios
func (h *UsuariosHandler) ListarUsuarios(c *gin.Context) {
	resp, err := h.svc.ListarUsuarios(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar usuarios"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
