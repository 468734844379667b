package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/padelmatch-backend/internal/domain/entities"
	"github.com/rafabene/padelmatch-backend/internal/domain/errors"
	"github.com/rafabene/padelmatch-backend/internal/handlers/dto"
	"github.com/rafabene/padelmatch-backend/internal/handlers/middleware"
)

// uintParam lê um id do path; ids inválidos respondem 422
func uintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || id == 0 {
		dto.Error(c, errors.ErrValidation.WithField(name, "validation.invalid"))
		return 0, false
	}
	return uint(id), true
}

// currentUser retorna o usuário autenticado ou responde 401
func currentUser(c *gin.Context) (*entities.User, bool) {
	user := middleware.CurrentUser(c)
	if user == nil {
		dto.Error(c, errors.ErrUnauthenticated)
		return nil, false
	}
	return user, true
}
