package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sgu-project/sgu-backend/internal/guard"
	"github.com/sgu-project/sgu-backend/internal/repository"
	"github.com/sgu-project/sgu-backend/internal/response"
)

// paramID parses the :id route parameter. On failure it writes the
// error response and returns false.
func paramID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return 0, false
	}
	return id, true
}

// failGuard writes the typed rejection response when err carries a
// guard violation. Returns true when it handled the error.
func failGuard(c *gin.Context, err error) bool {
	var v *guard.Violation
	if !errors.As(err, &v) {
		return false
	}
	status, code := response.FromGuardKind(v.Kind)
	response.FailWithDetail(c, status, code, v.Detail)
	return true
}

// failLookup maps a GetByID error to 404 or 500.
func failLookup(c *gin.Context, err error) {
	if repository.IsNotFound(err) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
}

// failWrite maps a mutation error to a response. Unique and foreign
// key violations from PostgreSQL become conflicts instead of 500s.
func failWrite(c *gin.Context, err error) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		case "23503":
			response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
			return
		}
	}
	if repository.IsNotFound(err) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
}
