package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"autopredict-web/internal/adapters/primary/http/dto"
	"autopredict-web/internal/core/domain"
)

func statusForError(err error) int {
	switch {
	// Bad request / validation errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidFormToken):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, domain.ErrHandoffNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, domain.ErrSubmissionInProgress):
		return http.StatusConflict

	// Upstream errors
	case errors.Is(err, domain.ErrServer):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrNetwork):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

func mapDomainError(c *gin.Context, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, dto.ErrorResponse{Error: "internal server error"})
		return
	}

	resp := dto.ErrorResponse{Error: err.Error()}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Fields = append(append(resp.Fields, verr.Missing...), verr.Invalid...)
	}
	// upstream details stay in the logs
	switch status {
	case http.StatusBadGateway:
		resp.Error = domain.ErrServer.Error()
	case http.StatusServiceUnavailable:
		resp.Error = domain.ErrNetwork.Error()
	}
	c.JSON(status, resp)
}
