package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/opsdeck/admin-dashboard/internal/core/ports"
)

// LogHandler serves the admin-only audit log listing.
type LogHandler struct {
	auditService ports.AuditService
}

func NewLogHandler(auditService ports.AuditService) *LogHandler {
	return &LogHandler{auditService: auditService}
}

type logResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	User      string    `json:"user"`
	Timestamp time.Time `json:"timestamp"`
}

// List returns the 50 most recent audit events, newest first.
//
// @Summary      List audit log entries
// @Tags         logs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   logResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /logs [get]
func (h *LogHandler) List(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	views, err := h.auditService.ListRecent(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	resp := make([]logResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, logResponse{
			ID:        v.ID,
			Message:   v.Message,
			User:      v.Actor,
			Timestamp: v.Timestamp,
		})
	}
	return c.JSON(http.StatusOK, resp)
}
