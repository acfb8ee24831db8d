package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shopservice/internal/app/dto"
)

func (h *Handler) TeamCreate(c *gin.Context) {
	var body dto.CreateTeamRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}
	if strings.TrimSpace(body.Name) == "" {
		h.badRequest(c, "name is required")
		return
	}

	t, err := h.TeamSvc.Create(c.Request.Context(), body.Name)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Team{ID: t.ID, Name: t.Name})
}

func (h *Handler) TeamList(c *gin.Context) {
	teams, err := h.TeamSvc.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewResult(dto.NewTeams(teams)))
}
