package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"shopservice/internal/app/dto"
	"shopservice/internal/domain"
	"shopservice/internal/domain/member"
)

func (h *Handler) MemberJoin(c *gin.Context) {
	var body dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}
	if strings.TrimSpace(body.Username) == "" {
		h.badRequest(c, "username is required")
		return
	}

	m, err := h.MemberSvc.Join(c.Request.Context(), member.Member{
		Username: body.Username,
		Age:      body.Age,
		TeamID:   body.TeamID,
		Address:  body.Address.ToDomain(),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewMember(m))
}

func (h *Handler) MemberGet(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	m, found, err := h.MemberSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if !found {
		h.writeError(c, domain.NotFound("member"))
		return
	}

	c.JSON(http.StatusOK, dto.NewMember(m))
}

func (h *Handler) MemberIndex(c *gin.Context) {
	members, err := h.MemberSvc.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewResult(dto.NewMembers(members)))
}

func (h *Handler) MemberSearch(c *gin.Context) {
	q := member.Query{Username: c.Query("username")}

	var ok bool
	if q.Age, ok = h.optionalInt(c, "age"); !ok {
		return
	}
	if q.AgeGreaterThan, ok = h.optionalInt(c, "ageGreaterThan"); !ok {
		return
	}

	members, err := h.MemberSvc.Search(c.Request.Context(), q)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewResult(dto.NewMembers(members)))
}

func (h *Handler) MemberUsernames(c *gin.Context) {
	names, err := h.MemberSvc.Usernames(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewResult(names))
}

func (h *Handler) MemberTeams(c *gin.Context) {
	views, err := h.MemberSvc.TeamViews(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewResult(dto.NewMemberTeams(views)))
}

func (h *Handler) optionalInt(c *gin.Context, key string) (*int, bool) {
	raw, present := c.GetQuery(key)
	if !present || raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		h.badRequest(c, key+" must be an integer")
		return nil, false
	}
	return &v, true
}
