package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shopservice/internal/app/dto"
	"shopservice/internal/domain"
	"shopservice/internal/domain/member"
)

type memberForm struct {
	Name    string `form:"name" binding:"required"`
	City    string `form:"city"`
	Street  string `form:"street"`
	Zipcode string `form:"zipcode"`
}

func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", nil)
}

func (h *Handler) MemberList(c *gin.Context) {
	members, err := h.MemberSvc.List(c.Request.Context())
	if err != nil {
		h.pageError(c, err)
		return
	}
	c.HTML(http.StatusOK, "member-list.html", gin.H{
		"Members": dto.NewMembers(members),
	})
}

func (h *Handler) MemberCreateForm(c *gin.Context) {
	h.renderMemberForm(c, http.StatusOK, memberForm{}, "")
}

// MemberCreate redirects home on success and re-renders the form, keeping
// what was typed, when the input is rejected.
func (h *Handler) MemberCreate(c *gin.Context) {
	var form memberForm
	if err := c.ShouldBind(&form); err != nil || strings.TrimSpace(form.Name) == "" {
		h.renderMemberForm(c, http.StatusBadRequest, form, "member name is required")
		return
	}

	_, err := h.MemberSvc.Join(c.Request.Context(), member.Member{
		Username: form.Name,
		Address:  domain.NewAddress(form.City, form.Street, form.Zipcode),
	})
	if err != nil {
		var de *domain.DomainError
		if errors.As(err, &de) {
			h.renderMemberForm(c, de.HTTPStatus, form, de.Message)
			return
		}
		h.pageError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) renderMemberForm(c *gin.Context, status int, form memberForm, msg string) {
	c.HTML(status, "create-member-form.html", gin.H{
		"Form":  form,
		"Error": msg,
	})
}

func (h *Handler) pageError(c *gin.Context, err error) {
	h.Log.Error("page error", zap.Error(err), zap.String("path", c.FullPath()))
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"Message": "internal server error",
	})
}
