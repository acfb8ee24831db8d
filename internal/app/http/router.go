package httpapi

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shopservice/internal/app/http/handler"
	"shopservice/internal/app/http/middleware"
	"shopservice/internal/app/http/views"
)

func NewRouter(h *handler.Handler, log *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.ZapLogger(log),
		middleware.ZapRecovery(log),
	)
	r.SetHTMLTemplate(views.Templates())

	r.GET("/health", h.Health)

	r.GET("/", h.Home)
	r.GET("/members", h.MemberList)
	r.GET("/members/new", h.MemberCreateForm)
	r.POST("/members/new", h.MemberCreate)

	api := r.Group("/api")

	api.GET("/v1/simple-orders", h.OrdersV1)
	api.GET("/v2/simple-orders", h.OrdersV2)
	api.GET("/v3/simple-orders", h.OrdersV3)
	api.GET("/v4/simple-orders", h.OrdersV4)

	api.POST("/orders", h.OrderPlace)
	api.POST("/orders/:id/cancel", h.OrderCancel)
	api.POST("/orders/:id/deliver", h.OrderDeliver)

	api.GET("/members", h.MemberIndex)
	api.POST("/members", h.MemberJoin)
	api.GET("/members/search", h.MemberSearch)
	api.GET("/members/usernames", h.MemberUsernames)
	api.GET("/members/teams", h.MemberTeams)
	api.GET("/members/:id", h.MemberGet)

	api.GET("/teams", h.TeamList)
	api.POST("/teams", h.TeamCreate)

	return r
}
