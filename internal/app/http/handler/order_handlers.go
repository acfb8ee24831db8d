package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shopservice/internal/app/dto"
	"shopservice/internal/domain/order"
)

const roundTripsHeader = "X-Query-Round-Trips"

func orderSearch(c *gin.Context) order.Search {
	return order.Search{
		MemberName: strings.TrimSpace(c.Query("memberName")),
		Status:     order.Status(strings.ToUpper(strings.TrimSpace(c.Query("orderStatus")))),
	}
}

func (h *Handler) reportRoundTrips(c *gin.Context, strategy string, rows, trips int) {
	c.Header(roundTripsHeader, strconv.Itoa(trips))
	h.Log.Debug("order listing",
		zap.String("strategy", strategy),
		zap.Int("rows", rows),
		zap.Int("round_trips", trips),
	)
}

// OrdersV1 serves the full order graphs as a bare array.
func (h *Handler) OrdersV1(c *gin.Context) {
	res, err := h.OrderSvc.ListGraphs(c.Request.Context(), orderSearch(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.reportRoundTrips(c, "graph", len(res.Items), res.RoundTrips)
	c.JSON(http.StatusOK, dto.NewOrderDetails(res.Items))
}

func (h *Handler) OrdersV2(c *gin.Context) {
	h.simpleOrders(c, "naive", h.OrderSvc.ListNaive)
}

func (h *Handler) OrdersV3(c *gin.Context) {
	h.simpleOrders(c, "fetch_join", h.OrderSvc.ListFetchJoin)
}

func (h *Handler) OrdersV4(c *gin.Context) {
	h.simpleOrders(c, "projection", h.OrderSvc.ListSimpleViews)
}

type simpleLister func(ctx context.Context, search order.Search) (order.Listing[order.SimpleView], error)

func (h *Handler) simpleOrders(c *gin.Context, strategy string, list simpleLister) {
	res, err := list(c.Request.Context(), orderSearch(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.reportRoundTrips(c, strategy, len(res.Items), res.RoundTrips)
	c.JSON(http.StatusOK, dto.NewResult(dto.NewSimpleOrders(res.Items)))
}

func (h *Handler) OrderPlace(c *gin.Context) {
	var body dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}
	if body.MemberID <= 0 {
		h.badRequest(c, "memberId is required")
		return
	}

	o, err := h.OrderSvc.Place(c.Request.Context(), body.MemberID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewOrder(o))
}

func (h *Handler) OrderCancel(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	o, err := h.OrderSvc.Cancel(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrder(o))
}

func (h *Handler) OrderDeliver(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	d, err := h.OrderSvc.CompleteDelivery(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDelivery(d))
}
