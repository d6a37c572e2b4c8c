package orderpulseserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	fulfillmenthttpmapper "github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/adapters/http/mapper"
	fulfillmentapp "github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/application"
	fulfillmentdomain "github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/domain"
	fulfillmentports "github.com/Sonali1020/order-pulse-commerce/internal/domains/fulfillment/ports"
	ordersdomain "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/domain"
	apierrors "github.com/Sonali1020/order-pulse-commerce/internal/shared/errors"
)

// FulfillmentAPI wires HTTP transport with the fulfillment bounded context
// service.
type FulfillmentAPI struct {
	service fulfillmentports.Service
}

// NewFulfillmentAPI creates a FulfillmentAPI backed by the provided service.
func NewFulfillmentAPI(service fulfillmentports.Service) FulfillmentAPI {
	return FulfillmentAPI{service: service}
}

// Post /v1/fulfillment
// Seed a fully formed fulfillment order into the collection
func (api *FulfillmentAPI) CreateOrder(c *gin.Context) {
	var payload fulfillmenthttpmapper.Order
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	order, err := fulfillmenthttpmapper.ToDomainOrder(payload)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	saved, err := api.service.SeedOrder(c.Request.Context(), order)
	if err != nil {
		respondFulfillmentServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fulfillmenthttpmapper.FromDomainOrder(saved))
}

// Get /v1/fulfillment
// List fulfillment orders matching the search term, status, and priority
func (api *FulfillmentAPI) ListOrders(c *gin.Context) {
	query := fulfillmentdomain.Query{
		Term:     c.Query("q"),
		Status:   ordersdomain.StatusFilterFrom(c.Query("status")),
		Priority: fulfillmentdomain.PriorityFilterFrom(c.Query("priority")),
	}
	orders, err := api.service.ListOrders(c.Request.Context(), query)
	if err != nil {
		respondFulfillmentServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fulfillmenthttpmapper.FromDomainOrderList(orders))
}

// Get /v1/fulfillment/stats
// Aggregate the board rollup; overdue is evaluated at request time
func (api *FulfillmentAPI) BoardStats(c *gin.Context) {
	stats, err := api.service.BoardStats(c.Request.Context(), time.Now())
	if err != nil {
		respondFulfillmentServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fulfillmenthttpmapper.FromStats(stats))
}

// Get /v1/fulfillment/:orderId
// Find fulfillment order by ID
func (api *FulfillmentAPI) GetOrderById(c *gin.Context) {
	order, err := api.service.GetOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		respondFulfillmentServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fulfillmenthttpmapper.FromDomainOrder(order))
}

// Post /v1/fulfillment/:orderId/transition
// Move the fulfillment order to the requested status
func (api *FulfillmentAPI) TransitionOrder(c *gin.Context) {
	var payload TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	target, err := ordersdomain.ParseStatus(payload.Status)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	updated, err := api.service.RequestTransition(c.Request.Context(), c.Param("orderId"), target)
	if err != nil {
		respondFulfillmentServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fulfillmenthttpmapper.FromDomainOrder(updated))
}

// Post /v1/fulfillment/:orderId/advance
// Apply the forward lifecycle progression
func (api *FulfillmentAPI) AdvanceOrder(c *gin.Context) {
	updated, err := api.service.AdvanceOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		respondFulfillmentServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fulfillmenthttpmapper.FromDomainOrder(updated))
}

// AssignRequest carries the operator taking over the order.
type AssignRequest struct {
	AssignedTo string `json:"assignedTo" binding:"required"`
}

// Post /v1/fulfillment/:orderId/assign
// Hand the fulfillment order to a warehouse operator
func (api *FulfillmentAPI) AssignOrder(c *gin.Context) {
	var payload AssignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	updated, err := api.service.Assign(c.Request.Context(), c.Param("orderId"), payload.AssignedTo)
	if err != nil {
		respondFulfillmentServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fulfillmenthttpmapper.FromDomainOrder(updated))
}

func respondFulfillmentServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, fulfillmentports.ErrNotFound) {
		respondProblem(c, apierrors.ErrNotFound.WithDetail(err.Error()))
		return
	}
	if errors.Is(err, fulfillmentapp.ErrTransitionRejected) {
		respondProblem(c, apierrors.ErrConflict.WithDetail(err.Error()))
		return
	}
	if errors.Is(err, fulfillmentapp.ErrInvalidInput) {
		respondProblem(c, apierrors.ErrValidation.WithDetail(err.Error()))
		return
	}
	respondProblem(c, apierrors.ErrInternal.WithDetail(err.Error()))
}
