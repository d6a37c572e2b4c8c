package orderpulseserver

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	orderhttpmapper "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/adapters/http/mapper"
	ordersapp "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/application"
	ordersdomain "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/domain"
	ordersports "github.com/Sonali1020/order-pulse-commerce/internal/domains/orders/ports"
	apierrors "github.com/Sonali1020/order-pulse-commerce/internal/shared/errors"
)

// OrderAPI wires HTTP transport with the orders bounded context service and
// the dispatch orchestrator.
type OrderAPI struct {
	service     ordersports.Service
	dispatcher  ordersports.Dispatcher
	idempotency ordersports.IdempotencyStore
}

// NewOrderAPI creates an OrderAPI backed by the provided service.
func NewOrderAPI(service ordersports.Service, dispatcher ordersports.Dispatcher, idempotency ordersports.IdempotencyStore) OrderAPI {
	return OrderAPI{service: service, dispatcher: dispatcher, idempotency: idempotency}
}

// Post /v1/orders
// Seed a fully formed order into the collection
func (api *OrderAPI) CreateOrder(c *gin.Context) {
	var payload orderhttpmapper.Order
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	key := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
	var requestHash string
	if key != "" && api.idempotency != nil {
		hash, err := fingerprintOrderPayload(payload)
		if err != nil {
			respondProblem(c, apierrors.ErrInternal.WithDetail(err.Error()))
			return
		}
		requestHash = hash
		record, err := api.idempotency.Get(c.Request.Context(), key)
		if err != nil {
			respondProblem(c, apierrors.ErrInternal.WithDetail(err.Error()))
			return
		}
		if record != nil {
			if record.RequestHash != requestHash {
				respondProblem(c, apierrors.ErrConflict.WithDetail("idempotency key was already used with a different payload"))
				return
			}
			existing, err := api.service.GetOrder(c.Request.Context(), record.OrderID)
			if err != nil {
				respondOrderServiceError(c, err)
				return
			}
			c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(existing))
			return
		}
	}

	order, err := orderhttpmapper.ToDomainOrder(payload)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	saved, err := api.service.SeedOrder(c.Request.Context(), order)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}

	if key != "" && api.idempotency != nil {
		_, err := api.idempotency.Save(c.Request.Context(), ordersports.IdempotencyRecord{
			Key:         key,
			RequestHash: requestHash,
			OrderID:     saved.ID,
		})
		if errors.Is(err, ordersports.ErrIdempotencyConflict) {
			respondProblem(c, apierrors.ErrConflict.WithDetail("idempotency key was already used with a different payload"))
			return
		}
		if err != nil {
			respondProblem(c, apierrors.ErrInternal.WithDetail(err.Error()))
			return
		}
	}

	c.JSON(http.StatusCreated, orderhttpmapper.FromDomainOrder(saved))
}

// Get /v1/orders
// List orders matching the search term and status filter
func (api *OrderAPI) ListOrders(c *gin.Context) {
	query := ordersdomain.Query{
		Term:   c.Query("q"),
		Status: ordersdomain.StatusFilterFrom(c.Query("status")),
	}
	orders, err := api.service.ListOrders(c.Request.Context(), query)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrderList(orders))
}

// Get /v1/orders/stats
// Aggregate counts and revenue across the whole collection
func (api *OrderAPI) OrderStats(c *gin.Context) {
	stats, err := api.service.OrderStats(c.Request.Context())
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromStats(stats))
}

// Get /v1/orders/:orderId
// Find order by ID
func (api *OrderAPI) GetOrderById(c *gin.Context) {
	order, err := api.service.GetOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(order))
}

// TransitionRequest carries the target status for an explicit transition.
type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// Post /v1/orders/:orderId/transition
// Move the order to the requested status
func (api *OrderAPI) TransitionOrder(c *gin.Context) {
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
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(updated))
}

// Post /v1/orders/:orderId/advance
// Apply the forward lifecycle progression
func (api *OrderAPI) AdvanceOrder(c *gin.Context) {
	updated, err := api.service.AdvanceOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(updated))
}

// Post /v1/orders/:orderId/dispatch
// Hand the order to the carrier: tracking number, shipped status, timeline entry
func (api *OrderAPI) DispatchOrder(c *gin.Context) {
	updated, err := api.dispatchOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(updated))
}

func (api *OrderAPI) dispatchOrder(ctx context.Context, orderID string) (*ordersdomain.Order, error) {
	if api.dispatcher != nil {
		return api.dispatcher.DispatchOrder(ctx, orderID)
	}
	return api.service.MarkShipped(ctx, orderID)
}

// Post /v1/orders/:orderId/events
// Append one tracking event to the order's timeline
func (api *OrderAPI) AppendTrackingEvent(c *gin.Context) {
	var payload orderhttpmapper.TrackingEvent
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	updated, err := api.service.AppendTrackingEvent(c.Request.Context(), c.Param("orderId"), orderhttpmapper.ToDomainEvent(payload))
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(updated))
}

func respondOrderServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, ordersports.ErrNotFound) {
		respondProblem(c, apierrors.ErrNotFound.WithDetail(err.Error()))
		return
	}
	if errors.Is(err, ordersapp.ErrTransitionRejected) {
		respondProblem(c, apierrors.ErrConflict.WithDetail(err.Error()))
		return
	}
	if errors.Is(err, ordersapp.ErrInvalidInput) {
		respondProblem(c, apierrors.ErrValidation.WithDetail(err.Error()))
		return
	}
	respondProblem(c, apierrors.ErrInternal.WithDetail(err.Error()))
}
