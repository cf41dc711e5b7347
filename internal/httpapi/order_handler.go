package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"halalpoultry-be/internal/cart"
	"halalpoultry-be/internal/logger"
	"halalpoultry-be/internal/order"
	"halalpoultry-be/internal/utils"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type createOrderItemRequest struct {
	ProductID       int                  `json:"productId"`
	Quantity        float64              `json:"quantity"`
	Price           float64              `json:"price"`
	SelectedOptions cart.SelectedOptions `json:"selectedOptions"`
}

// createOrderRequest carries the caller-computed totals; the server records
// them without recomputation (tax and summing happen client-side).
type createOrderRequest struct {
	Total           float64                  `json:"total"`
	ShippingAddress *string                  `json:"shippingAddress"`
	BillingAddress  *string                  `json:"billingAddress"`
	PaymentMethod   *string                  `json:"paymentMethod"`
	Items           []createOrderItemRequest `json:"items"`
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req createOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items := make([]order.CreateOrderItemParams, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, order.CreateOrderItemParams{
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			Price:           item.Price,
			SelectedOptions: item.SelectedOptions,
		})
	}

	o, err := s.orders.Create(ctx, order.CreateOrderParams{
		UserID:          userID,
		Total:           req.Total,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		PaymentMethod:   req.PaymentMethod,
	}, items)
	if err != nil {
		if errors.Is(err, order.ErrEmptyOrder) {
			respondError(w, http.StatusBadRequest, "order has no items")
			return
		}
		logger.FromCtx(ctx).Error("create order failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to create order")
		return
	}
	respondJSON(w, http.StatusCreated, o)
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	orders, err := s.orders.GetOrders(ctx, userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list orders")
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	orderID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid order ID")
		return
	}

	detail, err := s.orders.GetOrderDetail(ctx, userID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			respondError(w, http.StatusNotFound, "order not found")
		case errors.Is(err, order.ErrForbidden):
			respondError(w, http.StatusForbidden, "order belongs to another user")
		default:
			respondError(w, http.StatusInternalServerError, "failed to load order")
		}
		return
	}
	respondJSON(w, http.StatusOK, detail)
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, ok := utils.GetUserIDFromContext(ctx); !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	orderID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid order ID")
		return
	}

	var req updateOrderStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	o, err := s.orders.UpdateStatus(ctx, orderID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrUnknownStatus):
			respondError(w, http.StatusBadRequest, "unknown order status")
		case errors.Is(err, order.ErrOrderNotFound):
			respondError(w, http.StatusNotFound, "order not found")
		case errors.Is(err, order.ErrInvalidTransition):
			respondError(w, http.StatusConflict, "illegal status transition")
		default:
			respondError(w, http.StatusInternalServerError, "failed to update order status")
		}
		return
	}
	respondJSON(w, http.StatusOK, o)
}
