package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/cafechain/pos-terminal/internal/domain/dto"
	"github.com/cafechain/pos-terminal/internal/domain/model"
	"github.com/cafechain/pos-terminal/internal/gateway"
	"github.com/cafechain/pos-terminal/internal/i18n"
	"github.com/cafechain/pos-terminal/internal/logger"
	"github.com/cafechain/pos-terminal/internal/metrics"
	"github.com/cafechain/pos-terminal/internal/middleware"
	"github.com/cafechain/pos-terminal/internal/session"
)

// Gateway is the full Gateway client surface the HTTP layer needs.
type Gateway interface {
	session.Gateway
	SubmitOrder(ctx context.Context, cafeID string, lines []model.OrderLine) (dto.GatewayResult, error)
	FetchCardMetrics(ctx context.Context, month, year int) (model.CardMetrics, error)
	CheckAdminSession(ctx context.Context, cookie string) error
}

// AuditRecorder persists a trail of what this terminal sent upstream.
type AuditRecorder interface {
	RecordOrder(ctx context.Context, entry *model.OrderAudit) error
	RecordRestock(ctx context.Context, entry *model.RestockAudit) error
}

// Handler provides HTTP handlers for the terminal routes.
type Handler struct {
	registry *session.Registry
	gw       Gateway
	audit    AuditRecorder
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithAuditRecorder enables the Mongo audit trail for orders and
// restocks.
func WithAuditRecorder(audit AuditRecorder) HandlerOption {
	return func(h *Handler) { h.audit = audit }
}

// NewHandler creates a new Handler instance.
func NewHandler(registry *session.Registry, gw Gateway, opts ...HandlerOption) *Handler {
	h := &Handler{
		registry: registry,
		gw:       gw,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// respondGatewayError translates a Gateway failure into an API error.
// Transport failures get the generic network message; refusals carry
// the Gateway's own message verbatim.
func respondGatewayError(rb *ResponseBuilder, err error) {
	if se, ok := gateway.AsServer(err); ok {
		rb.ErrorWithCode(http.StatusUnprocessableEntity, dto.ErrCodeServer, se.UserMessage(), err)
		return
	}
	rb.Error(http.StatusBadGateway, i18n.ErrKeyNetworkError, err)
}

// respondValidationError translates a local validation failure.
func respondValidationError(rb *ResponseBuilder, err error) {
	rb.ErrorWithCode(http.StatusBadRequest, dto.ErrCodeValidation, err.Error(), err)
}

// mustSession returns the session attached by the auth middleware.
func mustSession(c *gin.Context, rb *ResponseBuilder) (*session.Session, bool) {
	s, ok := middleware.GetSession(c)
	if !ok {
		rb.Error(http.StatusUnauthorized, i18n.ErrKeySessionNotFound, nil)
		return nil, false
	}
	return s, true
}

// OpenSession starts a terminal session for one café and returns its
// token.
func (h *Handler) OpenSession(c *gin.Context) {
	rb := NewResponseBuilder(c)

	var req dto.OpenSessionRequest
	if err := NewRequestBuilder(c).Bind(&req); err != nil {
		rb.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(rb, err)
		return
	}

	s, token, err := h.registry.Open(c.Request.Context(), req.CafeID)
	if err != nil {
		respondGatewayError(rb, err)
		return
	}

	rb.SuccessCreated(dto.SessionResponse{Token: token, CafeID: s.CafeID})
}

// CloseSession ends the caller's session and discards its state.
func (h *Handler) CloseSession(c *gin.Context) {
	rb := NewResponseBuilder(c)
	s, ok := mustSession(c, rb)
	if !ok {
		return
	}

	h.registry.Close(s.ID)
	rb.SuccessOK(gin.H{"closed": true})
}

// cartView renders the session's cart under its lock.
func cartView(s *session.Session) dto.CartView {
	var view dto.CartView
	s.Do(func() {
		view = dto.NewCartView(s.Cart.Lines(), s.Cart.Total().StringFixed(2))
	})
	return view
}

// GetCart returns the cart panel: lines and running total.
func (h *Handler) GetCart(c *gin.Context) {
	rb := NewResponseBuilder(c)
	s, ok := mustSession(c, rb)
	if !ok {
		return
	}
	rb.SuccessOK(cartView(s))
}

// AddCartItem steps a menu item's quantity up by one. Unknown items
// leave the cart unchanged.
func (h *Handler) AddCartItem(c *gin.Context) {
	rb := NewResponseBuilder(c)
	s, ok := mustSession(c, rb)
	if !ok {
		return
	}

	var req dto.QuantityAdjustRequest
	if err := NewRequestBuilder(c).Bind(&req); err != nil {
		rb.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	s.Do(func() { s.Cart.IncreaseQuantity(req.ItemID) })
	metrics.RecordCartOperation("increase")
	rb.SuccessOK(cartView(s))
}

// RemoveCartItem steps a menu item's quantity down by one, removing the
// line when it reaches zero.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	rb := NewResponseBuilder(c)
	s, ok := mustSession(c, rb)
	if !ok {
		return
	}

	var req dto.QuantityAdjustRequest
	if err := NewRequestBuilder(c).Bind(&req); err != nil {
		rb.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	s.Do(func() { s.Cart.DecreaseQuantity(req.ItemID) })
	metrics.RecordCartOperation("decrease")
	rb.SuccessOK(cartView(s))
}

// Checkout submits the cart as an order. A failed submit leaves the
// cart untouched; success clears it and reloads the inventory view.
func (h *Handler) Checkout(c *gin.Context) {
	rb := NewResponseBuilder(c)
	s, ok := mustSession(c, rb)
	if !ok {
		return
	}

	var lines []model.OrderLine
	s.Do(func() { lines = s.Cart.BuildOrderPayload() })
	if len(lines) == 0 {
		rb.Error(http.StatusBadRequest, i18n.ErrKeyCartEmpty, nil)
		return
	}

	result, err := h.gw.SubmitOrder(c.Request.Context(), s.CafeIDString(), lines)
	if err != nil {
		metrics.RecordOrderSubmission("error")
		respondGatewayError(rb, err)
		return
	}
	metrics.RecordOrderSubmission("success")

	total := decimal.NewFromFloat(result.TotalPrice).StringFixed(2)
	s.Do(func() { s.Cart.Reset() })

	// Stock moved; refresh the inventory view. The order itself already
	// succeeded, so a failed refresh only logs.
	if records, err := h.gw.FetchInventory(c.Request.Context()); err != nil {
		log := logger.Logger()
		log.Warn().Err(err).Msg("Inventory refresh after checkout failed")
	} else {
		s.Do(func() { s.Inventory.Load(records) })
	}

	h.recordOrderAudit(s, result.OrderID, total, lines, middleware.GetRequestID(c))

	rb.SuccessCreated(dto.OrderResponse{OrderID: result.OrderID, Total: total})
}

// recordOrderAudit writes the audit entry off the request path.
func (h *Handler) recordOrderAudit(s *session.Session, orderID, total string, lines []model.OrderLine, requestID string) {
	if h.audit == nil {
		return
	}
	entry := &model.OrderAudit{
		OrderID:   orderID,
		CafeID:    s.CafeIDString(),
		Lines:     lines,
		Total:     total,
		SessionID: s.ID,
		RequestID: requestID,
		Timestamp: time.Now(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.audit.RecordOrder(ctx, entry); err != nil {
			log := logger.Logger()
			log.Warn().Err(err).Str("order_id", orderID).Msg("Order audit write failed")
		}
	}()
}
