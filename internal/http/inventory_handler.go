package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cafechain/pos-terminal/internal/domain/dto"
	"github.com/cafechain/pos-terminal/internal/domain/model"
	"github.com/cafechain/pos-terminal/internal/i18n"
	"github.com/cafechain/pos-terminal/internal/inventory"
	"github.com/cafechain/pos-terminal/internal/logger"
	"github.com/cafechain/pos-terminal/internal/metrics"
	"github.com/cafechain/pos-terminal/internal/middleware"
	"github.com/cafechain/pos-terminal/internal/session"
)

// inventoryPage renders the session's inventory view under its lock.
func inventoryPage(s *session.Session) dto.InventoryPageResponse {
	var page dto.InventoryPageResponse
	s.Do(func() {
		info := s.Inventory.PageInfo()
		page = dto.InventoryPageResponse{
			Records:  s.Inventory.CurrentPage(),
			PageInfo: info,
			Caption:  info.String(),
			Cafes:    s.Inventory.Cafes(),
		}
	})
	return page
}

// GetInventory returns the current page of the inventory view.
func (h *Handler) GetInventory(c *gin.Context) {
	rb := NewResponseBuilder(c)
	s, ok := mustSession(c, rb)
	if !ok {
		return
	}
	rb.SuccessOK(inventoryPage(s))
}

// ReloadInventory refetches the snapshot from the Gateway. The filter
// clears and the view returns to the first page. On failure the
// previous snapshot stays visible.
func (h *Handler) ReloadInventory(c *gin.Context) {
	rb := NewResponseBuilder(c)
	s, ok := mustSession(c, rb)
	if !ok {
		return
	}

	records, err := h.gw.FetchInventory(c.Request.Context())
	if err != nil {
		respondGatewayError(rb, err)
		return
	}

	s.Do(func() { s.Inventory.Load(records) })
	rb.SuccessOK(inventoryPage(s))
}

// SetInventoryFilter updates the café and search filters. Any filter
// change snaps back to page one.
func (h *Handler) SetInventoryFilter(c *gin.Context) {
	rb := NewResponseBuilder(c)
	s, ok := mustSession(c, rb)
	if !ok {
		return
	}

	var req dto.InventoryFilterRequest
	if err := NewRequestBuilder(c).Bind(&req); err != nil {
		rb.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	s.Do(func() {
		if req.CafeID != nil {
			s.Inventory.SetCafeFilter(*req.CafeID)
		}
		if req.Search != nil {
			s.Inventory.SetSearchTerm(*req.Search)
		}
	})
	rb.SuccessOK(inventoryPage(s))
}

// GoToInventoryPage moves the view to the requested page. Out-of-range
// pages are ignored and the current page is returned.
func (h *Handler) GoToInventoryPage(c *gin.Context) {
	rb := NewResponseBuilder(c)
	s, ok := mustSession(c, rb)
	if !ok {
		return
	}

	var req dto.PageRequest
	if err := NewRequestBuilder(c).Bind(&req); err != nil {
		rb.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	s.Do(func() { s.Inventory.GoToPage(req.Page) })
	rb.SuccessOK(inventoryPage(s))
}

// GetLowStockAlerts returns the alerts for the filtered set,
// independent of the visible page.
func (h *Handler) GetLowStockAlerts(c *gin.Context) {
	rb := NewResponseBuilder(c)
	s, ok := mustSession(c, rb)
	if !ok {
		return
	}

	var alerts []dto.LowStockAlert
	s.Do(func() { alerts = dto.NewLowStockAlerts(s.Inventory.LowStockAlerts()) })
	rb.SuccessOK(gin.H{"alerts": alerts})
}

// OpenRestock targets an inventory record for restocking.
func (h *Handler) OpenRestock(c *gin.Context) {
	rb := NewResponseBuilder(c)
	s, ok := mustSession(c, rb)
	if !ok {
		return
	}

	var req dto.RestockOpenRequest
	if err := NewRequestBuilder(c).Bind(&req); err != nil {
		rb.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	s.Restock.Open(req.ItemID, req.CafeID)
	rb.SuccessOK(gin.H{"state": s.Restock.State().String()})
}

// CloseRestock abandons the current restock target.
func (h *Handler) CloseRestock(c *gin.Context) {
	rb := NewResponseBuilder(c)
	s, ok := mustSession(c, rb)
	if !ok {
		return
	}

	s.Restock.Close()
	rb.SuccessOK(gin.H{"state": s.Restock.State().String()})
}

// SubmitRestock validates and sends the stock adjustment. Validation
// failures never reach the Gateway. Success reloads the inventory view.
func (h *Handler) SubmitRestock(c *gin.Context) {
	rb := NewResponseBuilder(c)
	s, ok := mustSession(c, rb)
	if !ok {
		return
	}

	var req dto.RestockSubmitRequest
	if err := NewRequestBuilder(c).Bind(&req); err != nil {
		rb.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		metrics.RecordRestockSubmission("validation_error")
		respondValidationError(rb, err)
		return
	}
	if _, err := model.ParseRestockOperation(req.Operation); err != nil {
		metrics.RecordRestockSubmission("validation_error")
		respondValidationError(rb, err)
		return
	}

	itemID, cafeID := s.Restock.Target()
	err := s.Restock.Submit(c.Request.Context(), req.Operation, req.Quantity, req.Date)
	switch {
	case err == nil:
	case errors.Is(err, inventory.ErrNotOpen):
		rb.ErrorWithCode(http.StatusConflict, dto.ErrCodeConflict, err.Error(), err)
		return
	case errors.Is(err, inventory.ErrSubmitInFlight):
		rb.Error(http.StatusConflict, i18n.ErrKeyRestockInFlight, err)
		return
	case errors.Is(err, inventory.ErrSuperseded):
		rb.ErrorWithCode(http.StatusConflict, dto.ErrCodeConflict, err.Error(), err)
		return
	case errors.Is(err, inventory.ErrInvalidQuantity),
		errors.Is(err, inventory.ErrMissingDate),
		errors.Is(err, inventory.ErrInvalidDate):
		metrics.RecordRestockSubmission("validation_error")
		respondValidationError(rb, err)
		return
	default:
		metrics.RecordRestockSubmission("error")
		respondGatewayError(rb, err)
		return
	}
	metrics.RecordRestockSubmission("success")

	delta, _ := inventory.EncodeDelta(model.RestockOperation(req.Operation), req.Quantity)
	h.recordRestockAudit(s, itemID, cafeID, delta, req.Date, middleware.GetRequestID(c))

	locale := i18n.GetLocale(c)
	rb.SuccessOK(gin.H{
		"message":   i18n.GetTranslator().Translate(i18n.SuccessKeyRestockSubmitted, locale),
		"inventory": inventoryPage(s),
	})
}

// recordRestockAudit writes the audit entry off the request path.
func (h *Handler) recordRestockAudit(s *session.Session, itemID, cafeID string, delta int, date, requestID string) {
	if h.audit == nil {
		return
	}
	entry := &model.RestockAudit{
		ItemID:        itemID,
		CafeID:        cafeID,
		QuantityDelta: delta,
		Date:          date,
		SessionID:     s.ID,
		RequestID:     requestID,
		Timestamp:     time.Now(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.audit.RecordRestock(ctx, entry); err != nil {
			log := logger.Logger()
			log.Warn().Err(err).Str("item_id", itemID).Msg("Restock audit write failed")
		}
	}()
}
