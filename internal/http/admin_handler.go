package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cafechain/pos-terminal/internal/domain/dto"
	"github.com/cafechain/pos-terminal/internal/i18n"
	"github.com/cafechain/pos-terminal/internal/session"
)

// menuPage renders the session's menu admin view under its lock.
func menuPage(s *session.Session) dto.MenuPageResponse {
	var page dto.MenuPageResponse
	s.Do(func() {
		info := s.Menu.PageInfo()
		page = dto.MenuPageResponse{
			Items:    s.Menu.CurrentPage(),
			PageInfo: info,
			Caption:  info.String(),
		}
	})
	return page
}

// ListMenu returns one page of the admin menu table. Search is
// server-side; changing the term resets to the first page.
func (h *Handler) ListMenu(c *gin.Context) {
	rb := NewResponseBuilder(c)
	s, ok := mustSession(c, rb)
	if !ok {
		return
	}

	if err := s.Menu.SetSearch(c.Request.Context(), c.Query("search")); err != nil {
		respondGatewayError(rb, err)
		return
	}
	if pageStr := c.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			s.Menu.GoToPage(page)
		}
	}

	rb.SuccessOK(menuPage(s))
}

// AddMenuItem creates a menu item and reloads the list.
func (h *Handler) AddMenuItem(c *gin.Context) {
	rb := NewResponseBuilder(c)
	s, ok := mustSession(c, rb)
	if !ok {
		return
	}

	var req dto.MenuItemRequest
	if err := NewRequestBuilder(c).Bind(&req); err != nil {
		rb.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(rb, err)
		return
	}

	wire := dto.MenuItemWireRequest{Name: req.Name, Category: req.Category, Price: req.Price}
	if err := s.Menu.Add(c.Request.Context(), wire); err != nil {
		respondGatewayError(rb, err)
		return
	}

	rb.SuccessCreated(menuPage(s))
}

// UpdateMenuItem edits a menu item and reloads the list.
func (h *Handler) UpdateMenuItem(c *gin.Context) {
	rb := NewResponseBuilder(c)
	s, ok := mustSession(c, rb)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		rb.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	var req dto.MenuItemRequest
	if err := NewRequestBuilder(c).Bind(&req); err != nil {
		rb.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(rb, err)
		return
	}

	wire := dto.MenuItemWireRequest{ID: id, Name: req.Name, Category: req.Category, Price: req.Price}
	if err := s.Menu.Update(c.Request.Context(), wire); err != nil {
		respondGatewayError(rb, err)
		return
	}

	rb.SuccessOK(menuPage(s))
}

// DeleteMenuItem removes a menu item and reloads the list.
func (h *Handler) DeleteMenuItem(c *gin.Context) {
	rb := NewResponseBuilder(c)
	s, ok := mustSession(c, rb)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		rb.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	if err := s.Menu.Delete(c.Request.Context(), id); err != nil {
		respondGatewayError(rb, err)
		return
	}

	rb.SuccessOK(menuPage(s))
}

// ListCafes loads and returns all cafés.
func (h *Handler) ListCafes(c *gin.Context) {
	rb := NewResponseBuilder(c)
	s, ok := mustSession(c, rb)
	if !ok {
		return
	}

	if err := s.Cafes.Load(c.Request.Context()); err != nil {
		respondGatewayError(rb, err)
		return
	}

	rb.SuccessOK(gin.H{"cafes": s.Cafes.Cafes()})
}

// CreateCafe registers a café.
func (h *Handler) CreateCafe(c *gin.Context) {
	rb := NewResponseBuilder(c)
	s, ok := mustSession(c, rb)
	if !ok {
		return
	}

	var req dto.CafeRequest
	if err := NewRequestBuilder(c).Bind(&req); err != nil {
		rb.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	cafe, err := s.Cafes.Create(c.Request.Context(), req)
	if err != nil {
		respondGatewayError(rb, err)
		return
	}

	rb.SuccessCreated(cafe)
}

// UpdateCafe edits a café.
func (h *Handler) UpdateCafe(c *gin.Context) {
	rb := NewResponseBuilder(c)
	s, ok := mustSession(c, rb)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		rb.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	var req dto.CafeRequest
	if err := NewRequestBuilder(c).Bind(&req); err != nil {
		rb.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := s.Cafes.Update(c.Request.Context(), id, req); err != nil {
		respondGatewayError(rb, err)
		return
	}

	rb.SuccessOK(gin.H{"cafes": s.Cafes.Cafes()})
}

// DeleteCafe removes a café.
func (h *Handler) DeleteCafe(c *gin.Context) {
	rb := NewResponseBuilder(c)
	s, ok := mustSession(c, rb)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		rb.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	if err := s.Cafes.Delete(c.Request.Context(), id); err != nil {
		respondGatewayError(rb, err)
		return
	}

	rb.SuccessOK(gin.H{"cafes": s.Cafes.Cafes()})
}

// GetAnalytics returns the dashboard headline numbers for a month.
// Month and year default to the current one.
func (h *Handler) GetAnalytics(c *gin.Context) {
	rb := NewResponseBuilder(c)

	now := time.Now()
	month := int(now.Month())
	year := now.Year()
	if v, err := strconv.Atoi(c.DefaultQuery("month", "")); err == nil && v >= 1 && v <= 12 {
		month = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("year", "")); err == nil && v > 0 {
		year = v
	}

	cards, err := h.gw.FetchCardMetrics(c.Request.Context(), month, year)
	if err != nil {
		respondGatewayError(rb, err)
		return
	}

	rb.SuccessOK(cards)
}
