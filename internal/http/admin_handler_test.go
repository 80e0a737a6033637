//go:build !integration

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafechain/pos-terminal/internal/domain/dto"
	"github.com/cafechain/pos-terminal/internal/domain/model"
	"github.com/cafechain/pos-terminal/internal/gateway"
)

func TestAdminGateBlocksWithoutUpstreamSession(t *testing.T) {
	gw := defaultStubGateway()
	gw.adminErr = &gateway.ServerError{Op: "check admin session", Message: "Not logged in"}
	router := setupRouter(gw)
	token := openSession(t, router)

	w := doJSON(router, http.MethodGet, "/api/admin/menu", token, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Non-admin routes stay reachable.
	w = doJSON(router, http.MethodGet, "/api/cart", token, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListMenu(t *testing.T) {
	gw := defaultStubGateway()
	router := setupRouter(gw)
	token := openSession(t, router)

	w := doJSON(router, http.MethodGet, "/api/admin/menu?search=espresso", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var page dto.MenuPageResponse
	decodeData(t, w, &page)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Showing 1-2 of 2 items", page.Caption)

	// The term went to the Gateway, not a local filter.
	assert.Contains(t, gw.searches, "espresso")
}

func TestListMenuPagination(t *testing.T) {
	gw := defaultStubGateway()
	gw.menu = nil
	for i := 1; i <= 7; i++ {
		gw.menu = append(gw.menu, model.MenuItem{
			ID: i, Name: "Item", Category: "Hot Drinks", Price: decimal.NewFromInt(2),
		})
	}
	router := setupRouter(gw)
	token := openSession(t, router)

	w := doJSON(router, http.MethodGet, "/api/admin/menu?page=2", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var page dto.MenuPageResponse
	decodeData(t, w, &page)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.PageInfo.Page)
	assert.Equal(t, "Showing 6-7 of 7 items", page.Caption)
}

func TestAddMenuItem(t *testing.T) {
	gw := defaultStubGateway()
	router := setupRouter(gw)
	token := openSession(t, router)

	w := doJSON(router, http.MethodPost, "/api/admin/menu", token,
		`{"name": "Flat White", "category": "Hot Drinks", "price": 3.5}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	// The list reloaded from the Gateway after the write.
	assert.NotEmpty(t, gw.searches)
}

func TestAddMenuItemValidation(t *testing.T) {
	router := setupRouter(defaultStubGateway())
	token := openSession(t, router)

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"category": "Hot Drinks", "price": 3.5}`},
		{"zero price", `{"name": "Flat White", "category": "Hot Drinks", "price": 0}`},
		{"negative price", `{"name": "Flat White", "category": "Hot Drinks", "price": -1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, "/api/admin/menu", token, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestUpdateMenuItemInvalidID(t *testing.T) {
	router := setupRouter(defaultStubGateway())
	token := openSession(t, router)

	for _, id := range []string{"abc", "0", "-3"} {
		w := doJSON(router, http.MethodPut, "/api/admin/menu/"+id, token,
			`{"name": "Flat White", "category": "Hot Drinks", "price": 3.5}`)
		assert.Equal(t, http.StatusBadRequest, w.Code, id)
	}
}

func TestDeleteMenuItem(t *testing.T) {
	router := setupRouter(defaultStubGateway())
	token := openSession(t, router)

	w := doJSON(router, http.MethodDelete, "/api/admin/menu/2", token, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCafeAdmin(t *testing.T) {
	router := setupRouter(defaultStubGateway())
	token := openSession(t, router)

	w := doJSON(router, http.MethodGet, "/api/admin/cafes", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Cafes []model.Cafe `json:"cafes"`
	}
	decodeData(t, w, &list)
	require.Len(t, list.Cafes, 1)
	assert.Equal(t, "Downtown", list.Cafes[0].Name)

	w = doJSON(router, http.MethodPost, "/api/admin/cafes", token,
		`{"name": "Riverside", "location": "3 Quai Voltaire", "access_code": "1234"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var cafe model.Cafe
	decodeData(t, w, &cafe)
	assert.Equal(t, "Riverside", cafe.Name)
	assert.NotZero(t, cafe.ID)

	w = doJSON(router, http.MethodPut, "/api/admin/cafes/7", token,
		`{"name": "Downtown II", "location": "12 Rue de la Paix"}`)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &list)
	assert.Equal(t, "Downtown II", list.Cafes[0].Name)

	w = doJSON(router, http.MethodDelete, "/api/admin/cafes/7", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &list)
	for _, c := range list.Cafes {
		assert.NotEqual(t, 7, c.ID)
	}
}

func TestCafeAdminInvalidID(t *testing.T) {
	router := setupRouter(defaultStubGateway())
	token := openSession(t, router)

	w := doJSON(router, http.MethodDelete, "/api/admin/cafes/abc", token, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, dto.ErrCodeInvalidRequest, errResp.Error)
}

func TestGetAnalytics(t *testing.T) {
	gw := defaultStubGateway()
	gw.metrics = model.CardMetrics{
		TopProduct:    "Espresso",
		TopCafe:       "Downtown",
		TotalSales:    1240.5,
		GrowthPercent: 8.2,
	}
	router := setupRouter(gw)
	token := openSession(t, router)

	w := doJSON(router, http.MethodGet, "/api/admin/analytics?month=3&year=2026", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var cards model.CardMetrics
	decodeData(t, w, &cards)
	assert.Equal(t, "Espresso", cards.TopProduct)
	assert.Equal(t, 1240.5, cards.TotalSales)
}

func TestMenuWriteGatewayDown(t *testing.T) {
	gw := defaultStubGateway()
	router := setupRouter(gw)
	token := openSession(t, router)

	gw.menuErr = &gateway.NetworkError{Op: "search menu", Err: errors.New("connection refused")}
	w := doJSON(router, http.MethodGet, "/api/admin/menu", token, "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
