package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/aimeevoice/aimee-web-app/internal/catalog"
	"github.com/aimeevoice/aimee-web-app/internal/dto"
	"github.com/aimeevoice/aimee-web-app/internal/handlers"
)

func newCatalogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewCatalogHandler(catalog.SeedStore())
	r := gin.New()
	r.GET("/wines", h.Wines)
	r.GET("/customers", h.Customers)
	r.GET("/orders/summary", h.OrdersSummary)
	return r
}

func getJSON(t *testing.T, r *gin.Engine, path string, out any) int {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("unmarshal %s: %v", path, err)
	}
	return w.Code
}

func TestWinesList(t *testing.T) {
	r := newCatalogRouter()

	var resp dto.WineListResponse
	if code := getJSON(t, r, "/wines", &resp); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if resp.Total != 8 || len(resp.Wines) != 8 {
		t.Fatalf("total = %d, wines = %d", resp.Total, len(resp.Wines))
	}
	if resp.Wines[0].Name != "Willamette Pinot Noir" {
		t.Fatalf("first wine = %q", resp.Wines[0].Name)
	}
}

func TestCustomersList(t *testing.T) {
	r := newCatalogRouter()

	var resp dto.CustomerListResponse
	if code := getJSON(t, r, "/customers", &resp); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if resp.Total != 4 {
		t.Fatalf("total = %d", resp.Total)
	}
}

func TestOrdersSummary(t *testing.T) {
	r := newCatalogRouter()

	var resp dto.OrderSummaryResponse
	if code := getJSON(t, r, "/orders/summary", &resp); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if resp.RevenueCents != 137994 {
		t.Fatalf("revenue_cents = %d", resp.RevenueCents)
	}
	if resp.Revenue != "$1379.94" {
		t.Fatalf("revenue = %q", resp.Revenue)
	}
	if resp.Bottles != 46 {
		t.Fatalf("bottles = %d", resp.Bottles)
	}
	if len(resp.Orders) != 4 {
		t.Fatalf("orders = %d", len(resp.Orders))
	}
}
