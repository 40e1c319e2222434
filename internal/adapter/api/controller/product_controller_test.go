package controller

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/adapter/api/dto"
	productdomain "github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/product"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/pkg/logger"
)

func newProductRouter(t *testing.T) (*gin.Engine, *fakeProductRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	products := newFakeProductRepo()
	c := NewProductController(products, logger.NewLogger())

	r := gin.New()
	r.POST("/products", c.Create)
	r.GET("/products/categories", c.Categories)
	r.GET("/products/:id", c.Get)
	r.GET("/products", c.List)
	r.PUT("/products/:id", c.Update)
	r.DELETE("/products/:id", c.Delete)
	return r, products
}

func productRequest() dto.ProductRequest {
	return dto.ProductRequest{
		Name:             "Industrial Pallet 48x40",
		Category:         "Industrial Wooden Pallets",
		WoodType:         productdomain.WoodTypeJungle,
		Length:           48,
		Width:            40,
		Height:           6,
		PricePerCft:      450,
		Quantity:         100,
		MinOrderQuantity: 10,
	}
}

func TestProductCreate(t *testing.T) {
	r, _ := newProductRouter(t)

	w := postJSON(t, r, "/products", productRequest(), "")
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", w.Code, w.Body.String())
	}

	var resp dto.ProductResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID == "" {
		t.Error("id not assigned")
	}
	if resp.HSNCode != "4415" {
		t.Errorf("HSNCode = %s, want 4415", resp.HSNCode)
	}
	if math.Abs(resp.CftPerPiece-11520.0/1728.0) > 1e-9 {
		t.Errorf("CftPerPiece = %v", resp.CftPerPiece)
	}
	if resp.Status != productdomain.StatusInStock {
		t.Errorf("Status = %s, want %s", resp.Status, productdomain.StatusInStock)
	}
}

func TestProductCreateRejectsInvalidBody(t *testing.T) {
	r, _ := newProductRouter(t)

	req := productRequest()
	req.Length = 0
	if w := postJSON(t, r, "/products", req, ""); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for zero length", w.Code)
	}

	req = productRequest()
	req.MinOrderQuantity = 0
	if w := postJSON(t, r, "/products", req, ""); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for zero min order quantity", w.Code)
	}
}

func TestProductUpdateRecomputesStatus(t *testing.T) {
	r, _ := newProductRouter(t)

	w := postJSON(t, r, "/products", productRequest(), "")
	var created dto.ProductResponse
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	req := productRequest()
	req.Quantity = 0
	raw, _ := json.Marshal(req)
	httpReq := httptest.NewRequest(http.MethodPut, "/products/"+created.ID, bytes.NewReader(raw))
	httpReq.Header.Set("Content-Type", "application/json")
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httpReq)
	if w2.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w2.Code, w2.Body.String())
	}

	var updated dto.ProductResponse
	if err := json.Unmarshal(w2.Body.Bytes(), &updated); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if updated.Status != productdomain.StatusOutOfStock {
		t.Errorf("Status = %s, want %s", updated.Status, productdomain.StatusOutOfStock)
	}
}

func TestProductDelete(t *testing.T) {
	r, products := newProductRouter(t)

	w := postJSON(t, r, "/products", productRequest(), "")
	var created dto.ProductResponse
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/products/"+created.ID, nil)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	if w2.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w2.Code)
	}
	if len(products.products) != 0 {
		t.Error("product still stored after delete")
	}

	w2 = httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodDelete, "/products/"+created.ID, nil))
	if w2.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for a second delete", w2.Code)
	}
}

func TestProductCategories(t *testing.T) {
	r, _ := newProductRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/products/categories", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp dto.CategoriesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Categories) != len(productdomain.Categories) {
		t.Errorf("categories = %d, want %d", len(resp.Categories), len(productdomain.Categories))
	}
}
