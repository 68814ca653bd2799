package customize

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"menustudio/internal/menu"
)

func setupQuoteRouter(store *menu.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/items/quote", NewHandler(store).Quote)
	return r
}

func postQuote(r *gin.Engine, payload any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/items/quote", bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuoteReturnsBreakdown(t *testing.T) {
	r := setupQuoteRouter(menu.NewStore(nil))

	w := postQuote(r, map[string]any{
		"categoryId": "mains",
		"itemId":     "wagyu-burger",
		"selections": map[string]any{
			"burger-size":   "triple",
			"burger-addons": []string{"avocado"},
		},
		"quantity": 1,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d (%s)", w.Code, w.Body.String())
	}

	var resp struct {
		Valid         bool    `json:"valid"`
		BasePrice     float64 `json:"basePrice"`
		ModifierTotal float64 `json:"modifierTotal"`
		TotalPrice    float64 `json:"totalPrice"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}

	if !resp.Valid {
		t.Fatalf("expected a valid selection")
	}
	if resp.BasePrice != 34.00 {
		t.Fatalf("size choice should replace the base price, got %v", resp.BasePrice)
	}
	if resp.ModifierTotal != 2.50 {
		t.Fatalf("expected avocado surcharge 2.50, got %v", resp.ModifierTotal)
	}
	if resp.TotalPrice != 36.50 {
		t.Fatalf("expected 36.50, got %v", resp.TotalPrice)
	}
}

func TestQuoteDeselectsDefaultOptionalChoice(t *testing.T) {
	store := menu.NewStore(nil)
	r := setupQuoteRouter(store)

	// Empty list for an optional group must clear any default, and the
	// untouched size group keeps its default selection.
	w := postQuote(r, map[string]any{
		"categoryId": "mains",
		"itemId":     "wagyu-burger",
		"selections": map[string]any{"burger-addons": []string{}},
		"quantity":   1,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Valid      bool    `json:"valid"`
		TotalPrice float64 `json:"totalPrice"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !resp.Valid {
		t.Fatalf("default size selection should validate")
	}
	if resp.TotalPrice != 29.00 {
		t.Fatalf("expected default double patty 29.00, got %v", resp.TotalPrice)
	}
}

func TestQuoteUnknownItemIs404(t *testing.T) {
	r := setupQuoteRouter(menu.NewStore(nil))

	w := postQuote(r, map[string]any{
		"categoryId": "missing",
		"itemId":     "missing",
		"quantity":   1,
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestQuoteZeroQuantityClampsToOne(t *testing.T) {
	r := setupQuoteRouter(menu.NewStore(nil))

	w := postQuote(r, map[string]any{
		"categoryId": "desserts",
		"itemId":     "tiramisu",
		"quantity":   0,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Quantity   int     `json:"quantity"`
		TotalPrice float64 `json:"totalPrice"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Quantity != 1 {
		t.Fatalf("quantity should clamp to 1, got %d", resp.Quantity)
	}
	if resp.TotalPrice != 10.00 {
		t.Fatalf("expected tiramisu at 10.00, got %v", resp.TotalPrice)
	}
}
