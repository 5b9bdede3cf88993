package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"mart-api/models"
)

func performEnvelope(t *testing.T, handler gin.HandlerFunc) Envelope {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	handler(c)

	var env Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not an envelope: %v", err)
	}
	return env
}

func TestSuccessEnvelope(t *testing.T) {
	env := performEnvelope(t, func(c *gin.Context) {
		Success(c, http.StatusOK, "Order completed", gin.H{"id": 1})
	})

	if !env.Success {
		t.Error("success = false")
	}
	if env.Message != "Order completed" {
		t.Errorf("message = %q", env.Message)
	}
	if env.Data == nil {
		t.Error("data missing")
	}
	if env.Error != "" || env.Suggestion != "" {
		t.Error("error fields set on success path")
	}
}

func TestFailWithSuggestionEnvelope(t *testing.T) {
	env := performEnvelope(t, func(c *gin.Context) {
		FailWithSuggestion(c, http.StatusBadRequest,
			"This QR code has already been used", "Order already completed")
	})

	if env.Success {
		t.Error("success = true on failure path")
	}
	if env.Suggestion != "Order already completed" {
		t.Errorf("suggestion = %q", env.Suggestion)
	}
}

func TestPublicProductHidesCostData(t *testing.T) {
	p := models.Product{ID: 1, Name: "Curry Puff", Stock: 3, BuyPrice: 0.80, Price: 2.00}

	view := PublicProduct(p)
	if view.StockLevel != models.StockLow {
		t.Errorf("stock_level = %s, want LOW", view.StockLevel)
	}

	raw, _ := json.Marshal(view)
	for _, hidden := range []string{"buy_price", "\"stock\""} {
		if strings.Contains(string(raw), hidden) {
			t.Errorf("public view leaks %s: %s", hidden, raw)
		}
	}
}

func TestFilterProductsForRole(t *testing.T) {
	products := []models.Product{{ID: 1, Name: "Kopi O Bottle", Stock: 60, Price: 3}}

	if _, ok := FilterProductsForRole(products, "admin").([]AdminProductView); !ok {
		t.Error("admin does not get the full view")
	}
	if _, ok := FilterProductsForRole(products, "customer").([]PublicProductView); !ok {
		t.Error("customer gets more than the public view")
	}
	if _, ok := FilterProductsForRole(products, "").([]PublicProductView); !ok {
		t.Error("anonymous gets more than the public view")
	}
}
