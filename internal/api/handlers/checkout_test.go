package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kanwar911/BTP-case-craft/internal/api"
	"github.com/kanwar911/BTP-case-craft/internal/config"
	"github.com/kanwar911/BTP-case-craft/internal/repository"
	"github.com/kanwar911/BTP-case-craft/internal/repository/memory"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:        "8080",
		Environment: "test",
		Auth: config.AuthConfig{
			JWTSecret: "test-secret",
			TokenTTL:  time.Hour,
		},
		Checkout: config.CheckoutConfig{
			TaxRate:           0.08,
			ShippingFlat:      5.99,
			FreeShippingAbove: 50,
		},
		AppURL: "http://localhost:3000",
	}
}

func newTestServer(t *testing.T) (*gin.Engine, *repository.Repositories) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repos := memory.NewRepositories()
	return api.NewRouter(testConfig(), repos, zap.NewNop()), repos
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestCheckout(t *testing.T) {
	t.Run("GuestCheckoutSucceeds", func(t *testing.T) {
		router, _ := newTestServer(t)
		w := doJSON(t, router, http.MethodPost, "/api/checkout", map[string]interface{}{
			"items": []map[string]interface{}{
				{"productId": "1", "quantity": 2},
			},
			"customerInfo": map[string]string{
				"email": "jane@example.com", "name": "Jane Doe",
				"address": "1 Main St", "city": "Springfield",
				"state": "IL", "postalCode": "62704", "country": "USA",
			},
		}, nil)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])
		assert.True(t, strings.HasPrefix(body["orderId"].(string), "ORD-"))
		assert.Contains(t, body["redirectUrl"].(string), "/checkout/success?order_id=")

		summary := body["orderSummary"].(map[string]interface{})
		assert.Equal(t, "59.98", summary["subtotal"])
		assert.Equal(t, "0.00", summary["shipping"])
		assert.Equal(t, "4.80", summary["tax"])
		assert.Equal(t, "64.78", summary["total"])

		order := body["order"].(map[string]interface{})
		assert.Equal(t, "guest", order["userId"])
	})

	t.Run("BelowThresholdPaysShipping", func(t *testing.T) {
		router, _ := newTestServer(t)
		w := doJSON(t, router, http.MethodPost, "/api/checkout", map[string]interface{}{
			"items": []map[string]interface{}{
				{"productId": "1", "quantity": 1},
			},
			"customerInfo": map[string]string{"name": "Jane Doe"},
		}, nil)

		require.Equal(t, http.StatusOK, w.Code)
		summary := decodeBody(t, w)["orderSummary"].(map[string]interface{})
		assert.Equal(t, "29.99", summary["subtotal"])
		assert.Equal(t, "5.99", summary["shipping"])
	})

	t.Run("CustomizationSurchargeApplied", func(t *testing.T) {
		router, _ := newTestServer(t)
		w := doJSON(t, router, http.MethodPost, "/api/checkout", map[string]interface{}{
			"items": []map[string]interface{}{
				{"productId": "1", "quantity": 2, "customization": map[string]string{"text": "carpe diem"}},
			},
			"customerInfo": map[string]string{"name": "Jane Doe"},
		}, nil)

		require.Equal(t, http.StatusOK, w.Code)
		summary := decodeBody(t, w)["orderSummary"].(map[string]interface{})
		// (29.99 + 5.00) x 2
		assert.Equal(t, "69.98", summary["subtotal"])
		lineItems := summary["lineItems"].([]interface{})
		require.Len(t, lineItems, 1)
		assert.InDelta(t, 34.99, lineItems[0].(map[string]interface{})["unitPrice"].(float64), 1e-9)
	})

	t.Run("DeclinedCard", func(t *testing.T) {
		router, _ := newTestServer(t)
		w := doJSON(t, router, http.MethodPost, "/api/checkout", map[string]interface{}{
			"items": []map[string]interface{}{
				{"productId": "1", "quantity": 1},
			},
			"customerInfo": map[string]string{"name": "Jane Doe"},
			"paymentInfo": map[string]string{
				"cardNumber":     "4000000000000002",
				"cardholderName": "Jane Doe",
				"expiryDate":     "12/30",
				"cvc":            "123",
			},
		}, nil)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Card declined", decodeBody(t, w)["error"])
	})

	t.Run("NoOrderCreatedOnPaymentFailure", func(t *testing.T) {
		router, repos := newTestServer(t)
		w := doJSON(t, router, http.MethodPost, "/api/checkout", map[string]interface{}{
			"items": []map[string]interface{}{
				{"productId": "1", "quantity": 1},
			},
			"customerInfo": map[string]string{"name": "Jane Doe"},
			"paymentInfo": map[string]string{
				"cardNumber":     "4111111111111111",
				"cardholderName": "Jane Doe",
				"expiryDate":     "01/20",
				"cvc":            "123",
			},
		}, nil)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Card is expired", decodeBody(t, w)["error"])

		orders, err := repos.Order.ListByUserID(t.Context(), "guest", 10, 0)
		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("MissingItems", func(t *testing.T) {
		router, _ := newTestServer(t)
		w := doJSON(t, router, http.MethodPost, "/api/checkout", map[string]interface{}{
			"items":        []map[string]interface{}{},
			"customerInfo": map[string]string{"name": "Jane Doe"},
		}, nil)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "No items provided", decodeBody(t, w)["error"])
	})

	t.Run("AllItemsUnresolvable", func(t *testing.T) {
		router, _ := newTestServer(t)
		w := doJSON(t, router, http.MethodPost, "/api/checkout", map[string]interface{}{
			"items": []map[string]interface{}{
				{"productId": "no-such-product", "quantity": 1},
			},
			"customerInfo": map[string]string{"name": "Jane Doe"},
		}, nil)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Failed to process any items", decodeBody(t, w)["error"])
	})
}

func registerAndLogin(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/auth/register", map[string]string{
		"email":    username + "@example.com",
		"username": username,
		"password": "correct-horse",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/auth/token", map[string]string{
		"username": username,
		"password": "correct-horse",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decodeBody(t, w)["access_token"].(string)
}

func TestCheckoutAttribution(t *testing.T) {
	router, _ := newTestServer(t)
	token := registerAndLogin(t, router, "shopper")
	authHeader := map[string]string{"Authorization": "Bearer " + token}

	w := doJSON(t, router, http.MethodPost, "/api/checkout", map[string]interface{}{
		"items": []map[string]interface{}{
			{"productId": "2", "quantity": 1},
		},
		"customerInfo": map[string]string{"name": "Shopper"},
	}, authHeader)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	orderID := decodeBody(t, w)["orderId"].(string)

	t.Run("OrderListedForUser", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/orders", nil, authHeader)
		require.Equal(t, http.StatusOK, w.Code)

		var orders []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
		require.Len(t, orders, 1)
		assert.Equal(t, orderID, orders[0]["id"])
		assert.Equal(t, "processing", orders[0]["status"])
	})

	t.Run("OrderFetchableByID", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/orders/%s", orderID), nil, authHeader)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, orderID, decodeBody(t, w)["id"])
	})

	t.Run("OtherUserCannotSeeOrder", func(t *testing.T) {
		otherToken := registerAndLogin(t, router, "snooper")
		w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/orders/%s", orderID), nil,
			map[string]string{"Authorization": "Bearer " + otherToken})
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("InvalidTokenFallsBackToGuest", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/checkout", map[string]interface{}{
			"items": []map[string]interface{}{
				{"productId": "1", "quantity": 1},
			},
			"customerInfo": map[string]string{"name": "Someone"},
		}, map[string]string{"Authorization": "Bearer not-a-real-token"})
		require.Equal(t, http.StatusOK, w.Code)
		order := decodeBody(t, w)["order"].(map[string]interface{})
		assert.Equal(t, "guest", order["userId"])
	})

	t.Run("OrdersEndpointRejectsInvalidToken", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/orders", nil,
			map[string]string{"Authorization": "Bearer not-a-real-token"})
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
