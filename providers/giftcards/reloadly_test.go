package giftcards

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	reloadlymodels "github.com/PermitPay/PermitPay-Backend/providers/giftcards/reloadly_models"
	"github.com/PermitPay/PermitPay-Backend/services/monitoring/logging"
	"github.com/PermitPay/PermitPay-Backend/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(serverURL string, sandbox bool) *ReloadlyProvider {
	return NewGiftCardProviderWithConfig(&GiftCardConfig{
		ClientID:     "test-id",
		ClientSecret: "test-secret",
		Sandbox:      sandbox,
		AuthURL:      serverURL + "/oauth/token",
		BaseURL:      serverURL,
	}, logging.NewLogger(&utils.Config{}))
}

func productFixture(id int64, name string) map[string]interface{} {
	return map[string]interface{}{
		"productId":                id,
		"productName":              name,
		"denominationType":         "RANGED",
		"minRecipientDenomination": 1,
		"maxRecipientDenomination": 1000,
		"country":                  map[string]string{"isoName": "US", "name": "United States"},
		"brand":                    map[string]interface{}{"brandId": 5, "brandName": "Visa"},
	}
}

func TestAuthenticate(t *testing.T) {
	var gotRequest reloadlymodels.AuthConfig
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/oauth/token", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))
		json.NewEncoder(w).Encode(reloadlymodels.TokenApiResponse{
			AccessToken: "issued-token",
			ExpiresIn:   86400,
			TokenType:   "Bearer",
		})
	}))
	defer server.Close()

	provider := newTestProvider(server.URL, true)
	token, err := provider.Authenticate()

	require.NoError(t, err)
	assert.Equal(t, "issued-token", token.Token)
	assert.True(t, token.IsSandbox)
	assert.Equal(t, "client_credentials", gotRequest.GrantType)
	assert.Equal(t, server.URL, gotRequest.Audience)
}

func TestAuthenticateRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))
	defer server.Close()

	provider := newTestProvider(server.URL, false)
	_, err := provider.Authenticate()

	var authErr *reloadlymodels.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, http.StatusUnauthorized, authErr.Status)
}

// Sandbox wraps products in a paged envelope, production returns a bare
// array. Equivalent payloads must normalize to identical sequences.
func TestListProductsNormalizesBothShapes(t *testing.T) {
	products := []interface{}{
		productFixture(13, "Visa Prepaid US"),
		productFixture(14, "Visa eGift US"),
	}

	production := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/countries/US/products", r.URL.Path)
		require.Equal(t, "visa", r.URL.Query().Get("productName"))
		require.Equal(t, "1", r.URL.Query().Get("productCategoryId"))
		json.NewEncoder(w).Encode(products)
	}))
	defer production.Close()

	sandbox := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products", r.URL.Path)
		require.Equal(t, "visa", r.URL.Query().Get("productName"))
		json.NewEncoder(w).Encode(map[string]interface{}{"content": products})
	}))
	defer sandbox.Close()

	prodCards, err := newTestProvider(production.URL, false).
		ListProducts("visa", "US", reloadlymodels.AccessToken{Token: "t", IsSandbox: false})
	require.NoError(t, err)

	sandboxCards, err := newTestProvider(sandbox.URL, true).
		ListProducts("visa", "US", reloadlymodels.AccessToken{Token: "t", IsSandbox: true})
	require.NoError(t, err)

	assert.Equal(t, prodCards, sandboxCards)
	require.Len(t, prodCards, 2)
	assert.Equal(t, int64(13), prodCards[0].ProductID)
}

func TestListProductsTreats404AsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"No products found"}`))
	}))
	defer server.Close()

	cards, err := newTestProvider(server.URL, false).
		ListProducts("mastercard", "US", reloadlymodels.AccessToken{Token: "t"})

	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestListProductsPreservesUpstreamStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"message":"upstream exploded"}`))
	}))
	defer server.Close()

	_, err := newTestProvider(server.URL, false).
		ListProducts("mastercard", "US", reloadlymodels.AccessToken{Token: "t"})

	var upstreamErr *reloadlymodels.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusBadGateway, upstreamErr.Status)
	assert.Equal(t, "upstream exploded", upstreamErr.Message)
}

func TestGetProductByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/18598", r.URL.Path)
		json.NewEncoder(w).Encode(productFixture(18598, "Intl Mastercard US"))
	}))
	defer server.Close()

	card, err := newTestProvider(server.URL, false).
		GetProductByID(18598, reloadlymodels.AccessToken{Token: "t"})

	require.NoError(t, err)
	assert.Equal(t, int64(18598), card.ProductID)
	assert.Equal(t, "Intl Mastercard US", card.ProductName)
}

func TestListTransactionsQueryShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/reports/transactions", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "1", q.Get("size"))
		require.Equal(t, "1", q.Get("page"))
		require.Equal(t, "ORD123", q.Get("customIdentifier"))
		require.Equal(t, "2025-03-15 12:00:00", q.Get("startDate"))
		require.Equal(t, "2026-03-15 12:00:00", q.Get("endDate"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"content": []reloadlymodels.OrderTransaction{
				{TransactionID: 9, CustomIdentifier: "ORD123", Status: "SUCCESSFUL"},
			},
		})
	}))
	defer server.Close()

	start := mustTime(t, "2025-03-15T12:00:00Z")
	end := mustTime(t, "2026-03-15T12:00:00Z")
	transactions, err := newTestProvider(server.URL, false).
		ListTransactions("ORD123", start, end, reloadlymodels.AccessToken{Token: "t"})

	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, int64(9), transactions[0].TransactionID)
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func TestGetRedeemCodes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders/transactions/777/cards", r.URL.Path)
		require.Equal(t, "Bearer t", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]reloadlymodels.RedeemCode{
			{CardNumber: "4111111111111111", PinCode: "9876"},
		})
	}))
	defer server.Close()

	codes, err := newTestProvider(server.URL, false).
		GetRedeemCodes(777, reloadlymodels.AccessToken{Token: "t"})

	require.NoError(t, err)
	require.Len(t, codes, 1)
	assert.Equal(t, "9876", codes[0].PinCode)
}
