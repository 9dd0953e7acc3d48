package giftcards

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PermitPay/PermitPay-Backend/providers"
	reloadlymodels "github.com/PermitPay/PermitPay-Backend/providers/giftcards/reloadly_models"
	"github.com/PermitPay/PermitPay-Backend/services/monitoring/logging"
	"github.com/PermitPay/PermitPay-Backend/utils"
)

const (
	authURL        = "https://auth.reloadly.com/oauth/token"
	productionURL  = "https://giftcards.reloadly.com"
	sandboxURL     = "https://giftcards-sandbox.reloadly.com"
	giftCardAccept = "application/com.reloadly.giftcards-v1+json"

	// productCategoryId = 1 = Finance. Prevents mixing of other gift cards
	// with similar keywords.
	financeCategoryID = 1

	reportTimeLayout = "2006-01-02 15:04:05"
)

type ReloadlyProvider struct {
	providers.BaseProvider
	config *GiftCardConfig
}

type GiftCardConfig struct {
	ClientID     string
	ClientSecret string
	Sandbox      bool

	// Overridable for tests, empty means the fixed Reloadly endpoints.
	AuthURL string
	BaseURL string
}

func NewGiftCardProvider(c *utils.Config, logger *logging.Logger) *ReloadlyProvider {
	return NewGiftCardProviderWithConfig(&GiftCardConfig{
		ClientID:     c.ReloadlyClientID,
		ClientSecret: c.ReloadlyClientSecret,
		Sandbox:      c.UseReloadlySandbox,
	}, logger)
}

func NewGiftCardProviderWithConfig(c *GiftCardConfig, logger *logging.Logger) *ReloadlyProvider {
	return &ReloadlyProvider{
		BaseProvider: providers.BaseProvider{
			Name: providers.Reloadly,
			Client: &http.Client{
				Timeout: time.Second * 30,
			},
			Logger: logger,
		},
		config: c,
	}
}

func (r *ReloadlyProvider) baseURL() string {
	if r.config.BaseURL != "" {
		return r.config.BaseURL
	}
	if r.config.Sandbox {
		return sandboxURL
	}
	return productionURL
}

func (r *ReloadlyProvider) authURL() string {
	if r.config.AuthURL != "" {
		return r.config.AuthURL
	}
	return authURL
}

func cardHeaders(token reloadlymodels.AccessToken) map[string]string {
	return map[string]string{
		"Accept":        giftCardAccept,
		"Authorization": "Bearer " + token.Token,
	}
}

// Authenticate performs one client-credentials exchange. Tokens are not
// cached, each logical flow re-authenticates and threads the token through
// every downstream call so the audience stays consistent.
func (r *ReloadlyProvider) Authenticate() (reloadlymodels.AccessToken, error) {
	var requiredHeaders = make(map[string]string)
	requiredHeaders["Accept"] = "application/json"
	requiredHeaders["Content-Type"] = "application/json"

	request := reloadlymodels.AuthConfig{
		ClientID:     r.config.ClientID,
		ClientSecret: r.config.ClientSecret,
		GrantType:    "client_credentials",
		Audience:     r.baseURL(),
	}

	resp, err := r.MakeRequest("POST", r.authURL(), request, requiredHeaders)
	if err != nil {
		return reloadlymodels.AccessToken{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		r.Logger.Error("resp", string(respBody))
		return reloadlymodels.AccessToken{}, &reloadlymodels.AuthError{
			Status: resp.StatusCode,
			Body:   string(respBody),
		}
	}

	var apiResponse reloadlymodels.TokenApiResponse
	decoder := json.NewDecoder(resp.Body)
	err = decoder.Decode(&apiResponse)
	if err != nil {
		return reloadlymodels.AccessToken{}, fmt.Errorf("error parsing token response: %w", err)
	}

	return reloadlymodels.AccessToken{
		Token:     apiResponse.AccessToken,
		IsSandbox: r.config.Sandbox,
	}, nil
}

// ListProducts fetches every product matching the brand keyword for a
// country. Production filters by country path segment, the sandbox catalog
// cannot and uses the flat products endpoint instead, which wraps results in
// a paged envelope. Both shapes normalize to one slice. A 404 means zero
// products, not an error.
func (r *ReloadlyProvider) ListProducts(brand string, country string, token reloadlymodels.AccessToken) ([]reloadlymodels.GiftCard, error) {
	if token.IsSandbox {
		return r.listSandboxProducts(brand, token)
	}

	endpoint := fmt.Sprintf("%s/countries/%s/products?productName=%s&productCategoryId=%d",
		r.baseURL(), url.PathEscape(country), url.QueryEscape(brand), financeCategoryID)

	resp, err := r.MakeRequest("GET", endpoint, nil, cardHeaders(token))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return []reloadlymodels.GiftCard{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, upstreamError(resp)
	}

	var products []reloadlymodels.GiftCard
	decoder := json.NewDecoder(resp.Body)
	err = decoder.Decode(&products)
	if err != nil {
		return nil, fmt.Errorf("error parsing products: %w", err)
	}

	return products, nil
}

func (r *ReloadlyProvider) listSandboxProducts(brand string, token reloadlymodels.AccessToken) ([]reloadlymodels.GiftCard, error) {
	endpoint := fmt.Sprintf("%s/products?productName=%s&productCategoryId=%d",
		r.baseURL(), url.QueryEscape(brand), financeCategoryID)

	resp, err := r.MakeRequest("GET", endpoint, nil, cardHeaders(token))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return []reloadlymodels.GiftCard{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, upstreamError(resp)
	}

	var page reloadlymodels.PageResponse[reloadlymodels.GiftCard]
	decoder := json.NewDecoder(resp.Body)
	err = decoder.Decode(&page)
	if err != nil {
		return nil, fmt.Errorf("error parsing products: %w", err)
	}

	return page.Content, nil
}

// GetProductByID is used for fallback SKU lookups and order enrichment.
func (r *ReloadlyProvider) GetProductByID(productID int64, token reloadlymodels.AccessToken) (*reloadlymodels.GiftCard, error) {
	endpoint := fmt.Sprintf("%s/products/%d", r.baseURL(), productID)

	resp, err := r.MakeRequest("GET", endpoint, nil, cardHeaders(token))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, upstreamError(resp)
	}

	var product reloadlymodels.GiftCard
	decoder := json.NewDecoder(resp.Body)
	err = decoder.Decode(&product)
	if err != nil {
		return nil, fmt.Errorf("error parsing product: %w", err)
	}

	return &product, nil
}

// ListTransactions queries the transactions report for a custom identifier
// inside [start, end]. The identifier is unique per order, so one page of one
// result is enough.
func (r *ReloadlyProvider) ListTransactions(customIdentifier string, start, end time.Time, token reloadlymodels.AccessToken) ([]reloadlymodels.OrderTransaction, error) {
	endpoint := fmt.Sprintf("%s/reports/transactions?size=1&page=1&customIdentifier=%s&startDate=%s&endDate=%s",
		r.baseURL(),
		url.QueryEscape(customIdentifier),
		url.QueryEscape(start.UTC().Format(reportTimeLayout)),
		url.QueryEscape(end.UTC().Format(reportTimeLayout)))

	resp, err := r.MakeRequest("GET", endpoint, nil, cardHeaders(token))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, upstreamError(resp)
	}

	var page reloadlymodels.PageResponse[reloadlymodels.OrderTransaction]
	decoder := json.NewDecoder(resp.Body)
	err = decoder.Decode(&page)
	if err != nil {
		return nil, fmt.Errorf("error parsing transactions: %w", err)
	}

	return page.Content, nil
}

func (r *ReloadlyProvider) BuyGiftCard(request *reloadlymodels.GiftCardPurchaseRequest, token reloadlymodels.AccessToken) (*reloadlymodels.GiftCardPurchaseResponse, error) {
	endpoint := r.baseURL() + "/orders"

	resp, err := r.MakeRequest("POST", endpoint, *request, cardHeaders(token))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, upstreamError(resp)
	}

	var response reloadlymodels.GiftCardPurchaseResponse
	decoder := json.NewDecoder(resp.Body)
	err = decoder.Decode(&response)
	if err != nil {
		return nil, fmt.Errorf("error parsing purchase response: %w", err)
	}

	return &response, nil
}

// GetRedeemCodes fetches the secret card fields for a purchased order. The
// caller is responsible for gating access, codes are forwarded, never stored.
func (r *ReloadlyProvider) GetRedeemCodes(transactionID int64, token reloadlymodels.AccessToken) ([]reloadlymodels.RedeemCode, error) {
	endpoint := fmt.Sprintf("%s/orders/transactions/%d/cards", r.baseURL(), transactionID)

	resp, err := r.MakeRequest("GET", endpoint, nil, cardHeaders(token))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, upstreamError(resp)
	}

	var codes []reloadlymodels.RedeemCode
	decoder := json.NewDecoder(resp.Body)
	err = decoder.Decode(&codes)
	if err != nil {
		return nil, fmt.Errorf("error parsing redeem codes: %w", err)
	}

	return codes, nil
}

func upstreamError(resp *http.Response) error {
	var failure reloadlymodels.FailureResponse
	respBody, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(respBody, &failure); err != nil {
		failure.Message = string(respBody)
	}
	return &reloadlymodels.UpstreamError{
		Status:  resp.StatusCode,
		Message: failure.Message,
	}
}
