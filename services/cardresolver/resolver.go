package cardresolver

import (
	"fmt"

	reloadlymodels "github.com/PermitPay/PermitPay-Backend/providers/giftcards/reloadly_models"
	"github.com/PermitPay/PermitPay-Backend/services/monitoring/logging"
	"github.com/shopspring/decimal"
)

const (
	brandMastercard = "mastercard"
	brandVisa       = "visa"
)

// CatalogClient is the slice of the marketplace the resolver needs.
type CatalogClient interface {
	ListProducts(brand string, country string, token reloadlymodels.AccessToken) ([]reloadlymodels.GiftCard, error)
	GetProductByID(productID int64, token reloadlymodels.AccessToken) (*reloadlymodels.GiftCard, error)
}

type Resolver struct {
	catalog *SkuCatalog
	client  CatalogClient
	logger  *logging.Logger
}

func NewResolver(catalog *SkuCatalog, client CatalogClient, logger *logging.Logger) *Resolver {
	return &Resolver{
		catalog: catalog,
		client:  client,
		logger:  logger,
	}
}

// FallbackLookup distinguishes a fallback product that failed to load from
// one that loaded but cannot cover the amount. The resolver collapses both to
// "unavailable", tests and logs keep the distinction.
type FallbackLookup struct {
	Card *reloadlymodels.GiftCard
	Err  error
}

func (f FallbackLookup) availableFor(amount decimal.Decimal) bool {
	return f.Err == nil && IsAvailableForAmount(f.Card, amount)
}

// Resolve picks one purchasable card for a country and amount. The tier order
// encodes business priority: tokenized international cards over the global
// fallback, Mastercard over Visa, brand-specific country matches over
// brand-wide availability. First satisfying candidate wins and each brand's
// product list is fetched at most once.
func (r *Resolver) Resolve(countryCode string, amount decimal.Decimal, token reloadlymodels.AccessToken) (*reloadlymodels.GiftCard, error) {
	if !r.catalog.IsAllowed(countryCode) {
		return nil, &CountryNotAllowedError{CountryCode: countryCode}
	}

	masterCards, err := r.client.ListProducts(brandMastercard, countryCode, token)
	if err != nil {
		return nil, fmt.Errorf("listing mastercard products: %w", err)
	}

	if sku, ok := r.catalog.MastercardIntlSkus[countryCode]; ok {
		if card := findBySku(masterCards, sku); card != nil && IsAvailableForAmount(card, amount) {
			return card, nil
		}
	}

	if fallback := r.lookupFallback(r.catalog.FallbackMastercardSku, token); fallback.availableFor(amount) {
		return fallback.Card, nil
	}

	visaCards, err := r.client.ListProducts(brandVisa, countryCode, token)
	if err != nil {
		return nil, fmt.Errorf("listing visa products: %w", err)
	}

	if sku, ok := r.catalog.VisaIntlSkus[countryCode]; ok {
		if card := findBySku(visaCards, sku); card != nil && IsAvailableForAmount(card, amount) {
			return card, nil
		}
	}

	if fallback := r.lookupFallback(r.catalog.FallbackVisaSku, token); fallback.availableFor(amount) {
		return fallback.Card, nil
	}

	if card := findAvailable(masterCards, amount); card != nil {
		return card, nil
	}

	if card := findAvailable(visaCards, amount); card != nil {
		return card, nil
	}

	return nil, fmt.Errorf("country %s amount %s: %w", countryCode, amount, ErrNoCardAvailable)
}

// lookupFallback tolerates failure. A missing fallback product must not abort
// an otherwise-successful cascade, so errors are logged and surface as
// "unavailable" at the call site.
func (r *Resolver) lookupFallback(sku int64, token reloadlymodels.AccessToken) FallbackLookup {
	card, err := r.client.GetProductByID(sku, token)
	if err != nil {
		r.logger.Error(fmt.Sprintf("failed to load international fallback product %d: %v", sku, err))
		return FallbackLookup{Err: err}
	}
	return FallbackLookup{Card: card}
}

func findBySku(cards []reloadlymodels.GiftCard, sku int64) *reloadlymodels.GiftCard {
	for i := range cards {
		if cards[i].ProductID == sku {
			return &cards[i]
		}
	}
	return nil
}

// findAvailable returns the first available card in upstream listing order.
func findAvailable(cards []reloadlymodels.GiftCard, amount decimal.Decimal) *reloadlymodels.GiftCard {
	for i := range cards {
		if IsAvailableForAmount(&cards[i], amount) {
			return &cards[i]
		}
	}
	return nil
}
