package reloadlymodels

import "github.com/shopspring/decimal"

const (
	DenominationFixed  = "FIXED"
	DenominationRanged = "RANGED"
)

type GiftCard struct {
	ProductID                   int64             `json:"productId"`
	ProductName                 string            `json:"productName"`
	Global                      bool              `json:"global"`
	DenominationType            string            `json:"denominationType"`
	DiscountPercentage          float64           `json:"discountPercentage"`
	MinRecipientDenomination    *decimal.Decimal  `json:"minRecipientDenomination"`
	MaxRecipientDenomination    *decimal.Decimal  `json:"maxRecipientDenomination"`
	MinSenderDenomination       *decimal.Decimal  `json:"minSenderDenomination"`
	MaxSenderDenomination       *decimal.Decimal  `json:"maxSenderDenomination"`
	FixedRecipientDenominations []decimal.Decimal `json:"fixedRecipientDenominations"`
	FixedSenderDenominations    []decimal.Decimal `json:"fixedSenderDenominations"`
	RecipientCurrencyCode       string            `json:"recipientCurrencyCode"`
	SenderCurrencyCode          string            `json:"senderCurrencyCode"`
	SenderFee                   float64           `json:"senderFee"`
	Country                     Country           `json:"country"`
	Brand                       Brand             `json:"brand"`
	Category                    Category          `json:"category"`
	RedeemInstruction           RedeemInstruction `json:"redeemInstruction"`
	LogoURLs                    []string          `json:"logoUrls"`
}

type Country struct {
	ISOName string `json:"isoName"`
	Name    string `json:"name"`
	FlagURL string `json:"flagUrl"`
}

type Brand struct {
	BrandID   int64  `json:"brandId"`
	BrandName string `json:"brandName"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type RedeemInstruction struct {
	Concise string `json:"concise"`
	Verbose string `json:"verbose"`
}

// PageResponse is the paged envelope some Reloadly endpoints wrap their
// results in. The production country-scoped products endpoint returns a bare
// array instead, callers normalize the two shapes.
type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int64 `json:"totalPages"`
}
