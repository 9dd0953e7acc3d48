package reloadlymodels

type GiftCardPurchaseResponse struct {
	TransactionID    int64              `json:"transactionId"`
	Amount           float64            `json:"amount"`
	Discount         float64            `json:"discount"`
	CurrencyCode     string             `json:"currencyCode"`
	Fee              float64            `json:"fee"`
	SMSFee           float64            `json:"smsFee"`
	RecipientEmail   string             `json:"recipientEmail"`
	RecipientPhone   string             `json:"recipientPhone"`
	CustomIdentifier string             `json:"customIdentifier"`
	Status           string             `json:"status"`
	Product          TransactionProduct `json:"product"`
}
