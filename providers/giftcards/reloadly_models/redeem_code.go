package reloadlymodels

// RedeemCode holds the secret fields of a purchased card. It is never stored,
// only forwarded to a verified caller.
type RedeemCode struct {
	CardNumber string `json:"cardNumber"`
	PinCode    string `json:"pinCode"`
}
