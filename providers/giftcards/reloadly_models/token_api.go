package reloadlymodels

type AuthConfig struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	GrantType    string `json:"grant_type"`
	Audience     string `json:"audience"`
}

type TokenApiResponse struct {
	AccessToken string `json:"access_token"`
	Scope       string `json:"scope"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// AccessToken is the short-lived credential threaded through one logical
// flow. Expiry is not tracked, every flow re-authenticates.
type AccessToken struct {
	Token     string
	IsSandbox bool
}
