package cardresolver

// SkuCatalog is the immutable routing table behind the cascade: per-country
// "international" SKUs for each brand, one global fallback SKU per brand, and
// the country allow-list. Loaded once at process start and injected so the
// resolver stays pure.
type SkuCatalog struct {
	MastercardIntlSkus map[string]int64
	VisaIntlSkus       map[string]int64

	FallbackMastercardSku int64
	FallbackVisaSku       int64

	AllowedCountries map[string]struct{}
}

func (c *SkuCatalog) IsAllowed(countryCode string) bool {
	_, ok := c.AllowedCountries[countryCode]
	return ok
}

// DefaultSkuCatalog mirrors the product routing currently configured on the
// Reloadly account. International cards are tokenized premium products tied
// to one country but usable abroad.
func DefaultSkuCatalog() *SkuCatalog {
	return &SkuCatalog{
		MastercardIntlSkus: map[string]int64{
			"US": 18597,
			"GB": 18601,
			"CA": 18603,
			"AU": 18605,
			"DE": 18609,
			"FR": 18611,
			"ES": 18613,
			"IT": 18615,
			"NL": 18617,
			"IN": 18621,
			"JP": 18623,
			"SG": 18625,
			"AE": 18627,
			"BR": 18629,
			"MX": 18631,
			"NG": 18633,
			"ZA": 18635,
			"KE": 18637,
			"PH": 18639,
			"ID": 18641,
		},
		VisaIntlSkus: map[string]int64{
			"US": 18732,
			"GB": 18734,
			"CA": 18736,
			"AU": 18738,
			"DE": 18742,
			"FR": 18744,
			"ES": 18746,
			"IT": 18748,
			"NL": 18750,
			"IN": 18754,
			"JP": 18756,
			"SG": 18758,
			"AE": 18760,
			"BR": 18762,
			"MX": 18764,
			"NG": 18766,
			"ZA": 18768,
			"KE": 18770,
			"PH": 18772,
			"ID": 18774,
		},
		FallbackMastercardSku: 18598,
		FallbackVisaSku:       18733,
		AllowedCountries:      allowedCountrySet(),
	}
}

var allowedCountries = []string{
	"AE", "AR", "AT", "AU", "BE", "BG", "BR", "CA", "CH", "CL",
	"CO", "CR", "CZ", "DE", "DK", "DO", "EC", "EE", "EG", "ES",
	"FI", "FR", "GB", "GE", "GH", "GR", "GT", "HK", "HR", "HU",
	"ID", "IE", "IL", "IN", "IT", "JP", "KE", "KR", "LT", "LU",
	"LV", "MA", "MX", "MY", "NG", "NL", "NO", "NZ", "PE", "PH",
	"PK", "PL", "PT", "RO", "RS", "SA", "SE", "SG", "SI", "SK",
	"TH", "TR", "TW", "TZ", "UA", "UG", "US", "UY", "VN", "ZA",
}

func allowedCountrySet() map[string]struct{} {
	set := make(map[string]struct{}, len(allowedCountries))
	for _, cc := range allowedCountries {
		set[cc] = struct{}{}
	}
	return set
}
