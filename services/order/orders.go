package order

import (
	"encoding/hex"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/patrickmn/go-cache"
)

// IDFromPermit derives the order's custom identifier from the permit
// signature. Deterministic, so a purchase and its later reveal correlate to
// the same upstream record without any local storage.
func IDFromPermit(permitSig string) string {
	return hex.EncodeToString(crypto.Keccak256([]byte(permitSig)))
}

// InflightGuard suppresses duplicate purchase submissions of the same order
// within a short window. In-process only, consistent with the stateless
// per-request model, a restart simply forgets in-flight orders.
type InflightGuard struct {
	cache *cache.Cache
}

func NewInflightGuard() *InflightGuard {
	return &InflightGuard{
		cache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

// Begin marks an order as in flight. Returns false when it already is.
func (g *InflightGuard) Begin(orderID string) bool {
	err := g.cache.Add(orderID, struct{}{}, cache.DefaultExpiration)
	return err == nil
}

// End releases an order so a failed purchase can be retried immediately.
func (g *InflightGuard) End(orderID string) {
	g.cache.Delete(orderID)
}
