package cardresolver

import (
	reloadlymodels "github.com/PermitPay/PermitPay-Backend/providers/giftcards/reloadly_models"
	"github.com/shopspring/decimal"
)

// IsAvailableForAmount reports whether a card's stated denominations can
// satisfy the requested amount. FIXED cards must list the exact amount,
// RANGED cards must span it.
func IsAvailableForAmount(card *reloadlymodels.GiftCard, amount decimal.Decimal) bool {
	if card == nil {
		return false
	}

	switch card.DenominationType {
	case reloadlymodels.DenominationFixed:
		for _, denomination := range card.FixedRecipientDenominations {
			if denomination.Equal(amount) {
				return true
			}
		}
		return false
	case reloadlymodels.DenominationRanged:
		if card.MinRecipientDenomination == nil || card.MaxRecipientDenomination == nil {
			return false
		}
		return amount.GreaterThanOrEqual(*card.MinRecipientDenomination) &&
			amount.LessThanOrEqual(*card.MaxRecipientDenomination)
	default:
		return false
	}
}
