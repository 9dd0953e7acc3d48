package redemption

import (
	"errors"
	"fmt"

	reloadlymodels "github.com/PermitPay/PermitPay-Backend/providers/giftcards/reloadly_models"
	"github.com/PermitPay/PermitPay-Backend/services/monitoring/logging"
	"github.com/PermitPay/PermitPay-Backend/services/order"
	"github.com/ethereum/go-ethereum/common"
)

// ErrRevealRefused covers every verification failure. Refusals are uniform so
// a caller probing the gate learns nothing about which check failed.
var ErrRevealRefused = errors.New("redeem code can't be revealed to the connected wallet")

type TransactionLocator interface {
	FindTransaction(orderID string, token reloadlymodels.AccessToken) (*reloadlymodels.OrderTransaction, error)
}

type CodesClient interface {
	GetRedeemCodes(transactionID int64, token reloadlymodels.AccessToken) ([]reloadlymodels.RedeemCode, error)
}

type Gate struct {
	locator TransactionLocator
	codes   CodesClient
	logger  *logging.Logger
}

func NewGate(locator TransactionLocator, codes CodesClient, logger *logging.Logger) *Gate {
	return &Gate{
		locator: locator,
		codes:   codes,
		logger:  logger,
	}
}

// RevealCodes discloses the secret card fields only after the caller proves
// ownership of the claimed wallet. The signature must recover to the claimed
// address over the exact message derived from the transaction id, the permit
// must correlate to an upstream order, and that order must be SUCCESSFUL and
// match the claimed transaction. No retry, a failed reveal requires the user
// to re-sign and resubmit.
func (g *Gate) RevealCodes(transactionID int64, claimedWallet string, signedMessage string, permitSig string, token reloadlymodels.AccessToken) ([]reloadlymodels.RedeemCode, error) {
	if permitSig == "" || !common.IsHexAddress(claimedWallet) {
		return nil, ErrRevealRefused
	}

	recovered, err := RecoverSigner(MessageToSign(transactionID), signedMessage)
	if err != nil {
		g.logger.Error(fmt.Sprintf("signature recovery failed for transaction %d: %v", transactionID, err))
		return nil, ErrRevealRefused
	}
	if recovered != common.HexToAddress(claimedWallet) {
		g.logger.Info(fmt.Sprintf("signature for transaction %d recovered to %s, claimed %s",
			transactionID, recovered.Hex(), claimedWallet))
		return nil, ErrRevealRefused
	}

	transaction, err := g.locator.FindTransaction(order.IDFromPermit(permitSig), token)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("locating transaction for reveal: %w", err)
	}

	if transaction.TransactionID != transactionID || transaction.Status != reloadlymodels.TransactionSuccessful {
		return nil, ErrRevealRefused
	}

	codes, err := g.codes.GetRedeemCodes(transactionID, token)
	if err != nil {
		return nil, fmt.Errorf("fetching redeem codes: %w", err)
	}

	return codes, nil
}
