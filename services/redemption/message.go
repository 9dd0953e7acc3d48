package redemption

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// MessageToSign is the deterministic message the client must sign to reveal
// the codes of a transaction. Derived solely from the transaction id so both
// sides can reproduce it independently.
func MessageToSign(transactionID int64) string {
	return fmt.Sprintf(`{"transactionId":%d}`, transactionID)
}

// RecoverSigner returns the address that produced an EIP-191 personal-message
// signature over message.
func RecoverSigner(message string, signature string) (common.Address, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return common.Address{}, fmt.Errorf("decoding signature: %w", err)
	}
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("signature must be %d bytes, got %d", crypto.SignatureLength, len(sig))
	}

	// Wallets produce V as 27/28, the recovery code wants 0/1.
	sig = append([]byte(nil), sig...)
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	hash := personalMessageHash(message)
	pub, err := crypto.SigToPub(hash, sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("recovering public key: %w", err)
	}

	return crypto.PubkeyToAddress(*pub), nil
}

func personalMessageHash(message string) []byte {
	prefixed := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(message), message)
	return crypto.Keccak256([]byte(prefixed))
}
