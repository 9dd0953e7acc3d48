package api

import (
	"errors"
	"net/http"

	"github.com/PermitPay/PermitPay-Backend/api/apistrings"
	reloadlymodels "github.com/PermitPay/PermitPay-Backend/providers/giftcards/reloadly_models"
	"github.com/PermitPay/PermitPay-Backend/services/monitoring/logging"
	"github.com/PermitPay/PermitPay-Backend/services/order"
	"github.com/PermitPay/PermitPay-Backend/services/redemption"
	"github.com/gin-gonic/gin"
)

type Revealer interface {
	RevealCodes(transactionID int64, claimedWallet string, signedMessage string, permitSig string, token reloadlymodels.AccessToken) ([]reloadlymodels.RedeemCode, error)
}

type Redeem struct {
	logger *logging.Logger
	auth   Authenticator
	gate   Revealer
}

func (r Redeem) router(server *Server) {
	r.logger = server.logger
	r.auth = server.provider
	r.gate = server.gate

	server.router.GET("/get-redeem-code", r.getRedeemCode)
}

type redeemParams struct {
	TransactionID int64  `form:"transactionId" binding:"required"`
	SignedMessage string `form:"signedMessage" binding:"required"`
	Wallet        string `form:"wallet" binding:"required,eth_addr"`
	PermitSig     string `form:"permitSig" binding:"required"`
}

func (r *Redeem) getRedeemCode(ctx *gin.Context) {
	var params redeemParams
	if err := ctx.ShouldBindQuery(&params); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": invalidParamsMessage(err)})
		return
	}

	token, err := r.auth.Authenticate()
	if err != nil {
		r.logger.Error("failed to acquire access token: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": apistrings.ServerError})
		return
	}

	codes, err := r.gate.RevealCodes(params.TransactionID, params.Wallet, params.SignedMessage, params.PermitSig, token)
	if errors.Is(err, order.ErrOrderNotFound) {
		ctx.JSON(http.StatusNotFound, apistrings.OrderNotFound)
		return
	}
	if errors.Is(err, redemption.ErrRevealRefused) {
		ctx.JSON(http.StatusForbidden, gin.H{"message": apistrings.RevealRefused})
		return
	}
	if err != nil {
		r.logger.Error("failed to reveal redeem codes: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": apistrings.ServerError})
		return
	}

	ctx.JSON(http.StatusOK, codes)
}
