package api

import (
	"errors"
	"net/http"

	"github.com/PermitPay/PermitPay-Backend/api/apistrings"
	reloadlymodels "github.com/PermitPay/PermitPay-Backend/providers/giftcards/reloadly_models"
	"github.com/PermitPay/PermitPay-Backend/services/cardresolver"
	"github.com/PermitPay/PermitPay-Backend/services/monitoring/logging"
	"github.com/PermitPay/PermitPay-Backend/services/order"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type OrderFinder interface {
	FindSuccessfulTransaction(orderID string, token reloadlymodels.AccessToken) (*reloadlymodels.OrderTransaction, *reloadlymodels.GiftCard, error)
}

type Purchaser interface {
	BuyGiftCard(request *reloadlymodels.GiftCardPurchaseRequest, token reloadlymodels.AccessToken) (*reloadlymodels.GiftCardPurchaseResponse, error)
}

type Orders struct {
	logger    *logging.Logger
	auth      Authenticator
	finder    OrderFinder
	resolver  BestCardResolver
	purchaser Purchaser
	guard     *order.InflightGuard
}

func (o Orders) router(server *Server) {
	o.logger = server.logger
	o.auth = server.provider
	o.finder = server.correlator
	o.resolver = server.resolver
	o.purchaser = server.provider
	o.guard = server.guard

	server.router.GET("/get-order", o.getOrder)
	server.router.POST("/post-order", o.postOrder)
}

type getOrderParams struct {
	OrderID string `form:"orderId" binding:"required"`
}

// orderResponse carries the transaction plus its product metadata. Product is
// null when enrichment failed, the order itself is still reported.
type orderResponse struct {
	Transaction *reloadlymodels.OrderTransaction `json:"transaction"`
	Product     *reloadlymodels.GiftCard         `json:"product"`
}

func (o *Orders) getOrder(ctx *gin.Context) {
	var params getOrderParams
	if err := ctx.ShouldBindQuery(&params); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": invalidParamsMessage(err)})
		return
	}

	token, err := o.auth.Authenticate()
	if err != nil {
		o.logger.Error("failed to acquire access token: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": apistrings.ServerError})
		return
	}

	transaction, product, err := o.finder.FindSuccessfulTransaction(params.OrderID, token)
	if errors.Is(err, order.ErrOrderNotFound) {
		ctx.JSON(http.StatusNotFound, apistrings.OrderNotFound)
		return
	}
	if errors.Is(err, order.ErrNoSuccessfulTransaction) {
		ctx.JSON(http.StatusNotFound, gin.H{"message": apistrings.NoSuccessfulTransaction})
		return
	}
	if err != nil {
		o.logger.Error("failed to look up order: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": apistrings.ServerError})
		return
	}

	ctx.JSON(http.StatusOK, orderResponse{Transaction: transaction, Product: product})
}

type postOrderRequest struct {
	PermitSig string `json:"permitSig" binding:"required"`
	Country   string `json:"country" binding:"required,iso3166_1_alpha2"`
	Amount    string `json:"amount" binding:"required,number"`
}

func (o *Orders) postOrder(ctx *gin.Context) {
	var req postOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": invalidParamsMessage(err)})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid parameters: Amount"})
		return
	}

	orderID := order.IDFromPermit(req.PermitSig)
	if !o.guard.Begin(orderID) {
		ctx.JSON(http.StatusConflict, gin.H{"message": apistrings.DuplicateOrder})
		return
	}
	purchased := false
	defer func() {
		if !purchased {
			o.guard.End(orderID)
		}
	}()

	token, err := o.auth.Authenticate()
	if err != nil {
		o.logger.Error("failed to acquire access token: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": apistrings.ServerError})
		return
	}

	bestCard, err := o.resolver.Resolve(req.Country, amount, token)
	if errors.Is(err, cardresolver.ErrNoCardAvailable) {
		ctx.JSON(http.StatusNotFound, gin.H{"message": apistrings.NoCardsAvailable})
		return
	}
	if err != nil {
		o.logger.Error("failed to resolve card for purchase: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": apistrings.ServerError})
		return
	}

	response, err := o.purchaser.BuyGiftCard(&reloadlymodels.GiftCardPurchaseRequest{
		ProductID:        bestCard.ProductID,
		CountryCode:      req.Country,
		Quantity:         1,
		UnitPrice:        amount.InexactFloat64(),
		CustomIdentifier: orderID,
		SenderName:       "PermitPay",
	}, token)
	if err != nil {
		o.logger.Error("failed to purchase gift card: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": apistrings.ServerError})
		return
	}

	purchased = true
	ctx.JSON(http.StatusOK, response)
}
