package api

import (
	"errors"
	"net/http"

	"github.com/PermitPay/PermitPay-Backend/api/apistrings"
	reloadlymodels "github.com/PermitPay/PermitPay-Backend/providers/giftcards/reloadly_models"
	"github.com/PermitPay/PermitPay-Backend/services/cardresolver"
	"github.com/PermitPay/PermitPay-Backend/services/monitoring/logging"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type Authenticator interface {
	Authenticate() (reloadlymodels.AccessToken, error)
}

type BestCardResolver interface {
	Resolve(countryCode string, amount decimal.Decimal, token reloadlymodels.AccessToken) (*reloadlymodels.GiftCard, error)
}

type Cards struct {
	logger   *logging.Logger
	auth     Authenticator
	resolver BestCardResolver
}

func (c Cards) router(server *Server) {
	c.logger = server.logger
	c.auth = server.provider
	c.resolver = server.resolver

	server.router.GET("/get-best-card", c.getBestCard)
}

type bestCardParams struct {
	Country string `form:"country" binding:"required,iso3166_1_alpha2"`
	Amount  string `form:"amount" binding:"required,number"`
}

func (c *Cards) getBestCard(ctx *gin.Context) {
	var params bestCardParams
	if err := ctx.ShouldBindQuery(&params); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": invalidParamsMessage(err)})
		return
	}

	amount, err := decimal.NewFromString(params.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid parameters: Amount"})
		return
	}

	token, err := c.auth.Authenticate()
	if err != nil {
		c.logger.Error("failed to acquire access token: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": apistrings.ServerError})
		return
	}

	bestCard, err := c.resolver.Resolve(params.Country, amount, token)
	if errors.Is(err, cardresolver.ErrNoCardAvailable) {
		ctx.JSON(http.StatusNotFound, gin.H{"message": apistrings.NoCardsAvailable})
		return
	}
	if err != nil {
		// Disallowed countries and upstream failures both collapse to the
		// generic failure, only the log keeps the detail.
		c.logger.Error("failed to resolve best card: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": apistrings.ServerError})
		return
	}

	ctx.JSON(http.StatusOK, bestCard)
}
