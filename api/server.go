package api

import (
	"fmt"
	"net/http"

	"github.com/PermitPay/PermitPay-Backend/models"
	"github.com/PermitPay/PermitPay-Backend/providers/giftcards"
	"github.com/PermitPay/PermitPay-Backend/services/cardresolver"
	"github.com/PermitPay/PermitPay-Backend/services/monitoring/logging"
	"github.com/PermitPay/PermitPay-Backend/services/order"
	"github.com/PermitPay/PermitPay-Backend/services/redemption"
	"github.com/PermitPay/PermitPay-Backend/utils"
	"github.com/gin-gonic/gin"
)

type Server struct {
	router     *gin.Engine
	config     *utils.Config
	logger     *logging.Logger
	provider   *giftcards.ReloadlyProvider
	resolver   *cardresolver.Resolver
	correlator *order.Correlator
	gate       *redemption.Gate
	guard      *order.InflightGuard
}

func NewServer(c *utils.Config) *Server {
	g := gin.Default()
	l := logging.NewLogger(c)

	provider := giftcards.NewGiftCardProvider(c, l)
	correlator := order.NewCorrelator(provider, provider, l)

	g.Use(CORSMiddleware())
	g.Use(RequestIDMiddleware())
	g.Use(l.LoggingMiddleWare())

	return &Server{
		router:     g,
		config:     c,
		logger:     l,
		provider:   provider,
		resolver:   cardresolver.NewResolver(cardresolver.DefaultSkuCatalog(), provider, l),
		correlator: correlator,
		gate:       redemption.NewGate(correlator, provider, l),
		guard:      order.NewInflightGuard(),
	}
}

func (s *Server) Start() {

	dr := models.SuccessResponse{
		Status:  "success",
		Message: "Welcome to PermitPay!",
		Version: utils.REVISION,
	}

	s.router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dr)
	})

	/// Register Object Routers Below
	Cards{}.router(s)
	Orders{}.router(s)
	Redeem{}.router(s)

	s.router.Run(fmt.Sprintf(":%v", s.config.ServerPort))
}
