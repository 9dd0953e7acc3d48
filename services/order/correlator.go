package order

import (
	"fmt"
	"time"

	reloadlymodels "github.com/PermitPay/PermitPay-Backend/providers/giftcards/reloadly_models"
	"github.com/PermitPay/PermitPay-Backend/services/monitoring/logging"
)

// lookbackMonths bounds report queries. Records older than one year are not
// discoverable by design.
const lookbackMonths = 12

type ReportClient interface {
	ListTransactions(customIdentifier string, start, end time.Time, token reloadlymodels.AccessToken) ([]reloadlymodels.OrderTransaction, error)
}

type ProductClient interface {
	GetProductByID(productID int64, token reloadlymodels.AccessToken) (*reloadlymodels.GiftCard, error)
}

type Correlator struct {
	reports  ReportClient
	products ProductClient
	logger   *logging.Logger
	now      func() time.Time
}

func NewCorrelator(reports ReportClient, products ProductClient, logger *logging.Logger) *Correlator {
	return &Correlator{
		reports:  reports,
		products: products,
		logger:   logger,
		now:      time.Now,
	}
}

// FindTransaction locates the upstream transaction whose custom identifier is
// the order id, scanning the trailing twelve months.
func (c *Correlator) FindTransaction(orderID string, token reloadlymodels.AccessToken) (*reloadlymodels.OrderTransaction, error) {
	end := c.now().UTC()
	start := end.AddDate(0, -lookbackMonths, 0)

	transactions, err := c.reports.ListTransactions(orderID, start, end, token)
	if err != nil {
		return nil, fmt.Errorf("querying transactions report: %w", err)
	}

	if len(transactions) == 0 {
		return nil, ErrOrderNotFound
	}

	return &transactions[0], nil
}

// FindSuccessfulTransaction is FindTransaction plus the completion gate and
// best-effort product enrichment. Enrichment failure is logged and yields a
// nil product rather than failing the whole operation.
func (c *Correlator) FindSuccessfulTransaction(orderID string, token reloadlymodels.AccessToken) (*reloadlymodels.OrderTransaction, *reloadlymodels.GiftCard, error) {
	transaction, err := c.FindTransaction(orderID, token)
	if err != nil {
		return nil, nil, err
	}

	if transaction.Status != reloadlymodels.TransactionSuccessful {
		return nil, nil, ErrNoSuccessfulTransaction
	}

	product, err := c.products.GetProductByID(transaction.Product.ProductID, token)
	if err != nil {
		c.logger.Error(fmt.Sprintf("failed to enrich transaction %d with product %d: %v",
			transaction.TransactionID, transaction.Product.ProductID, err))
		return transaction, nil, nil
	}

	return transaction, product, nil
}
