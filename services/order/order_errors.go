package order

import "errors"

// ErrOrderNotFound means the report returned no record for the custom
// identifier inside the lookback window. A normal outcome, mapped to 404.
var ErrOrderNotFound = errors.New("order not found")

// ErrNoSuccessfulTransaction means a record exists but its status is not
// SUCCESSFUL. Also a normal outcome, not an upstream failure.
var ErrNoSuccessfulTransaction = errors.New("no successful transaction for given order ID")
