package apistrings

const (
	ServerError             = "There was an error while processing your request."
	NoCardsAvailable        = "There are no gift cards available."
	OrderNotFound           = "Order not found."
	NoSuccessfulTransaction = "There is no successful transaction for given order ID."
	RevealRefused           = "Redeem code can't be revealed to the connected wallet."
	DuplicateOrder          = "An order for this permit is already being processed."
)
