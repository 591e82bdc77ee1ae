package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput       = errors.New("Given Param is not valid")
	ErrInvalidNumberFormat = errors.New("invalid number format")

	// validation errors
	ErrInvalidPrice    = errors.New("price must be positive")
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrFeeMismatch     = errors.New("paid fee does not match current fee")
	ErrPaymentMismatch = errors.New("payment does not match listing price")
	ErrBidTooLow       = errors.New("bid is not higher than current highest bid")

	// state errors
	ErrNotAnAuction      = errors.New("listing is not an auction")
	ErrIsAuction         = errors.New("listing is an auction")
	ErrAuctionEnded      = errors.New("auction deadline has passed")
	ErrAuctionNotEnded   = errors.New("auction deadline has not passed yet")
	ErrAlreadyFinalized  = errors.New("auction is already finalized")
	ErrAlreadySold       = errors.New("listing is already sold")
	ErrNothingToWithdraw = errors.New("no refundable balance")

	// authorization errors
	ErrNotOperator      = errors.New("caller is not the operator")
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")

	// transfer errors
	ErrAssetTransferFailed = errors.New("asset transfer failed")
	ErrValueTransferFailed = errors.New("value transfer failed")

	// concurrency errors
	ErrReentrancy = errors.New("reentrant call rejected")
)
