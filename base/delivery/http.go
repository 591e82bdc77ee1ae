package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mintora/goapi/domain"
	"github.com/mintora/goapi/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

var badRequestErrors = []error{
	domain.ErrBadParamInput,
	domain.ErrInvalidNumberFormat,
	domain.ErrInvalidPrice,
	domain.ErrInvalidDuration,
	domain.ErrFeeMismatch,
	domain.ErrPaymentMismatch,
	domain.ErrBidTooLow,
	domain.ErrInvalidAddress,
	domain.ErrInvalidSignature,
}

var conflictErrors = []error{
	domain.ErrConflict,
	domain.ErrIsAuction,
	domain.ErrNotAnAuction,
	domain.ErrAuctionEnded,
	domain.ErrAuctionNotEnded,
	domain.ErrAlreadyFinalized,
	domain.ErrAlreadySold,
	domain.ErrNothingToWithdraw,
	domain.ErrReentrancy,
}

func matchAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound) {
			status = http.StatusNotFound
		} else if matchAny(err, badRequestErrors) {
			status = http.StatusBadRequest
		} else if matchAny(err, conflictErrors) {
			status = http.StatusConflict
		} else if errors.Is(err, domain.ErrNotOperator) {
			status = http.StatusMethodNotAllowed
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
