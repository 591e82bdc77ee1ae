package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	bCtx "github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/base/delivery"
	"github.com/mintora/goapi/domain"
	dFee "github.com/mintora/goapi/domain/fee"
	authMiddleware "github.com/mintora/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	fee dFee.UseCase
}

func New(e *echo.Echo, am *authMiddleware.AuthMiddleware, _fee dFee.UseCase) {
	h := &handler{_fee}

	e.GET("/fee", h.getFee)
	e.POST("/fee", h.setFee, am.Auth())
}

// getFee
//
//	@Summary		Current listing fee
//	@Tags			fee
//	@Produce		json
//	@Success		200	{object}	object{data=string}
//	@Failure		500
//	@Router			/fee [get]
func (h *handler) getFee(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	amount, err := h.fee.Current(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, amount)
}

// setFee
//
//	@Summary		Set listing fee
//	@Description	Operator only. Does not touch fees already bound to listings
//	@Tags			fee
//	@Accept			json
//	@Produce		json
//	@Param			params	body	http.setFee.params	true	"params"
//	@Success		200
//	@Failure		400
//	@Failure		405
//	@Failure		500
//	@Router			/fee [post]
func (h *handler) setFee(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Amount domain.Amount `json:"amount" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.fee.SetFee(ctx, caller, p.Amount); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
