package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	bCtx "github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/base/delivery"
	"github.com/mintora/goapi/domain"
	dEscrow "github.com/mintora/goapi/domain/escrow"
	authMiddleware "github.com/mintora/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	escrow dEscrow.UseCase
}

func New(e *echo.Echo, am *authMiddleware.AuthMiddleware, _escrow dEscrow.UseCase) {
	h := &handler{_escrow}

	g := e.Group("/listings/:id/refunds")
	g.POST("/withdraw", h.withdrawRefund, am.Auth())
	g.GET("/:address", h.getRefund)
}

// withdrawRefund
//
//	@Summary		Withdraw escrowed refund
//	@Description	Pays out the caller's displaced bid for the listing, at most once
//	@Tags			escrow
//	@Produce		json
//	@Param			id	path		string	true	"listing id"
//	@Success		200	{object}	object{data=string}
//	@Failure		400
//	@Failure		409
//	@Failure		500
//	@Router			/listings/{id}/refunds/withdraw [post]
func (h *handler) withdrawRefund(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	caller := c.Get("address").(domain.Address)

	id, err := domain.ParseListingId(c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid listing id")
	}

	amount, err := h.escrow.WithdrawRefund(ctx, id, caller)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, amount)
}

// getRefund
//
//	@Summary		Get escrowed refund balance
//	@Tags			escrow
//	@Produce		json
//	@Param			id		path		string	true	"listing id"
//	@Param			address	path		string	true	"refund recipient"
//	@Success		200		{object}	object{data=escrow.Refund}
//	@Failure		400
//	@Failure		404
//	@Router			/listings/{id}/refunds/{address} [get]
func (h *handler) getRefund(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	id, err := domain.ParseListingId(c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid listing id")
	}
	address := domain.Address(c.Param("address"))
	if address.IsEmpty() {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid address")
	}

	res, err := h.escrow.GetRefund(ctx, id, address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
