package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	bCtx "github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/base/delivery"
	pricefomatter "github.com/mintora/goapi/base/price_fomatter"
	"github.com/mintora/goapi/domain"
	dListing "github.com/mintora/goapi/domain/listing"
	authMiddleware "github.com/mintora/goapi/stores/auth/delivery/http/middleware"
)

type listingView struct {
	*dListing.Listing
	DisplayPrice string `json:"displayPrice"`
}

func makeView(l *dListing.Listing) listingView {
	display, err := pricefomatter.DisplayPrice(l.Price)
	if err != nil {
		display = string(l.Price)
	}
	return listingView{Listing: l, DisplayPrice: display}
}

func makeViews(ls []*dListing.Listing) []listingView {
	views := make([]listingView, 0, len(ls))
	for _, l := range ls {
		views = append(views, makeView(l))
	}
	return views
}

type handler struct {
	listing  dListing.UseCase
	activity dListing.ActivityRepo
}

func New(e *echo.Echo, am *authMiddleware.AuthMiddleware, cached echo.MiddlewareFunc, _listing dListing.UseCase, _activity dListing.ActivityRepo) {
	h := &handler{_listing, _activity}

	e.POST("/listings", h.createListing, am.Auth())
	e.POST("/auctions", h.createAuction, am.Auth())

	g := e.Group("/listings")
	g.GET("/open", h.getOpenListings, cached)
	g.GET("/owned/:address", h.getOwnedListings, cached)
	g.GET("/:id", h.getListing)
	g.GET("/:id/activities", h.getActivities)
	g.POST("/:id/buy", h.buy, am.Auth())
	g.POST("/:id/bids", h.placeBid, am.Auth())
	g.POST("/:id/end", h.endAuction)
}

// createListing
//
//	@Summary		Create fixed-price listing
//	@Description	Takes the asset into custody and opens a fixed-price listing
//	@Tags			listing
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.createListing.params	true	"params"
//	@Success		201		{object}	object{data=int64}
//	@Failure		400
//	@Failure		409
//	@Failure		500
//	@Router			/listings [post]
func (h *handler) createListing(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	seller := c.Get("address").(domain.Address)

	type params struct {
		AssetContract domain.Address `json:"assetContract" validate:"required"`
		AssetId       domain.TokenId `json:"assetId" validate:"required"`
		Price         domain.Amount  `json:"price" validate:"required"`
		FeePaid       domain.Amount  `json:"feePaid"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if p.FeePaid == "" {
		p.FeePaid = domain.ZeroAmount
	}

	id, err := h.listing.CreateListing(ctx, dListing.CreateListingPayload{
		Seller:        seller,
		AssetContract: p.AssetContract,
		AssetId:       p.AssetId,
		Price:         p.Price,
		FeePaid:       p.FeePaid,
	})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, id)
}

// createAuction
//
//	@Summary		Create auction
//	@Description	Takes the asset into custody and opens a time-bounded auction
//	@Tags			listing
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.createAuction.params	true	"params"
//	@Success		201		{object}	object{data=int64}
//	@Failure		400
//	@Failure		409
//	@Failure		500
//	@Router			/auctions [post]
func (h *handler) createAuction(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	seller := c.Get("address").(domain.Address)

	type params struct {
		AssetContract   domain.Address `json:"assetContract" validate:"required"`
		AssetId         domain.TokenId `json:"assetId" validate:"required"`
		StartingPrice   domain.Amount  `json:"startingPrice" validate:"required"`
		DurationSeconds int64          `json:"durationSeconds" validate:"required"`
		FeePaid         domain.Amount  `json:"feePaid"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if p.FeePaid == "" {
		p.FeePaid = domain.ZeroAmount
	}

	id, err := h.listing.CreateAuction(ctx, dListing.CreateAuctionPayload{
		Seller:        seller,
		AssetContract: p.AssetContract,
		AssetId:       p.AssetId,
		StartingPrice: p.StartingPrice,
		Duration:      time.Duration(p.DurationSeconds) * time.Second,
		FeePaid:       p.FeePaid,
	})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, id)
}

// buy
//
//	@Summary		Buy fixed-price listing
//	@Description	Settles an unsold fixed-price listing at its exact price
//	@Tags			listing
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string					true	"listing id"
//	@Param			params	body	http.buy.params	true	"params"
//	@Success		200
//	@Failure		400
//	@Failure		404
//	@Failure		409
//	@Failure		500
//	@Router			/listings/{id}/buy [post]
func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	buyer := c.Get("address").(domain.Address)

	id, err := domain.ParseListingId(c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid listing id")
	}

	type params struct {
		Payment domain.Amount `json:"payment" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.listing.Buy(ctx, id, buyer, p.Payment); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

// placeBid
//
//	@Summary		Place bid
//	@Description	Places a strictly higher bid on an open auction
//	@Tags			listing
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string						true	"listing id"
//	@Param			params	body	http.placeBid.params	true	"params"
//	@Success		200
//	@Failure		400
//	@Failure		404
//	@Failure		409
//	@Failure		500
//	@Router			/listings/{id}/bids [post]
func (h *handler) placeBid(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	bidder := c.Get("address").(domain.Address)

	id, err := domain.ParseListingId(c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid listing id")
	}

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

	if err := h.listing.PlaceBid(ctx, id, bidder, p.Amount); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

// endAuction
//
//	@Summary		End auction
//	@Description	Settles an expired auction, anyone may call
//	@Tags			listing
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"listing id"
//	@Success		200
//	@Failure		400
//	@Failure		404
//	@Failure		409
//	@Failure		500
//	@Router			/listings/{id}/end [post]
func (h *handler) endAuction(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	id, err := domain.ParseListingId(c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid listing id")
	}

	if err := h.listing.EndAuction(ctx, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

// getListing
//
//	@Summary		Get listing
//	@Tags			listing
//	@Produce		json
//	@Param			id	path		string	true	"listing id"
//	@Success		200	{object}	object{data=http.listingView}
//	@Failure		400
//	@Failure		404
//	@Router			/listings/{id} [get]
func (h *handler) getListing(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	id, err := domain.ParseListingId(c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid listing id")
	}

	res, err := h.listing.GetListing(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, makeView(res))
}

// getOpenListings
//
//	@Summary		List open listings
//	@Tags			listing
//	@Produce		json
//	@Param			offset		query		int		false	"paging offset"
//	@Param			limit		query		int		false	"paging limit"
//	@Param			isAuction	query		bool	false	"auctions only or fixed-price only"
//	@Param			seller		query		string	false	"filter by seller"
//	@Success		200	{object}	object{data=[]http.listingView}
//	@Failure		500
//	@Router			/listings/open [get]
func (h *handler) getOpenListings(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	type params struct {
		Offset    int32           `query:"offset"`
		Limit     int32           `query:"limit"`
		IsAuction *bool           `query:"isAuction"`
		Seller    *domain.Address `query:"seller"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []dListing.FindAllOptionsFunc{
		dListing.WithPagination(p.Offset, p.Limit),
	}
	if p.IsAuction != nil {
		opts = append(opts, dListing.WithIsAuction(*p.IsAuction))
	}
	if p.Seller != nil {
		opts = append(opts, dListing.WithSeller(*p.Seller))
	}

	res, err := h.listing.FetchOpenListings(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, makeViews(res))
}

// getOwnedListings
//
//	@Summary		List settled listings owned by address
//	@Tags			listing
//	@Produce		json
//	@Param			address	path		string	true	"owner address"
//	@Param			offset	query		int		false	"paging offset"
//	@Param			limit	query		int		false	"paging limit"
//	@Success		200	{object}	object{data=[]http.listingView}
//	@Failure		500
//	@Router			/listings/owned/{address} [get]
func (h *handler) getOwnedListings(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	owner := domain.Address(c.Param("address"))
	if owner.IsEmpty() {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid address")
	}

	type params struct {
		Offset int32 `query:"offset"`
		Limit  int32 `query:"limit"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	res, err := h.listing.FetchOwnedByAddress(ctx, owner, dListing.WithPagination(p.Offset, p.Limit))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, makeViews(res))
}

// getActivities
//
//	@Summary		Listing activity history
//	@Tags			listing
//	@Produce		json
//	@Param			id	path		string	true	"listing id"
//	@Success		200	{object}	object{data=[]listing.Activity}
//	@Failure		400
//	@Failure		500
//	@Router			/listings/{id}/activities [get]
func (h *handler) getActivities(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	id, err := domain.ParseListingId(c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid listing id")
	}

	res, err := h.activity.FindByListing(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
