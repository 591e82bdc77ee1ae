package listing

import (
	"time"

	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/domain"
)

type ActivityType string

const (
	ActivityTypeList    ActivityType = "list"
	ActivityTypeAuction ActivityType = "auction"
	ActivityTypeBid     ActivityType = "bid"
	ActivityTypeSale    ActivityType = "sale"
	ActivityTypeSettle  ActivityType = "settle"
	ActivityTypeRefund  ActivityType = "refund"
)

// Activity is an append-only record of an accepted mutation, kept for
// historical query after the listing itself turns terminal.
type Activity struct {
	Id        string           `json:"id" bson:"id"`
	ListingId domain.ListingId `json:"listingId" bson:"listingId"`
	Type      ActivityType     `json:"type" bson:"type"`
	Account   domain.Address   `json:"account" bson:"account"`
	Amount    domain.Amount    `json:"amount" bson:"amount"`
	Time      time.Time        `json:"time" bson:"time"`
}

type ActivityRepo interface {
	Insert(ctx ctx.Ctx, a *Activity) error
	FindByListing(ctx ctx.Ctx, id domain.ListingId) ([]*Activity, error)
	EnsureIndexes(ctx ctx.Ctx) error
}
