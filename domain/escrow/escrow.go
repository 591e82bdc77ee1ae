package escrow

import (
	"time"

	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/domain"
)

// Refund is the escrow ledger entry for one displaced bidder of one listing.
// Amount is non-negative and zeroed atomically with a successful withdrawal.
type Refund struct {
	ListingId domain.ListingId `json:"listingId" bson:"listingId"`
	Address   domain.Address   `json:"address" bson:"address"`
	Amount    domain.Amount    `json:"amount" bson:"amount"`
	UpdatedAt time.Time        `json:"updatedAt" bson:"updatedAt"`
}

type Repo interface {
	FindOne(ctx ctx.Ctx, id domain.ListingId, addr domain.Address) (*Refund, error)
	FindByListing(ctx ctx.Ctx, id domain.ListingId) ([]*Refund, error)
	// Credit adds amount to the (listing, address) balance, creating the entry
	// when absent.
	Credit(ctx ctx.Ctx, id domain.ListingId, addr domain.Address, amount domain.Amount) error
	// SetAmount overwrites the balance. Used to zero it ahead of a payout and
	// to restore it when the payout fails.
	SetAmount(ctx ctx.Ctx, id domain.ListingId, addr domain.Address, amount domain.Amount) error
	EnsureIndexes(ctx ctx.Ctx) error
}

// UseCase drains escrowed refunds with a pull-payment discipline: the balance
// is zeroed before any value leaves the system, so a re-entering recipient can
// never collect twice.
type UseCase interface {
	WithdrawRefund(ctx ctx.Ctx, id domain.ListingId, caller domain.Address) (domain.Amount, error)
	GetRefund(ctx ctx.Ctx, id domain.ListingId, caller domain.Address) (*Refund, error)
}
