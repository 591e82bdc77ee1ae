package fee

import (
	"time"

	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/domain"
)

// Policy is the single current fee document. The operator identity is not
// stored here; it comes from configuration and is checked by the usecase.
type Policy struct {
	Amount    domain.Amount `json:"amount" bson:"amount"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updatedAt"`
}

type Repo interface {
	Get(ctx ctx.Ctx) (*Policy, error)
	Set(ctx ctx.Ctx, amount domain.Amount) error
}

type UseCase interface {
	// Current returns the fee enforced against createListing/createAuction calls.
	// Listings bind the fee at creation, so changing it never alters them.
	Current(ctx ctx.Ctx) (domain.Amount, error)
	// SetFee requires caller to be the configured operator.
	SetFee(ctx ctx.Ctx, caller domain.Address, amount domain.Amount) error
	Operator() domain.Address
}
