package listing

import (
	"time"

	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/domain"
)

// Listing is the canonical record of a fixed-price sale or an auction.
// The isAuction discriminant is immutable after creation; once Sold is set
// no price or bid field changes again.
type Listing struct {
	ListingId     domain.ListingId `json:"listingId" bson:"listingId"`
	AssetContract domain.Address   `json:"assetContract" bson:"assetContract"`
	AssetId       domain.TokenId   `json:"assetId" bson:"assetId"`
	Seller        domain.Address   `json:"seller" bson:"seller"`

	// CurrentOwner is empty until settlement, then the buyer/winner, or the
	// seller again for an auction that ended without bids.
	CurrentOwner domain.Address `json:"currentOwner" bson:"currentOwner"`

	// Price is the fixed price, or the auction floor when IsAuction is set.
	Price     domain.Amount `json:"price" bson:"price"`
	IsAuction bool          `json:"isAuction" bson:"isAuction"`
	Deadline  *time.Time    `json:"deadline,omitempty" bson:"deadline,omitempty"`

	HighestBidder domain.Address `json:"highestBidder" bson:"highestBidder"`
	HighestBid    domain.Amount  `json:"highestBid" bson:"highestBid"`

	// Fee is the operator fee bound at creation time. Later fee changes never
	// alter it.
	Fee domain.Amount `json:"fee" bson:"fee"`

	Sold      bool       `json:"sold" bson:"sold"`
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
	SoldAt    *time.Time `json:"soldAt,omitempty" bson:"soldAt,omitempty"`

	// SellerPaid and FeeForwarded record settlement payments that already
	// completed. They survive the compensating unsold patch, a retried
	// settlement resumes after them instead of paying again.
	SellerPaid   bool `json:"sellerPaid" bson:"sellerPaid"`
	FeeForwarded bool `json:"feeForwarded" bson:"feeForwarded"`
}

type Patchable struct {
	CurrentOwner  *domain.Address `bson:"currentOwner,omitempty"`
	HighestBidder *domain.Address `bson:"highestBidder,omitempty"`
	HighestBid    *domain.Amount  `bson:"highestBid,omitempty"`
	Sold          *bool           `bson:"sold,omitempty"`
	SoldAt        *time.Time      `bson:"soldAt,omitempty"`
	SellerPaid    *bool           `bson:"sellerPaid,omitempty"`
	FeeForwarded  *bool           `bson:"feeForwarded,omitempty"`
}

type CreateListingPayload struct {
	Seller        domain.Address `json:"seller"`
	AssetContract domain.Address `json:"assetContract"`
	AssetId       domain.TokenId `json:"assetId"`
	Price         domain.Amount  `json:"price"`
	FeePaid       domain.Amount  `json:"feePaid"`
}

type CreateAuctionPayload struct {
	Seller        domain.Address `json:"seller"`
	AssetContract domain.Address `json:"assetContract"`
	AssetId       domain.TokenId `json:"assetId"`
	StartingPrice domain.Amount  `json:"startingPrice"`
	Duration      time.Duration  `json:"duration"`
	FeePaid       domain.Amount  `json:"feePaid"`
}

type FindAllOptions struct {
	Sold           *bool
	Seller         *domain.Address
	CurrentOwner   *domain.Address
	IsAuction      *bool
	DeadlineBefore *time.Time
	Offset         *int32
	Limit          *int32
	Sort           *string
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithSold(sold bool) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Sold = &sold
		return nil
	}
}

func WithSeller(seller domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Seller = seller.ToLowerPtr()
		return nil
	}
}

func WithCurrentOwner(owner domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.CurrentOwner = owner.ToLowerPtr()
		return nil
	}
}

func WithIsAuction(isAuction bool) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.IsAuction = &isAuction
		return nil
	}
}

func WithDeadlineBefore(t time.Time) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.DeadlineBefore = &t
		return nil
	}
}

func WithPagination(offset, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithSort(sort string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Sort = &sort
		return nil
	}
}

type Repo interface {
	FindOne(ctx ctx.Ctx, id domain.ListingId) (*Listing, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	Count(ctx ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
	Insert(ctx ctx.Ctx, l *Listing) error
	Patch(ctx ctx.Ctx, id domain.ListingId, patchable Patchable) error
	// NextId allocates the next listing id. Ids are monotonic and never reused.
	NextId(ctx ctx.Ctx) (domain.ListingId, error)
	EnsureIndexes(ctx ctx.Ctx) error
}

// UseCase is the listing registry and the auction state machine over it.
// Every mutating operation acquires the engine guard for its whole duration and
// brings internal state to its final form before issuing any external transfer.
type UseCase interface {
	CreateListing(ctx ctx.Ctx, payload CreateListingPayload) (domain.ListingId, error)
	CreateAuction(ctx ctx.Ctx, payload CreateAuctionPayload) (domain.ListingId, error)
	Buy(ctx ctx.Ctx, id domain.ListingId, buyer domain.Address, payment domain.Amount) error
	PlaceBid(ctx ctx.Ctx, id domain.ListingId, bidder domain.Address, amount domain.Amount) error
	// EndAuction is permissionless: any party may pay the settlement cost.
	EndAuction(ctx ctx.Ctx, id domain.ListingId) error
	GetListing(ctx ctx.Ctx, id domain.ListingId) (*Listing, error)
	FetchOpenListings(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	FetchOwnedByAddress(ctx ctx.Ctx, owner domain.Address, opts ...FindAllOptionsFunc) ([]*Listing, error)
}
