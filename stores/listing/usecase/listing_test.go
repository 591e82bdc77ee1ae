package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/base/guard"
	"github.com/mintora/goapi/base/ptr"
	"github.com/mintora/goapi/domain"
	mEscrow "github.com/mintora/goapi/domain/escrow/mocks"
	mExchange "github.com/mintora/goapi/domain/exchange/mocks"
	mFee "github.com/mintora/goapi/domain/fee/mocks"
	"github.com/mintora/goapi/domain/listing"
	mListing "github.com/mintora/goapi/domain/listing/mocks"
)

const (
	seller    = domain.Address("0x1111111111111111111111111111111111111111")
	buyer     = domain.Address("0x2222222222222222222222222222222222222222")
	bidderA   = domain.Address("0x3333333333333333333333333333333333333333")
	bidderB   = domain.Address("0x4444444444444444444444444444444444444444")
	operator  = domain.Address("0x5555555555555555555555555555555555555555")
	custodian = domain.Address("0x6666666666666666666666666666666666666666")
	assetAddr = domain.Address("0x7777777777777777777777777777777777777777")
)

type listingSuite struct {
	suite.Suite

	listingRepo  *mListing.Repo
	activityRepo *mListing.ActivityRepo
	escrowRepo   *mEscrow.Repo
	fee          *mFee.UseCase
	asset        *mExchange.AssetCustodian
	value        *mExchange.ValueTransferer
	guard        *guard.Guard
	now          time.Time
	im           *impl
}

func TestListingSuite(t *testing.T) {
	suite.Run(t, new(listingSuite))
}

func (s *listingSuite) SetupTest() {
	s.listingRepo = &mListing.Repo{}
	s.activityRepo = &mListing.ActivityRepo{}
	s.escrowRepo = &mEscrow.Repo{}
	s.fee = &mFee.UseCase{}
	s.asset = &mExchange.AssetCustodian{}
	s.value = &mExchange.ValueTransferer{}
	s.guard = guard.New()
	s.now = time.Unix(1700000000, 0).UTC()
	timeNow = func() time.Time { return s.now }
	s.im = NewListingUseCase(&ListingUseCaseCfg{
		ListingRepo:  s.listingRepo,
		ActivityRepo: s.activityRepo,
		EscrowRepo:   s.escrowRepo,
		Fee:          s.fee,
		Asset:        s.asset,
		Value:        s.value,
		Guard:        s.guard,
		Custodian:    custodian,
	}).(*impl)
}

func (s *listingSuite) TearDownTest() {
	timeNow = time.Now
	s.listingRepo.AssertExpectations(s.T())
	s.activityRepo.AssertExpectations(s.T())
	s.escrowRepo.AssertExpectations(s.T())
	s.fee.AssertExpectations(s.T())
	s.asset.AssertExpectations(s.T())
	s.value.AssertExpectations(s.T())
}

func (s *listingSuite) fixedPriceListing(id domain.ListingId, price domain.Amount) *listing.Listing {
	return &listing.Listing{
		ListingId:     id,
		AssetContract: assetAddr,
		AssetId:       "42",
		Seller:        seller,
		Price:         price,
		IsAuction:     false,
		HighestBid:    domain.ZeroAmount,
		Fee:           "5",
		Sold:          false,
		CreatedAt:     s.now.Add(-time.Hour),
	}
}

func (s *listingSuite) auction(id domain.ListingId, floor domain.Amount, deadline time.Time) *listing.Listing {
	return &listing.Listing{
		ListingId:     id,
		AssetContract: assetAddr,
		AssetId:       "42",
		Seller:        seller,
		Price:         floor,
		IsAuction:     true,
		Deadline:      &deadline,
		HighestBid:    domain.ZeroAmount,
		Fee:           "5",
		Sold:          false,
		CreatedAt:     s.now.Add(-time.Hour),
	}
}

func (s *listingSuite) TestCreateListing() {
	ctx := ctx.Background()
	payload := listing.CreateListingPayload{
		Seller:        seller,
		AssetContract: assetAddr,
		AssetId:       "42",
		Price:         "100",
		FeePaid:       "5",
	}

	s.fee.On("Current", mock.Anything).Return(domain.Amount("5"), nil).Once()
	s.listingRepo.On("NextId", mock.Anything).Return(domain.ListingId(7), nil).Once()
	s.asset.On("Transfer", mock.Anything, assetAddr, domain.TokenId("42"), seller, custodian).Return(nil).Once()
	s.listingRepo.On("Insert", mock.Anything, mock.MatchedBy(func(l *listing.Listing) bool {
		return l.ListingId == 7 && !l.IsAuction && l.Price == "100" && l.Fee == "5" && !l.Sold
	})).Return(nil).Once()
	s.activityRepo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()

	id, err := s.im.CreateListing(ctx, payload)
	s.NoError(err)
	s.Equal(domain.ListingId(7), id)
}

func (s *listingSuite) TestCreateListingInvalidPrice() {
	ctx := ctx.Background()
	for _, price := range []domain.Amount{"0", "-1", "abc"} {
		payload := listing.CreateListingPayload{
			Seller:        seller,
			AssetContract: assetAddr,
			AssetId:       "42",
			Price:         price,
			FeePaid:       "5",
		}
		_, err := s.im.CreateListing(ctx, payload)
		s.ErrorIs(err, domain.ErrInvalidPrice)
	}
}

func (s *listingSuite) TestCreateListingFeeMismatch() {
	ctx := ctx.Background()
	payload := listing.CreateListingPayload{
		Seller:        seller,
		AssetContract: assetAddr,
		AssetId:       "42",
		Price:         "100",
		FeePaid:       "4",
	}
	s.fee.On("Current", mock.Anything).Return(domain.Amount("5"), nil).Once()

	_, err := s.im.CreateListing(ctx, payload)
	s.ErrorIs(err, domain.ErrFeeMismatch)
}

func (s *listingSuite) TestCreateListingCustodyFailure() {
	ctx := ctx.Background()
	payload := listing.CreateListingPayload{
		Seller:        seller,
		AssetContract: assetAddr,
		AssetId:       "42",
		Price:         "100",
		FeePaid:       "5",
	}
	s.fee.On("Current", mock.Anything).Return(domain.Amount("5"), nil).Once()
	s.listingRepo.On("NextId", mock.Anything).Return(domain.ListingId(7), nil).Once()
	s.asset.On("Transfer", mock.Anything, assetAddr, domain.TokenId("42"), seller, custodian).Return(domain.ErrAssetTransferFailed).Once()

	_, err := s.im.CreateListing(ctx, payload)
	s.ErrorIs(err, domain.ErrAssetTransferFailed)
	s.listingRepo.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}

func (s *listingSuite) TestCreateAuctionInvalidDuration() {
	ctx := ctx.Background()
	payload := listing.CreateAuctionPayload{
		Seller:        seller,
		AssetContract: assetAddr,
		AssetId:       "42",
		StartingPrice: "100",
		Duration:      0,
		FeePaid:       "5",
	}
	_, err := s.im.CreateAuction(ctx, payload)
	s.ErrorIs(err, domain.ErrInvalidDuration)
}

func (s *listingSuite) TestCreateAuctionSetsDeadline() {
	ctx := ctx.Background()
	payload := listing.CreateAuctionPayload{
		Seller:        seller,
		AssetContract: assetAddr,
		AssetId:       "42",
		StartingPrice: "100",
		Duration:      time.Hour,
		FeePaid:       "5",
	}
	deadline := s.now.Add(time.Hour)

	s.fee.On("Current", mock.Anything).Return(domain.Amount("5"), nil).Once()
	s.listingRepo.On("NextId", mock.Anything).Return(domain.ListingId(8), nil).Once()
	s.asset.On("Transfer", mock.Anything, assetAddr, domain.TokenId("42"), seller, custodian).Return(nil).Once()
	s.listingRepo.On("Insert", mock.Anything, mock.MatchedBy(func(l *listing.Listing) bool {
		return l.IsAuction && l.Deadline != nil && l.Deadline.Equal(deadline) && l.HighestBid == domain.ZeroAmount
	})).Return(nil).Once()
	s.activityRepo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()

	id, err := s.im.CreateAuction(ctx, payload)
	s.NoError(err)
	s.Equal(domain.ListingId(8), id)
}

func (s *listingSuite) TestBuy() {
	ctx := ctx.Background()
	l := s.fixedPriceListing(7, "100")

	s.listingRepo.On("FindOne", mock.Anything, domain.ListingId(7)).Return(l, nil).Once()
	s.listingRepo.On("Patch", mock.Anything, domain.ListingId(7), listing.Patchable{
		Sold:         ptr.Bool(true),
		CurrentOwner: buyer.ToLowerPtr(),
		SoldAt:       &s.now,
	}).Return(nil).Once()
	s.fee.On("Operator").Return(operator).Once()
	s.value.On("Pay", mock.Anything, seller, domain.Amount("100")).Return(nil).Once()
	s.listingRepo.On("Patch", mock.Anything, domain.ListingId(7), listing.Patchable{
		SellerPaid: ptr.Bool(true),
	}).Return(nil).Once()
	s.value.On("Pay", mock.Anything, operator, domain.Amount("5")).Return(nil).Once()
	s.listingRepo.On("Patch", mock.Anything, domain.ListingId(7), listing.Patchable{
		FeeForwarded: ptr.Bool(true),
	}).Return(nil).Once()
	s.asset.On("Transfer", mock.Anything, assetAddr, domain.TokenId("42"), custodian, buyer).Return(nil).Once()
	s.activityRepo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()

	s.NoError(s.im.Buy(ctx, 7, buyer, "100"))
}

func (s *listingSuite) TestBuyOnAuction() {
	ctx := ctx.Background()
	l := s.auction(9, "100", s.now.Add(time.Hour))
	s.listingRepo.On("FindOne", mock.Anything, domain.ListingId(9)).Return(l, nil).Once()

	s.ErrorIs(s.im.Buy(ctx, 9, buyer, "100"), domain.ErrIsAuction)
}

func (s *listingSuite) TestBuyAlreadySold() {
	ctx := ctx.Background()
	l := s.fixedPriceListing(7, "100")
	l.Sold = true
	l.CurrentOwner = buyer
	s.listingRepo.On("FindOne", mock.Anything, domain.ListingId(7)).Return(l, nil).Once()

	s.ErrorIs(s.im.Buy(ctx, 7, bidderA, "100"), domain.ErrAlreadySold)
}

func (s *listingSuite) TestBuyPaymentMismatch() {
	ctx := ctx.Background()
	l := s.fixedPriceListing(7, "100")
	s.listingRepo.On("FindOne", mock.Anything, domain.ListingId(7)).Return(l, nil).Once()

	s.ErrorIs(s.im.Buy(ctx, 7, buyer, "99"), domain.ErrPaymentMismatch)
}

func (s *listingSuite) TestBuyRevertsOnTransferFailure() {
	ctx := ctx.Background()
	l := s.fixedPriceListing(7, "100")

	s.listingRepo.On("FindOne", mock.Anything, domain.ListingId(7)).Return(l, nil).Once()
	s.listingRepo.On("Patch", mock.Anything, domain.ListingId(7), listing.Patchable{
		Sold:         ptr.Bool(true),
		CurrentOwner: buyer.ToLowerPtr(),
		SoldAt:       &s.now,
	}).Return(nil).Once()
	s.fee.On("Operator").Return(operator).Once()
	s.value.On("Pay", mock.Anything, seller, domain.Amount("100")).Return(nil).Once()
	s.listingRepo.On("Patch", mock.Anything, domain.ListingId(7), listing.Patchable{
		SellerPaid: ptr.Bool(true),
	}).Return(nil).Once()
	s.value.On("Pay", mock.Anything, operator, domain.Amount("5")).Return(nil).Once()
	s.listingRepo.On("Patch", mock.Anything, domain.ListingId(7), listing.Patchable{
		FeeForwarded: ptr.Bool(true),
	}).Return(nil).Once()
	s.asset.On("Transfer", mock.Anything, assetAddr, domain.TokenId("42"), custodian, buyer).Return(domain.ErrAssetTransferFailed).Once()
	// compensating patch brings the listing back to unsold
	s.listingRepo.On("Patch", mock.Anything, domain.ListingId(7), listing.Patchable{
		Sold:         ptr.Bool(false),
		CurrentOwner: domain.Address("").ToLowerPtr(),
	}).Return(nil).Once()

	s.ErrorIs(s.im.Buy(ctx, 7, buyer, "100"), domain.ErrAssetTransferFailed)
}

func (s *listingSuite) TestBuyResumesWithoutRepayingOnRetry() {
	ctx := ctx.Background()
	l := s.fixedPriceListing(7, "100")

	s.listingRepo.On("FindOne", mock.Anything, domain.ListingId(7)).Return(l, nil).Once()
	s.listingRepo.On("Patch", mock.Anything, domain.ListingId(7), listing.Patchable{
		Sold:         ptr.Bool(true),
		CurrentOwner: buyer.ToLowerPtr(),
		SoldAt:       &s.now,
	}).Return(nil).Twice()
	s.fee.On("Operator").Return(operator).Once()
	// each payment may happen exactly once across both attempts
	s.value.On("Pay", mock.Anything, seller, domain.Amount("100")).Return(nil).Once()
	s.listingRepo.On("Patch", mock.Anything, domain.ListingId(7), listing.Patchable{
		SellerPaid: ptr.Bool(true),
	}).Return(nil).Once()
	s.value.On("Pay", mock.Anything, operator, domain.Amount("5")).Return(nil).Once()
	s.listingRepo.On("Patch", mock.Anything, domain.ListingId(7), listing.Patchable{
		FeeForwarded: ptr.Bool(true),
	}).Return(nil).Once()
	s.asset.On("Transfer", mock.Anything, assetAddr, domain.TokenId("42"), custodian, buyer).Return(domain.ErrAssetTransferFailed).Once()
	s.listingRepo.On("Patch", mock.Anything, domain.ListingId(7), listing.Patchable{
		Sold:         ptr.Bool(false),
		CurrentOwner: domain.Address("").ToLowerPtr(),
	}).Return(nil).Once()

	s.ErrorIs(s.im.Buy(ctx, 7, buyer, "100"), domain.ErrAssetTransferFailed)

	// the compensated listing still carries the payment markers
	resumed := s.fixedPriceListing(7, "100")
	resumed.SellerPaid = true
	resumed.FeeForwarded = true
	s.listingRepo.On("FindOne", mock.Anything, domain.ListingId(7)).Return(resumed, nil).Once()
	s.asset.On("Transfer", mock.Anything, assetAddr, domain.TokenId("42"), custodian, buyer).Return(nil).Once()
	s.activityRepo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()

	s.NoError(s.im.Buy(ctx, 7, buyer, "100"))
	s.value.AssertNumberOfCalls(s.T(), "Pay", 2)
}

func (s *listingSuite) TestPlaceBidNotAnAuction() {
	ctx := ctx.Background()
	l := s.fixedPriceListing(7, "100")
	s.listingRepo.On("FindOne", mock.Anything, domain.ListingId(7)).Return(l, nil).Once()

	s.ErrorIs(s.im.PlaceBid(ctx, 7, bidderA, "100"), domain.ErrNotAnAuction)
}

func (s *listingSuite) TestPlaceBidAfterDeadline() {
	ctx := ctx.Background()
	l := s.auction(9, "100", s.now.Add(-time.Minute))
	s.listingRepo.On("FindOne", mock.Anything, domain.ListingId(9)).Return(l, nil).Once()

	s.ErrorIs(s.im.PlaceBid(ctx, 9, bidderA, "200"), domain.ErrAuctionEnded)
}

func (s *listingSuite) TestPlaceBidBelowFloor() {
	ctx := ctx.Background()
	l := s.auction(9, "100", s.now.Add(time.Hour))
	s.listingRepo.On("FindOne", mock.Anything, domain.ListingId(9)).Return(l, nil).Once()

	s.ErrorIs(s.im.PlaceBid(ctx, 9, bidderA, "99"), domain.ErrBidTooLow)
}

func (s *listingSuite) TestPlaceBidMustBeatHighest() {
	ctx := ctx.Background()
	l := s.auction(9, "100", s.now.Add(time.Hour))
	l.HighestBidder = bidderA
	l.HighestBid = "150"
	s.listingRepo.On("FindOne", mock.Anything, domain.ListingId(9)).Return(l, nil).Twice()

	// equal to the highest bid is not enough, accepted bids strictly increase
	s.ErrorIs(s.im.PlaceBid(ctx, 9, bidderB, "150"), domain.ErrBidTooLow)
	s.ErrorIs(s.im.PlaceBid(ctx, 9, bidderB, "120"), domain.ErrBidTooLow)
}

func (s *listingSuite) TestPlaceBidFirstBid() {
	ctx := ctx.Background()
	l := s.auction(9, "100", s.now.Add(time.Hour))

	s.listingRepo.On("FindOne", mock.Anything, domain.ListingId(9)).Return(l, nil).Once()
	s.listingRepo.On("Patch", mock.Anything, domain.ListingId(9), listing.Patchable{
		HighestBidder: bidderA.ToLowerPtr(),
		HighestBid:    (*domain.Amount)(ptr.String("100")),
	}).Return(nil).Once()
	s.activityRepo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()

	// floor bid is accepted, nothing is owed to anyone yet
	s.NoError(s.im.PlaceBid(ctx, 9, bidderA, "100"))
	s.escrowRepo.AssertNotCalled(s.T(), "Credit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingSuite) TestPlaceBidDisplacesPreviousToEscrow() {
	ctx := ctx.Background()
	l := s.auction(9, "100", s.now.Add(time.Hour))
	l.HighestBidder = bidderA
	l.HighestBid = "150"

	s.listingRepo.On("FindOne", mock.Anything, domain.ListingId(9)).Return(l, nil).Once()
	s.escrowRepo.On("Credit", mock.Anything, domain.ListingId(9), bidderA, domain.Amount("150")).Return(nil).Once()
	s.listingRepo.On("Patch", mock.Anything, domain.ListingId(9), listing.Patchable{
		HighestBidder: bidderB.ToLowerPtr(),
		HighestBid:    (*domain.Amount)(ptr.String("200")),
	}).Return(nil).Once()
	s.activityRepo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()

	s.NoError(s.im.PlaceBid(ctx, 9, bidderB, "200"))
}

func (s *listingSuite) TestEndAuctionBeforeDeadline() {
	ctx := ctx.Background()
	l := s.auction(9, "100", s.now.Add(time.Hour))
	s.listingRepo.On("FindOne", mock.Anything, domain.ListingId(9)).Return(l, nil).Once()

	s.ErrorIs(s.im.EndAuction(ctx, 9), domain.ErrAuctionNotEnded)
}

func (s *listingSuite) TestEndAuctionAlreadyFinalized() {
	ctx := ctx.Background()
	l := s.auction(9, "100", s.now.Add(-time.Minute))
	l.Sold = true
	l.CurrentOwner = bidderA
	s.listingRepo.On("FindOne", mock.Anything, domain.ListingId(9)).Return(l, nil).Once()

	// second settlement attempt performs no transfers
	s.ErrorIs(s.im.EndAuction(ctx, 9), domain.ErrAlreadyFinalized)
	s.value.AssertNotCalled(s.T(), "Pay", mock.Anything, mock.Anything, mock.Anything)
	s.asset.AssertNotCalled(s.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingSuite) TestEndAuctionWithWinner() {
	ctx := ctx.Background()
	l := s.auction(9, "100", s.now.Add(-time.Minute))
	l.HighestBidder = bidderB
	l.HighestBid = "200"

	s.listingRepo.On("FindOne", mock.Anything, domain.ListingId(9)).Return(l, nil).Once()
	s.listingRepo.On("Patch", mock.Anything, domain.ListingId(9), listing.Patchable{
		Sold:         ptr.Bool(true),
		CurrentOwner: bidderB.ToLowerPtr(),
		SoldAt:       &s.now,
	}).Return(nil).Once()
	s.value.On("Pay", mock.Anything, seller, domain.Amount("200")).Return(nil).Once()
	s.listingRepo.On("Patch", mock.Anything, domain.ListingId(9), listing.Patchable{
		SellerPaid: ptr.Bool(true),
	}).Return(nil).Once()
	s.asset.On("Transfer", mock.Anything, assetAddr, domain.TokenId("42"), custodian, bidderB).Return(nil).Once()
	s.activityRepo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()

	s.NoError(s.im.EndAuction(ctx, 9))
}

func (s *listingSuite) TestEndAuctionWithoutBids() {
	ctx := ctx.Background()
	l := s.auction(9, "100", s.now.Add(-time.Minute))

	s.listingRepo.On("FindOne", mock.Anything, domain.ListingId(9)).Return(l, nil).Once()
	s.listingRepo.On("Patch", mock.Anything, domain.ListingId(9), listing.Patchable{
		Sold:         ptr.Bool(true),
		CurrentOwner: seller.ToLowerPtr(),
		SoldAt:       &s.now,
	}).Return(nil).Once()
	s.asset.On("Transfer", mock.Anything, assetAddr, domain.TokenId("42"), custodian, seller).Return(nil).Once()
	s.activityRepo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()

	s.NoError(s.im.EndAuction(ctx, 9))
	s.value.AssertNotCalled(s.T(), "Pay", mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingSuite) TestEndAuctionRevertsOnPayFailure() {
	ctx := ctx.Background()
	l := s.auction(9, "100", s.now.Add(-time.Minute))
	l.HighestBidder = bidderB
	l.HighestBid = "200"

	s.listingRepo.On("FindOne", mock.Anything, domain.ListingId(9)).Return(l, nil).Once()
	s.listingRepo.On("Patch", mock.Anything, domain.ListingId(9), listing.Patchable{
		Sold:         ptr.Bool(true),
		CurrentOwner: bidderB.ToLowerPtr(),
		SoldAt:       &s.now,
	}).Return(nil).Once()
	s.value.On("Pay", mock.Anything, seller, domain.Amount("200")).Return(domain.ErrValueTransferFailed).Once()
	s.listingRepo.On("Patch", mock.Anything, domain.ListingId(9), listing.Patchable{
		Sold:         ptr.Bool(false),
		CurrentOwner: domain.Address("").ToLowerPtr(),
	}).Return(nil).Once()

	s.ErrorIs(s.im.EndAuction(ctx, 9), domain.ErrValueTransferFailed)
	s.asset.AssertNotCalled(s.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingSuite) TestEndAuctionDoesNotRepaySellerOnRetry() {
	ctx := ctx.Background()
	l := s.auction(9, "100", s.now.Add(-time.Minute))
	l.HighestBidder = bidderB
	l.HighestBid = "200"

	s.listingRepo.On("FindOne", mock.Anything, domain.ListingId(9)).Return(l, nil).Once()
	s.listingRepo.On("Patch", mock.Anything, domain.ListingId(9), listing.Patchable{
		Sold:         ptr.Bool(true),
		CurrentOwner: bidderB.ToLowerPtr(),
		SoldAt:       &s.now,
	}).Return(nil).Twice()
	// the seller may be paid exactly once across both attempts
	s.value.On("Pay", mock.Anything, seller, domain.Amount("200")).Return(nil).Once()
	s.listingRepo.On("Patch", mock.Anything, domain.ListingId(9), listing.Patchable{
		SellerPaid: ptr.Bool(true),
	}).Return(nil).Once()
	s.asset.On("Transfer", mock.Anything, assetAddr, domain.TokenId("42"), custodian, bidderB).Return(domain.ErrAssetTransferFailed).Once()
	s.listingRepo.On("Patch", mock.Anything, domain.ListingId(9), listing.Patchable{
		Sold:         ptr.Bool(false),
		CurrentOwner: domain.Address("").ToLowerPtr(),
	}).Return(nil).Once()

	s.ErrorIs(s.im.EndAuction(ctx, 9), domain.ErrAssetTransferFailed)

	// the compensated listing still carries the payment marker
	resumed := s.auction(9, "100", s.now.Add(-time.Minute))
	resumed.HighestBidder = bidderB
	resumed.HighestBid = "200"
	resumed.SellerPaid = true
	s.listingRepo.On("FindOne", mock.Anything, domain.ListingId(9)).Return(resumed, nil).Once()
	s.asset.On("Transfer", mock.Anything, assetAddr, domain.TokenId("42"), custodian, bidderB).Return(nil).Once()
	s.activityRepo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()

	s.NoError(s.im.EndAuction(ctx, 9))
	s.value.AssertNumberOfCalls(s.T(), "Pay", 1)
}

func (s *listingSuite) TestMutationsRejectReentry() {
	ctx := ctx.Background()
	s.NoError(s.guard.Acquire())
	defer s.guard.Release()

	_, err := s.im.CreateListing(ctx, listing.CreateListingPayload{})
	s.ErrorIs(err, domain.ErrReentrancy)
	s.ErrorIs(s.im.Buy(ctx, 7, buyer, "100"), domain.ErrReentrancy)
	s.ErrorIs(s.im.PlaceBid(ctx, 9, bidderA, "100"), domain.ErrReentrancy)
	s.ErrorIs(s.im.EndAuction(ctx, 9), domain.ErrReentrancy)
}

func (s *listingSuite) TestFetchOpenListings() {
	ctx := ctx.Background()
	expected := []*listing.Listing{s.fixedPriceListing(7, "100")}
	s.listingRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything).Return(expected, nil).Once()

	res, err := s.im.FetchOpenListings(ctx, listing.WithPagination(0, 10))
	s.NoError(err)
	s.Equal(expected, res)
}
