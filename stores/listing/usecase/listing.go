package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/base/guard"
	"github.com/mintora/goapi/base/log"
	"github.com/mintora/goapi/base/ptr"
	"github.com/mintora/goapi/domain"
	"github.com/mintora/goapi/domain/escrow"
	"github.com/mintora/goapi/domain/exchange"
	"github.com/mintora/goapi/domain/fee"
	"github.com/mintora/goapi/domain/listing"
)

var timeNow = time.Now

type ListingUseCaseCfg struct {
	ListingRepo  listing.Repo
	ActivityRepo listing.ActivityRepo
	EscrowRepo   escrow.Repo
	Fee          fee.UseCase
	Asset        exchange.AssetCustodian
	Value        exchange.ValueTransferer
	Guard        *guard.Guard

	// Custodian is the account holding custodied assets between listing and
	// settlement.
	Custodian domain.Address
}

type impl struct {
	listingRepo  listing.Repo
	activityRepo listing.ActivityRepo
	escrowRepo   escrow.Repo
	fee          fee.UseCase
	asset        exchange.AssetCustodian
	value        exchange.ValueTransferer
	guard        *guard.Guard
	custodian    domain.Address
}

func NewListingUseCase(cfg *ListingUseCaseCfg) listing.UseCase {
	return &impl{
		listingRepo:  cfg.ListingRepo,
		activityRepo: cfg.ActivityRepo,
		escrowRepo:   cfg.EscrowRepo,
		fee:          cfg.Fee,
		asset:        cfg.Asset,
		value:        cfg.Value,
		guard:        cfg.Guard,
		custodian:    cfg.Custodian,
	}
}

// recordActivity is best effort. A failed history write never rolls back a
// mutation that already settled.
func (im *impl) recordActivity(ctx ctx.Ctx, id domain.ListingId, typ listing.ActivityType, account domain.Address, amount domain.Amount) {
	a := &listing.Activity{
		Id:        uuid.NewString(),
		ListingId: id,
		Type:      typ,
		Account:   account.ToLower(),
		Amount:    amount,
		Time:      timeNow(),
	}
	if err := im.activityRepo.Insert(ctx, a); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
			"type":      typ,
		}).Warn("failed to activityRepo.Insert")
	}
}

func (im *impl) checkCreationFee(ctx ctx.Ctx, feePaid domain.Amount) (domain.Amount, error) {
	current, err := im.fee.Current(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("failed to fee.Current")
		return "", err
	}
	cmp, err := feePaid.Cmp(current)
	if err != nil {
		return "", err
	}
	if cmp != 0 {
		return "", domain.ErrFeeMismatch
	}
	return current, nil
}

func (im *impl) CreateListing(ctx ctx.Ctx, payload listing.CreateListingPayload) (domain.ListingId, error) {
	if err := im.guard.Acquire(); err != nil {
		return 0, err
	}
	defer im.guard.Release()

	price, err := payload.Price.BigInt()
	if err != nil {
		return 0, domain.ErrInvalidPrice
	}
	if price.Sign() <= 0 {
		return 0, domain.ErrInvalidPrice
	}

	boundFee, err := im.checkCreationFee(ctx, payload.FeePaid)
	if err != nil {
		return 0, err
	}

	id, err := im.listingRepo.NextId(ctx)
	if err != nil {
		return 0, err
	}

	if err := im.asset.Transfer(ctx, payload.AssetContract, payload.AssetId, payload.Seller, im.custodian); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
			"seller":    payload.Seller,
		}).Error("failed to asset.Transfer")
		return 0, err
	}

	l := &listing.Listing{
		ListingId:     id,
		AssetContract: payload.AssetContract.ToLower(),
		AssetId:       payload.AssetId,
		Seller:        payload.Seller.ToLower(),
		Price:         payload.Price,
		IsAuction:     false,
		HighestBid:    domain.ZeroAmount,
		Fee:           boundFee,
		Sold:          false,
		CreatedAt:     timeNow(),
	}
	if err := im.listingRepo.Insert(ctx, l); err != nil {
		return 0, err
	}

	im.recordActivity(ctx, id, listing.ActivityTypeList, payload.Seller, payload.Price)
	return id, nil
}

func (im *impl) CreateAuction(ctx ctx.Ctx, payload listing.CreateAuctionPayload) (domain.ListingId, error) {
	if err := im.guard.Acquire(); err != nil {
		return 0, err
	}
	defer im.guard.Release()

	price, err := payload.StartingPrice.BigInt()
	if err != nil {
		return 0, domain.ErrInvalidPrice
	}
	if price.Sign() <= 0 {
		return 0, domain.ErrInvalidPrice
	}
	if payload.Duration <= 0 {
		return 0, domain.ErrInvalidDuration
	}

	boundFee, err := im.checkCreationFee(ctx, payload.FeePaid)
	if err != nil {
		return 0, err
	}

	id, err := im.listingRepo.NextId(ctx)
	if err != nil {
		return 0, err
	}

	if err := im.asset.Transfer(ctx, payload.AssetContract, payload.AssetId, payload.Seller, im.custodian); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
			"seller":    payload.Seller,
		}).Error("failed to asset.Transfer")
		return 0, err
	}

	deadline := timeNow().Add(payload.Duration)
	l := &listing.Listing{
		ListingId:     id,
		AssetContract: payload.AssetContract.ToLower(),
		AssetId:       payload.AssetId,
		Seller:        payload.Seller.ToLower(),
		Price:         payload.StartingPrice,
		IsAuction:     true,
		Deadline:      &deadline,
		HighestBid:    domain.ZeroAmount,
		Fee:           boundFee,
		Sold:          false,
		CreatedAt:     timeNow(),
	}
	if err := im.listingRepo.Insert(ctx, l); err != nil {
		return 0, err
	}

	im.recordActivity(ctx, id, listing.ActivityTypeAuction, payload.Seller, payload.StartingPrice)
	return id, nil
}

func (im *impl) Buy(ctx ctx.Ctx, id domain.ListingId, buyer domain.Address, payment domain.Amount) error {
	if err := im.guard.Acquire(); err != nil {
		return err
	}
	defer im.guard.Release()

	l, err := im.listingRepo.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if l.IsAuction {
		return domain.ErrIsAuction
	}
	if l.Sold {
		return domain.ErrAlreadySold
	}
	cmp, err := payment.Cmp(l.Price)
	if err != nil {
		return err
	}
	if cmp != 0 {
		return domain.ErrPaymentMismatch
	}

	// State reaches its final form before any value or asset leaves the system.
	soldAt := timeNow()
	patch := listing.Patchable{
		Sold:         ptr.Bool(true),
		CurrentOwner: buyer.ToLowerPtr(),
		SoldAt:       &soldAt,
	}
	if err := im.listingRepo.Patch(ctx, id, patch); err != nil {
		return err
	}

	if err := im.settlePurchase(ctx, l, buyer, payment); err != nil {
		im.revertToUnsold(ctx, id)
		return err
	}

	im.recordActivity(ctx, id, listing.ActivityTypeSale, buyer, payment)
	return nil
}

// settlePurchase pays the seller, forwards the bound fee to the operator and
// hands the asset to the buyer. Payments come first and each completed one is
// recorded, a retried settlement resumes at the asset transfer instead of
// paying twice.
func (im *impl) settlePurchase(ctx ctx.Ctx, l *listing.Listing, buyer domain.Address, payment domain.Amount) error {
	if !l.SellerPaid {
		if err := im.value.Pay(ctx, l.Seller, payment); err != nil {
			ctx.WithFields(log.Fields{
				"err":       err,
				"listingId": l.ListingId,
				"seller":    l.Seller,
			}).Error("failed to value.Pay")
			return err
		}
		im.markSettlementProgress(ctx, l.ListingId, listing.Patchable{SellerPaid: ptr.Bool(true)})
	}
	if !l.Fee.IsZero() && !l.FeeForwarded {
		if err := im.value.Pay(ctx, im.fee.Operator(), l.Fee); err != nil {
			ctx.WithFields(log.Fields{
				"err":       err,
				"listingId": l.ListingId,
				"fee":       l.Fee,
			}).Error("failed to value.Pay")
			return err
		}
		im.markSettlementProgress(ctx, l.ListingId, listing.Patchable{FeeForwarded: ptr.Bool(true)})
	}
	if err := im.asset.Transfer(ctx, l.AssetContract, l.AssetId, im.custodian, buyer); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": l.ListingId,
			"buyer":     buyer,
		}).Error("failed to asset.Transfer")
		return err
	}
	return nil
}

// markSettlementProgress persists a completed payment step. Settlement goes on
// when the write fails: if the remaining steps succeed the marker never
// matters, only a later failure turns the lost marker into a repeated payment
// on retry.
func (im *impl) markSettlementProgress(ctx ctx.Ctx, id domain.ListingId, patch listing.Patchable) {
	if err := im.listingRepo.Patch(ctx, id, patch); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
		}).Error("failed to record settlement progress")
	}
}

// revertToUnsold is the compensating patch for a settlement that failed after
// the listing was marked sold. It never touches the payment markers, those
// must survive so the retry skips what already went out.
func (im *impl) revertToUnsold(ctx ctx.Ctx, id domain.ListingId) {
	patch := listing.Patchable{
		Sold:         ptr.Bool(false),
		CurrentOwner: domain.Address("").ToLowerPtr(),
	}
	if err := im.listingRepo.Patch(ctx, id, patch); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
		}).Error("failed to listingRepo.Patch for compensation")
	}
}

func (im *impl) PlaceBid(ctx ctx.Ctx, id domain.ListingId, bidder domain.Address, amount domain.Amount) error {
	if err := im.guard.Acquire(); err != nil {
		return err
	}
	defer im.guard.Release()

	l, err := im.listingRepo.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if !l.IsAuction {
		return domain.ErrNotAnAuction
	}
	if l.Sold {
		return domain.ErrAlreadyFinalized
	}
	if l.Deadline == nil || !timeNow().Before(*l.Deadline) {
		return domain.ErrAuctionEnded
	}

	// A bid must beat the current highest and reach the floor.
	aboveHighest, err := amount.Cmp(l.HighestBid)
	if err != nil {
		return err
	}
	aboveFloor, err := amount.Cmp(l.Price)
	if err != nil {
		return err
	}
	if aboveHighest <= 0 || aboveFloor < 0 {
		return domain.ErrBidTooLow
	}

	// The displaced bidder is owed a pull-payment refund, no value moves now.
	if !l.HighestBidder.IsEmpty() && !l.HighestBid.IsZero() {
		if err := im.escrowRepo.Credit(ctx, id, l.HighestBidder, l.HighestBid); err != nil {
			return err
		}
	}

	patch := listing.Patchable{
		HighestBidder: bidder.ToLowerPtr(),
		HighestBid:    &amount,
	}
	if err := im.listingRepo.Patch(ctx, id, patch); err != nil {
		return err
	}

	im.recordActivity(ctx, id, listing.ActivityTypeBid, bidder, amount)
	return nil
}

func (im *impl) EndAuction(ctx ctx.Ctx, id domain.ListingId) error {
	if err := im.guard.Acquire(); err != nil {
		return err
	}
	defer im.guard.Release()

	l, err := im.listingRepo.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if !l.IsAuction {
		return domain.ErrNotAnAuction
	}
	if l.Sold {
		return domain.ErrAlreadyFinalized
	}
	if l.Deadline == nil || timeNow().Before(*l.Deadline) {
		return domain.ErrAuctionNotEnded
	}

	soldAt := timeNow()
	if l.HighestBidder.IsEmpty() {
		// No bids, the asset goes home.
		patch := listing.Patchable{
			Sold:         ptr.Bool(true),
			CurrentOwner: l.Seller.ToLowerPtr(),
			SoldAt:       &soldAt,
		}
		if err := im.listingRepo.Patch(ctx, id, patch); err != nil {
			return err
		}
		if err := im.asset.Transfer(ctx, l.AssetContract, l.AssetId, im.custodian, l.Seller); err != nil {
			ctx.WithFields(log.Fields{
				"err":       err,
				"listingId": id,
			}).Error("failed to asset.Transfer")
			im.revertToUnsold(ctx, id)
			return err
		}
		im.recordActivity(ctx, id, listing.ActivityTypeSettle, l.Seller, domain.ZeroAmount)
		return nil
	}

	patch := listing.Patchable{
		Sold:         ptr.Bool(true),
		CurrentOwner: l.HighestBidder.ToLowerPtr(),
		SoldAt:       &soldAt,
	}
	if err := im.listingRepo.Patch(ctx, id, patch); err != nil {
		return err
	}

	if !l.SellerPaid {
		if err := im.value.Pay(ctx, l.Seller, l.HighestBid); err != nil {
			ctx.WithFields(log.Fields{
				"err":       err,
				"listingId": id,
				"seller":    l.Seller,
			}).Error("failed to value.Pay")
			im.revertToUnsold(ctx, id)
			return err
		}
		im.markSettlementProgress(ctx, id, listing.Patchable{SellerPaid: ptr.Bool(true)})
	}
	if err := im.asset.Transfer(ctx, l.AssetContract, l.AssetId, im.custodian, l.HighestBidder); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
			"winner":    l.HighestBidder,
		}).Error("failed to asset.Transfer")
		im.revertToUnsold(ctx, id)
		return err
	}

	im.recordActivity(ctx, id, listing.ActivityTypeSettle, l.HighestBidder, l.HighestBid)
	return nil
}

func (im *impl) GetListing(ctx ctx.Ctx, id domain.ListingId) (*listing.Listing, error) {
	return im.listingRepo.FindOne(ctx, id)
}

func (im *impl) FetchOpenListings(ctx ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	opts = append(opts, listing.WithSold(false))
	return im.listingRepo.FindAll(ctx, opts...)
}

func (im *impl) FetchOwnedByAddress(ctx ctx.Ctx, owner domain.Address, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	opts = append(opts, listing.WithCurrentOwner(owner))
	return im.listingRepo.FindAll(ctx, opts...)
}
