package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/base/guard"
	"github.com/mintora/goapi/base/log"
	"github.com/mintora/goapi/domain"
	"github.com/mintora/goapi/domain/escrow"
	"github.com/mintora/goapi/domain/exchange"
	"github.com/mintora/goapi/domain/listing"
)

var timeNow = time.Now

type EscrowUseCaseCfg struct {
	EscrowRepo   escrow.Repo
	ActivityRepo listing.ActivityRepo
	Value        exchange.ValueTransferer
	Guard        *guard.Guard
}

type impl struct {
	escrowRepo   escrow.Repo
	activityRepo listing.ActivityRepo
	value        exchange.ValueTransferer
	guard        *guard.Guard
}

func NewEscrowUseCase(cfg *EscrowUseCaseCfg) escrow.UseCase {
	return &impl{
		escrowRepo:   cfg.EscrowRepo,
		activityRepo: cfg.ActivityRepo,
		value:        cfg.Value,
		guard:        cfg.Guard,
	}
}

func (im *impl) WithdrawRefund(ctx ctx.Ctx, id domain.ListingId, caller domain.Address) (domain.Amount, error) {
	if err := im.guard.Acquire(); err != nil {
		return "", err
	}
	defer im.guard.Release()

	refund, err := im.escrowRepo.FindOne(ctx, id, caller)
	if err == domain.ErrNotFound {
		return "", domain.ErrNothingToWithdraw
	} else if err != nil {
		return "", err
	}
	if refund.Amount.IsZero() {
		return "", domain.ErrNothingToWithdraw
	}
	owed := refund.Amount

	// The balance is zeroed before value moves, a re-entering recipient finds
	// nothing left to withdraw.
	if err := im.escrowRepo.SetAmount(ctx, id, caller, domain.ZeroAmount); err != nil {
		return "", err
	}

	if err := im.value.Pay(ctx, caller, owed); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
			"caller":    caller,
			"amount":    owed,
		}).Error("failed to value.Pay")
		if restoreErr := im.escrowRepo.SetAmount(ctx, id, caller, owed); restoreErr != nil {
			ctx.WithFields(log.Fields{
				"err":       restoreErr,
				"listingId": id,
				"caller":    caller,
				"amount":    owed,
			}).Error("failed to escrowRepo.SetAmount for compensation")
		}
		return "", err
	}

	im.recordActivity(ctx, id, caller, owed)
	return owed, nil
}

func (im *impl) GetRefund(ctx ctx.Ctx, id domain.ListingId, caller domain.Address) (*escrow.Refund, error) {
	return im.escrowRepo.FindOne(ctx, id, caller)
}

func (im *impl) recordActivity(ctx ctx.Ctx, id domain.ListingId, account domain.Address, amount domain.Amount) {
	a := &listing.Activity{
		Id:        uuid.NewString(),
		ListingId: id,
		Type:      listing.ActivityTypeRefund,
		Account:   account.ToLower(),
		Amount:    amount,
		Time:      timeNow(),
	}
	if err := im.activityRepo.Insert(ctx, a); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
		}).Warn("failed to activityRepo.Insert")
	}
}
