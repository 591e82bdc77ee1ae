package usecase

import (
	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/domain"
	"github.com/mintora/goapi/domain/fee"
)

type FeeUseCaseCfg struct {
	FeeRepo fee.Repo

	// Operator is the only account allowed to change the fee and the recipient
	// of bound fees at settlement.
	Operator domain.Address
}

type impl struct {
	feeRepo  fee.Repo
	operator domain.Address
}

func NewFeeUseCase(cfg *FeeUseCaseCfg) fee.UseCase {
	return &impl{
		feeRepo:  cfg.FeeRepo,
		operator: cfg.Operator.ToLower(),
	}
}

func (im *impl) Current(ctx ctx.Ctx) (domain.Amount, error) {
	policy, err := im.feeRepo.Get(ctx)
	if err != nil {
		return "", err
	}
	return policy.Amount, nil
}

func (im *impl) SetFee(ctx ctx.Ctx, caller domain.Address, amount domain.Amount) error {
	if !caller.Equals(im.operator) {
		return domain.ErrNotOperator
	}
	if _, err := amount.BigInt(); err != nil {
		return domain.ErrInvalidPrice
	}
	return im.feeRepo.Set(ctx, amount)
}

func (im *impl) Operator() domain.Address {
	return im.operator
}
