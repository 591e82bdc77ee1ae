package repository

import (
	"github.com/ethereum/go-ethereum/common"
	bCtx "github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/base/log"
	"github.com/mintora/goapi/domain"
	"github.com/mintora/goapi/domain/exchange"
	"github.com/mintora/goapi/service/chain"
)

type NativeTransfererCfg struct {
	ChainId      domain.ChainId
	ChainService chain.Client
}

type nativeTransferer struct {
	chainId      domain.ChainId
	chainService chain.Client
}

// NewNativeTransferer pays out escrowed value from the custodian account.
func NewNativeTransferer(cfg *NativeTransfererCfg) exchange.ValueTransferer {
	return &nativeTransferer{
		chainId:      cfg.ChainId,
		chainService: cfg.ChainService,
	}
}

func (t *nativeTransferer) Pay(ctx bCtx.Ctx, to domain.Address, amount domain.Amount) error {
	value, err := amount.BigInt()
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"amount": amount,
		}).Error("invalid amount")
		return err
	}
	if value.Sign() == 0 {
		return nil
	}

	if _, err := t.chainService.Send(ctx, int32(t.chainId), common.HexToAddress(to.ToLowerStr()), value, nil); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"to":     to,
			"amount": amount,
		}).Error("chainService.Send failed")
		return domain.ErrValueTransferFailed
	}
	return nil
}
