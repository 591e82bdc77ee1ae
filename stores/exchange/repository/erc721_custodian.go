package repository

import (
	"math/big"

	bCtx "github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/base/log"
	"github.com/mintora/goapi/domain"
	"github.com/mintora/goapi/domain/exchange"
	"github.com/mintora/goapi/service/chain/contract"
)

type Erc721CustodianCfg struct {
	ChainId domain.ChainId
	Erc721  contract.Erc721Contract
}

type erc721Custodian struct {
	chainId domain.ChainId
	erc721  contract.Erc721Contract
}

// NewErc721Custodian moves custodied tokens with safeTransferFrom. The signer
// behind the chain client must own or be approved for every custodied token.
func NewErc721Custodian(cfg *Erc721CustodianCfg) exchange.AssetCustodian {
	return &erc721Custodian{
		chainId: cfg.ChainId,
		erc721:  cfg.Erc721,
	}
}

func (c *erc721Custodian) Transfer(ctx bCtx.Ctx, assetContract domain.Address, assetId domain.TokenId, from, to domain.Address) error {
	tokenId, ok := new(big.Int).SetString(assetId.String(), 10)
	if !ok {
		ctx.WithField("assetId", assetId).Error("invalid token id")
		return domain.ErrInvalidNumberFormat
	}

	if err := c.erc721.SafeTransferFrom(ctx, int32(c.chainId), assetContract.ToLowerStr(), from.ToLowerStr(), to.ToLowerStr(), tokenId); err != nil {
		ctx.WithFields(log.Fields{
			"err":           err,
			"assetContract": assetContract,
			"assetId":       assetId,
			"from":          from,
			"to":            to,
		}).Error("erc721.SafeTransferFrom failed")
		return domain.ErrAssetTransferFailed
	}
	return nil
}
