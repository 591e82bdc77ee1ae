package exchange

import (
	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/domain"
)

// AssetCustodian moves custody of an asset between addresses. Success or
// failure only, no partial transfer.
type AssetCustodian interface {
	Transfer(ctx ctx.Ctx, assetContract domain.Address, assetId domain.TokenId, from, to domain.Address) error
}

// ValueTransferer moves a fungible value amount to an address. A failure must
// abort the enclosing engine operation in its entirety.
type ValueTransferer interface {
	Pay(ctx ctx.Ctx, to domain.Address, amount domain.Amount) error
}
