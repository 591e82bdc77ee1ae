package repository

import (
	"time"

	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/base/log"
	"github.com/mintora/goapi/domain"
	"github.com/mintora/goapi/domain/escrow"
	"github.com/mintora/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type impl struct {
	q query.Mongo
}

func NewEscrowRepo(q query.Mongo) escrow.Repo {
	return &impl{q}
}

func (im *impl) FindOne(ctx ctx.Ctx, id domain.ListingId, addr domain.Address) (*escrow.Refund, error) {
	res := escrow.Refund{}
	err := im.q.FindOne(ctx, domain.TableEscrows, bson.M{
		"listingId": id,
		"address":   addr.ToLower(),
	}, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
			"address":   addr,
		}).Error("failed to q.FindOne")
		return nil, err
	}
	return &res, nil
}

func (im *impl) FindByListing(ctx ctx.Ctx, id domain.ListingId) ([]*escrow.Refund, error) {
	res := []*escrow.Refund{}
	err := im.q.Search(ctx, domain.TableEscrows, 0, 0, "address", bson.M{"listingId": id}, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
		}).Error("failed to q.Search")
		return nil, err
	}
	return res, nil
}

// Credit is a read-modify-write. Callers serialize through the engine guard,
// the ledger itself does not lock.
func (im *impl) Credit(ctx ctx.Ctx, id domain.ListingId, addr domain.Address, amount domain.Amount) error {
	balance := domain.ZeroAmount
	cur, err := im.FindOne(ctx, id, addr)
	if err == nil {
		balance = cur.Amount
	} else if err != domain.ErrNotFound {
		return err
	}

	sum, err := balance.Add(amount)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"balance": balance,
			"amount":  amount,
		}).Error("failed to balance.Add")
		return err
	}

	return im.SetAmount(ctx, id, addr, sum)
}

func (im *impl) SetAmount(ctx ctx.Ctx, id domain.ListingId, addr domain.Address, amount domain.Amount) error {
	selector := bson.M{
		"listingId": id,
		"address":   addr.ToLower(),
	}
	refund := escrow.Refund{
		ListingId: id,
		Address:   addr.ToLower(),
		Amount:    amount,
		UpdatedAt: time.Now(),
	}
	if err := im.q.Upsert(ctx, domain.TableEscrows, selector, refund); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
			"address":   addr,
			"amount":    amount,
		}).Error("failed to q.Upsert")
		return err
	}
	return nil
}

func (im *impl) EnsureIndexes(ctx ctx.Ctx) error {
	if err := im.q.EnsureIndex(ctx, domain.TableEscrows, bson.D{{Key: "listingId", Value: 1}, {Key: "address", Value: 1}}, true); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to q.EnsureIndex")
		return err
	}
	return nil
}
