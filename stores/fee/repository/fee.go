package repository

import (
	"time"

	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/base/log"
	"github.com/mintora/goapi/domain"
	"github.com/mintora/goapi/domain/fee"
	"github.com/mintora/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

// policyId keys the single current policy document.
const policyId = "current"

type impl struct {
	q query.Mongo
}

func NewFeeRepo(q query.Mongo) fee.Repo {
	return &impl{q}
}

func (im *impl) Get(ctx ctx.Ctx) (*fee.Policy, error) {
	res := fee.Policy{}
	err := im.q.FindOne(ctx, domain.TableFeePolicy, bson.M{"_id": policyId}, &res)
	if err == query.ErrNotFound {
		// No policy set yet, listings are free.
		return &fee.Policy{Amount: domain.ZeroAmount}, nil
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to q.FindOne")
		return nil, err
	}
	return &res, nil
}

func (im *impl) Set(ctx ctx.Ctx, amount domain.Amount) error {
	policy := fee.Policy{
		Amount:    amount,
		UpdatedAt: time.Now(),
	}
	if err := im.q.Upsert(ctx, domain.TableFeePolicy, bson.M{"_id": policyId}, policy); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"amount": amount,
		}).Error("failed to q.Upsert")
		return err
	}
	return nil
}
