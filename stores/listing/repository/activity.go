package repository

import (
	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/base/log"
	"github.com/mintora/goapi/domain"
	"github.com/mintora/goapi/domain/listing"
	"github.com/mintora/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type activityImpl struct {
	q query.Mongo
}

func NewActivityRepo(q query.Mongo) listing.ActivityRepo {
	return &activityImpl{q}
}

func (im *activityImpl) Insert(ctx ctx.Ctx, a *listing.Activity) error {
	if err := im.q.Insert(ctx, domain.TableActivities, a); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": a.ListingId,
			"type":      a.Type,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *activityImpl) FindByListing(ctx ctx.Ctx, id domain.ListingId) ([]*listing.Activity, error) {
	res := []*listing.Activity{}
	err := im.q.Search(ctx, domain.TableActivities, 0, 0, "time", bson.M{"listingId": id}, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
		}).Error("failed to q.Search")
		return nil, err
	}
	return res, nil
}

func (im *activityImpl) EnsureIndexes(ctx ctx.Ctx) error {
	if err := im.q.EnsureIndex(ctx, domain.TableActivities, bson.D{{Key: "listingId", Value: 1}, {Key: "time", Value: 1}}, false); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to q.EnsureIndex")
		return err
	}
	return nil
}
