package repository

import (
	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/base/database/mongoclient"
	"github.com/mintora/goapi/base/log"
	"github.com/mintora/goapi/domain"
	"github.com/mintora/goapi/domain/listing"
	"github.com/mintora/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

// listingSequence is the counter document backing monotonic id allocation.
const listingSequence = "listings"

type impl struct {
	q query.Mongo
}

func NewListingRepo(q query.Mongo) listing.Repo {
	return &impl{q}
}

func (im *impl) makeQuery(options listing.FindAllOptions) (bson.M, error) {
	query := bson.M{}

	if options.Sold != nil {
		query["sold"] = *options.Sold
	}

	if options.Seller != nil {
		query["seller"] = *options.Seller
	}

	if options.CurrentOwner != nil {
		query["currentOwner"] = *options.CurrentOwner
	}

	if options.IsAuction != nil {
		query["isAuction"] = *options.IsAuction
	}

	if options.DeadlineBefore != nil {
		query["deadline"] = bson.M{"$lt": *options.DeadlineBefore}
	}

	return query, nil
}

func (im *impl) FindOne(ctx ctx.Ctx, id domain.ListingId) (*listing.Listing, error) {
	res := listing.Listing{}
	err := im.q.FindOne(ctx, domain.TableListings, bson.M{"listingId": id}, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
		}).Error("failed to q.FindOne")
		return nil, err
	}
	return &res, nil
}

func (im *impl) FindAll(ctx ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	options, err := listing.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	query, err := im.makeQuery(options)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to im.makeQuery")
		return nil, err
	}

	offset := 0
	if options.Offset != nil {
		offset = int(*options.Offset)
	}

	limit := 0
	if options.Limit != nil {
		limit = int(*options.Limit)
	}

	sort := "listingId"
	if options.Sort != nil {
		sort = *options.Sort
	}

	res := []*listing.Listing{}
	err = im.q.Search(ctx, domain.TableListings, offset, limit, sort, query, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *impl) Count(ctx ctx.Ctx, opts ...listing.FindAllOptionsFunc) (int, error) {
	options, err := listing.GetFindAllOptions(opts...)
	if err != nil {
		return 0, err
	}
	query, err := im.makeQuery(options)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to im.makeQuery")
		return 0, err
	}

	cnt, err := im.q.Count(ctx, domain.TableListings, query)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("failed to q.Count")
		return 0, err
	}

	return cnt, nil
}

func (im *impl) Insert(ctx ctx.Ctx, l *listing.Listing) error {
	if err := im.q.Insert(ctx, domain.TableListings, l); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": l.ListingId,
		}).Error("failed to q.Insert")
		if err == query.ErrDuplicateKey {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (im *impl) Patch(ctx ctx.Ctx, id domain.ListingId, patchable listing.Patchable) error {
	updater, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"patchable": patchable,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	err = im.q.Patch(ctx, domain.TableListings, bson.M{"listingId": id}, updater)
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
			"updater":   updater,
		}).Error("failed to q.Patch")
		return err
	}

	return nil
}

func (im *impl) NextId(ctx ctx.Ctx) (domain.ListingId, error) {
	res := struct {
		Value int64 `bson:"value"`
	}{}
	err := im.q.Increment(ctx, domain.TableSequences, bson.M{"_id": listingSequence}, &res, "value", 1)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to q.Increment")
		return 0, err
	}
	return domain.ListingId(res.Value), nil
}

func (im *impl) EnsureIndexes(ctx ctx.Ctx) error {
	indexes := []struct {
		keys   bson.D
		unique bool
	}{
		{bson.D{{Key: "listingId", Value: 1}}, true},
		{bson.D{{Key: "sold", Value: 1}}, false},
		{bson.D{{Key: "seller", Value: 1}}, false},
		{bson.D{{Key: "currentOwner", Value: 1}}, false},
		{bson.D{{Key: "isAuction", Value: 1}, {Key: "sold", Value: 1}, {Key: "deadline", Value: 1}}, false},
	}
	for _, idx := range indexes {
		if err := im.q.EnsureIndex(ctx, domain.TableListings, idx.keys, idx.unique); err != nil {
			ctx.WithFields(log.Fields{
				"err":  err,
				"keys": idx.keys,
			}).Error("failed to q.EnsureIndex")
			return err
		}
	}
	return nil
}
