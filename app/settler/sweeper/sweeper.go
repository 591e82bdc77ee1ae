package sweeper

import (
	"time"

	"github.com/viney-shih/goroutines"

	"github.com/mintora/goapi/base/backoff"
	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/base/log"
	"github.com/mintora/goapi/domain"
	"github.com/mintora/goapi/domain/listing"
)

var timeNow = time.Now

type Cfg struct {
	ListingRepo    listing.Repo
	ListingUseCase listing.UseCase
	Pool           *goroutines.Pool
	Batch          int32
	RetryLimit     int
}

// Sweeper drains expired unsold auctions by submitting their settlement to a
// worker pool. Every settlement is effect idempotent, a sweep that dies
// halfway is simply finished by the next one.
type Sweeper struct {
	listingRepo    listing.Repo
	listingUseCase listing.UseCase
	pool           *goroutines.Pool
	batch          int32
	retryLimit     int
}

func New(cfg *Cfg) *Sweeper {
	return &Sweeper{
		listingRepo:    cfg.ListingRepo,
		listingUseCase: cfg.ListingUseCase,
		pool:           cfg.Pool,
		batch:          cfg.Batch,
		retryLimit:     cfg.RetryLimit,
	}
}

// Sweep snapshots the due ids before scheduling any settlement. Workers flip
// listings to sold as they settle, which would shift offset pages under a
// live query and skip still-due auctions.
func (s *Sweeper) Sweep(c ctx.Ctx) {
	now := timeNow()
	due := []domain.ListingId{}
	for offset := int32(0); ; offset += s.batch {
		page, err := s.listingRepo.FindAll(c,
			listing.WithIsAuction(true),
			listing.WithSold(false),
			listing.WithDeadlineBefore(now),
			listing.WithPagination(offset, s.batch),
		)
		if err != nil {
			c.WithField("err", err).Error("failed to listingRepo.FindAll")
			return
		}
		for _, l := range page {
			due = append(due, l.ListingId)
		}
		if len(page) < int(s.batch) {
			break
		}
	}

	for _, id := range due {
		id := id
		s.pool.Schedule(func() {
			s.settle(c, id)
		})
	}
}

// settle retries on engine contention only. Any other failure is left for the
// next sweep.
func (s *Sweeper) settle(c ctx.Ctx, id domain.ListingId) {
	bo := backoff.NewExponential(100*time.Millisecond, 5*time.Second)
	for i := 0; ; i++ {
		err := s.listingUseCase.EndAuction(c, id)
		switch err {
		case nil, domain.ErrAlreadyFinalized:
			return
		case domain.ErrReentrancy:
			if i >= s.retryLimit {
				c.WithField("listingId", id).Warn("settlement contended, leaving for next sweep")
				return
			}
			if err := bo.Backoff(c); err != nil {
				return
			}
		default:
			c.WithFields(log.Fields{
				"err":       err,
				"listingId": id,
			}).Error("failed to listingUseCase.EndAuction")
			return
		}
	}
}
