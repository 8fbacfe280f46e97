package campaign

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"gorm.io/gorm"

	"fundbridge-backend/internal/domain/apperr"
	domain "fundbridge-backend/internal/domain/campaign"
	donationDomain "fundbridge-backend/internal/domain/donation"
	userDomain "fundbridge-backend/internal/domain/user"
	icache "fundbridge-backend/internal/infrastructure/cache"
	"fundbridge-backend/pkg/id"
)

// Cache is the advisory read-model cache the usecase writes through.
// Every error on this port is logged and swallowed: stale or missing
// cache data must never fail a request.
type Cache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) error
}

type Usecase struct {
	repo      domain.Repository
	donations donationDomain.Repository
	users     userDomain.Repository
	cache     Cache
	entityTTL time.Duration
	shortTTL  time.Duration
}

// NewUsecase wires the campaign flows. entityTTL caches campaign
// snapshots; shortTTL caches the volatile stats and list reads.
func NewUsecase(repo domain.Repository, donations donationDomain.Repository, users userDomain.Repository, cache Cache, entityTTL, shortTTL time.Duration) *Usecase {
	return &Usecase{repo: repo, donations: donations, users: users, cache: cache, entityTTL: entityTTL, shortTTL: shortTTL}
}

func (u *Usecase) Create(ctx context.Context, creatorID string, in CreateCampaignInput) (*domain.Campaign, error) {
	creator, err := u.users.GetByUserID(ctx, creatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("USER_NOT_FOUND", "creator not found")
		}
		return nil, err
	}
	if !creator.Roles.HasAny(userDomain.RoleCampaignCreator, userDomain.RoleAdmin) {
		return nil, apperr.Forbidden("FORBIDDEN", "campaign creator role required")
	}
	if !in.EndDate.After(in.StartDate) {
		return nil, apperr.Validation("INVALID_DATE_RANGE", "end date must be after start date")
	}

	c := &domain.Campaign{
		CampaignID:  id.NewID32(),
		CreatorID:   creatorID,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		GoalAmount:  in.GoalAmount,
		Status:      domain.StatusDraft,
		StartDate:   in.StartDate.UTC(),
		EndDate:     in.EndDate.UTC(),
	}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	u.invalidateLists(ctx)
	return c, nil
}

func (u *Usecase) Update(ctx context.Context, campaignID, requesterID string, in UpdateCampaignInput) (*domain.Campaign, error) {
	c, err := u.getOr404(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c.CreatorID != requesterID {
		return nil, apperr.Forbidden("FORBIDDEN", "you can only edit your own campaigns")
	}
	if c.Status != domain.StatusDraft {
		return nil, apperr.InvalidState("INVALID_STATUS", "only draft campaigns can be edited")
	}

	if in.Title != nil {
		c.Title = *in.Title
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.GoalAmount != nil {
		c.GoalAmount = *in.GoalAmount
	}
	if in.EndDate != nil {
		if !in.EndDate.After(c.StartDate) {
			return nil, apperr.Validation("INVALID_DATE_RANGE", "end date must be after start date")
		}
		c.EndDate = in.EndDate.UTC()
	}

	if err := u.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	u.invalidate(ctx, campaignID)
	return c, nil
}

func (u *Usecase) Publish(ctx context.Context, campaignID, requesterID string) (*domain.Campaign, error) {
	c, err := u.getOr404(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c.CreatorID != requesterID {
		return nil, apperr.Forbidden("FORBIDDEN", "you can only publish your own campaigns")
	}
	if c.Status != domain.StatusDraft {
		return nil, apperr.InvalidState("INVALID_STATUS", "only draft campaigns can be published")
	}

	c.Status = domain.StatusActive
	if err := u.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	u.invalidate(ctx, campaignID)
	return c, nil
}

// Cancel moves any non-terminal campaign to CANCELLED. Terminal
// statuses are rejected; cancelling a finished campaign is a bug in
// the caller, not a lifecycle transition.
func (u *Usecase) Cancel(ctx context.Context, campaignID, requesterID string) (*domain.Campaign, error) {
	c, err := u.getOr404(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c.CreatorID != requesterID {
		return nil, apperr.Forbidden("FORBIDDEN", "you can only cancel your own campaigns")
	}
	if c.Status.Terminal() {
		return nil, apperr.InvalidState("INVALID_STATUS", "campaign is already finished")
	}

	c.Status = domain.StatusCancelled
	if err := u.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	u.invalidate(ctx, campaignID)
	return c, nil
}

// Get is a cache read-through; the database copy is authoritative.
func (u *Usecase) Get(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	if u.cache != nil {
		var cached domain.Campaign
		hit, err := u.cache.GetJSON(ctx, icache.CampaignKey(campaignID), &cached)
		if err != nil {
			log.Printf("cache: get campaign %s: %v", campaignID, err)
		} else if hit {
			return &cached, nil
		}
	}

	c, err := u.getOr404(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, icache.CampaignKey(campaignID), c, u.entityTTL); err != nil {
			log.Printf("cache: set campaign %s: %v", campaignID, err)
		}
	}
	return c, nil
}

// listPage is the cached shape of one List result.
type listPage struct {
	Items []domain.Campaign `json:"items"`
	Total int64             `json:"total"`
}

// List caches each filter/page combination briefly; mutations sweep
// every list key via the campaigns pattern.
func (u *Usecase) List(ctx context.Context, f domain.ListFilter) ([]domain.Campaign, int64, error) {
	key := icache.CampaignListKey(string(f.Status), string(f.Category), f.Search, f.Page, f.Limit)
	if u.cache != nil {
		var page listPage
		hit, err := u.cache.GetJSON(ctx, key, &page)
		if err != nil {
			log.Printf("cache: get campaign list: %v", err)
		} else if hit {
			return page.Items, page.Total, nil
		}
	}

	items, total, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, listPage{Items: items, Total: total}, u.shortTTL); err != nil {
			log.Printf("cache: set campaign list: %v", err)
		}
	}
	return items, total, nil
}

// Stats is served from a short-lived cache entry; donations invalidate
// it through the recompute path.
func (u *Usecase) Stats(ctx context.Context, campaignID string) (*Stats, error) {
	if u.cache != nil {
		var cached Stats
		hit, err := u.cache.GetJSON(ctx, icache.CampaignStatsKey(campaignID), &cached)
		if err != nil {
			log.Printf("cache: get campaign stats %s: %v", campaignID, err)
		} else if hit {
			return &cached, nil
		}
	}

	c, err := u.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	raised, donors, err := u.donations.SumByCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	days := int(math.Ceil(time.Until(c.EndDate).Hours() / 24))
	st := &Stats{
		GoalAmount:         c.GoalAmount,
		TotalRaised:        raised,
		TotalDonors:        donors,
		ProgressPercentage: domain.Progress(raised, c.GoalAmount),
		DaysRemaining:      days,
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, icache.CampaignStatsKey(campaignID), st, u.shortTTL); err != nil {
			log.Printf("cache: set campaign stats %s: %v", campaignID, err)
		}
	}
	return st, nil
}

// RecomputeProgress rebuilds the donation aggregates from the full
// donation set. Idempotent; called after every donation so the atomic
// increments and the derived snapshot can never drift apart for long.
func (u *Usecase) RecomputeProgress(ctx context.Context, campaignID string) error {
	c, err := u.getOr404(ctx, campaignID)
	if err != nil {
		return err
	}

	raised, donors, err := u.donations.SumByCampaign(ctx, campaignID)
	if err != nil {
		return err
	}

	if err := u.repo.UpdateAggregates(ctx, campaignID, raised, donors, domain.Progress(raised, c.GoalAmount)); err != nil {
		return err
	}
	u.invalidate(ctx, campaignID)
	return nil
}

func (u *Usecase) getOr404(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	c, err := u.repo.GetByCampaignID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("CAMPAIGN_NOT_FOUND", "campaign not found")
		}
		return nil, err
	}
	return c, nil
}

func (u *Usecase) invalidate(ctx context.Context, campaignID string) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Delete(ctx, icache.CampaignKey(campaignID), icache.CampaignStatsKey(campaignID)); err != nil {
		log.Printf("cache: delete campaign %s: %v", campaignID, err)
	}
	u.invalidateLists(ctx)
}

func (u *Usecase) invalidateLists(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeletePattern(ctx, icache.CampaignsPattern()); err != nil {
		log.Printf("cache: delete campaign lists: %v", err)
	}
}
