package admin

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fundbridge-backend/internal/domain/apperr"
	auditDomain "fundbridge-backend/internal/domain/audit"
	campaignDomain "fundbridge-backend/internal/domain/campaign"
	donationDomain "fundbridge-backend/internal/domain/donation"
	ledgerDomain "fundbridge-backend/internal/domain/ledger"
	loanDomain "fundbridge-backend/internal/domain/loan"
	"fundbridge-backend/internal/domain/uow"
	userDomain "fundbridge-backend/internal/domain/user"
	icache "fundbridge-backend/internal/infrastructure/cache"
	campaignUC "fundbridge-backend/internal/usecase/campaign"
	"fundbridge-backend/pkg/id"
)

type DashboardStats struct {
	TotalUsers        int64           `json:"total_users"`
	TotalCampaigns    int64           `json:"total_campaigns"`
	ActiveCampaigns   int64           `json:"active_campaigns"`
	TotalLoans        int64           `json:"total_loans"`
	ActiveLoans       int64           `json:"active_loans"`
	DefaultedLoans    int64           `json:"defaulted_loans"`
	DefaultRate       float64         `json:"default_rate"`
	TotalFundsRaised  decimal.Decimal `json:"total_funds_raised"`
	TotalLoaned       decimal.Decimal `json:"total_loaned"`
	TotalTransactions int64           `json:"total_transactions"`
}

type Usecase struct {
	uow       uow.UnitOfWork
	users     userDomain.Repository
	campaigns campaignDomain.Repository
	loans     loanDomain.Repository
	donations donationDomain.Repository
	fundings  loanDomain.FundingRepository
	ledger    ledgerDomain.Repository
	audits    auditDomain.Repository
	cache     campaignUC.Cache
}

func NewUsecase(
	tx uow.UnitOfWork,
	users userDomain.Repository,
	campaigns campaignDomain.Repository,
	loans loanDomain.Repository,
	donations donationDomain.Repository,
	fundings loanDomain.FundingRepository,
	ledgerRepo ledgerDomain.Repository,
	audits auditDomain.Repository,
	cache campaignUC.Cache,
) *Usecase {
	return &Usecase{
		uow:       tx,
		users:     users,
		campaigns: campaigns,
		loans:     loans,
		donations: donations,
		fundings:  fundings,
		ledger:    ledgerRepo,
		audits:    audits,
		cache:     cache,
	}
}

// requireAdmin is the capability gate for every operation here.
func (u *Usecase) requireAdmin(ctx context.Context, adminID string) (*userDomain.User, error) {
	admin, err := u.users.GetByUserID(ctx, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("USER_NOT_FOUND", "admin not found")
		}
		return nil, err
	}
	if !admin.Roles.HasAny(userDomain.RoleAdmin) {
		return nil, apperr.Forbidden("FORBIDDEN", "admin role required")
	}
	return admin, nil
}

func changesJSON(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func (u *Usecase) Dashboard(ctx context.Context, adminID string) (*DashboardStats, error) {
	if _, err := u.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	totalUsers, err := u.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalCampaigns, err := u.campaigns.Count(ctx, "")
	if err != nil {
		return nil, err
	}
	activeCampaigns, err := u.campaigns.Count(ctx, campaignDomain.StatusActive)
	if err != nil {
		return nil, err
	}
	totalLoans, err := u.loans.Count(ctx, "")
	if err != nil {
		return nil, err
	}
	activeLoans, err := u.loans.Count(ctx, loanDomain.StatusActive)
	if err != nil {
		return nil, err
	}
	defaultedLoans, err := u.loans.Count(ctx, loanDomain.StatusDefaulted)
	if err != nil {
		return nil, err
	}
	totalRaised, err := u.donations.SumAll(ctx)
	if err != nil {
		return nil, err
	}
	totalLoaned, err := u.fundings.SumAll(ctx)
	if err != nil {
		return nil, err
	}
	totalTx, err := u.ledger.Count(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalUsers:        totalUsers,
		TotalCampaigns:    totalCampaigns,
		ActiveCampaigns:   activeCampaigns,
		TotalLoans:        totalLoans,
		ActiveLoans:       activeLoans,
		DefaultedLoans:    defaultedLoans,
		TotalFundsRaised:  totalRaised,
		TotalLoaned:       totalLoaned,
		TotalTransactions: totalTx,
	}
	if totalLoans > 0 {
		stats.DefaultRate = float64(defaultedLoans) / float64(totalLoans) * 100
	}
	return stats, nil
}

func (u *Usecase) PendingCampaigns(ctx context.Context, adminID string) ([]campaignDomain.Campaign, error) {
	if _, err := u.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}
	out, _, err := u.campaigns.List(ctx, campaignDomain.ListFilter{Status: campaignDomain.StatusDraft, Limit: 100})
	return out, err
}

func (u *Usecase) PendingLoans(ctx context.Context, adminID string) ([]loanDomain.Loan, error) {
	if _, err := u.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}
	out, _, err := u.loans.List(ctx, loanDomain.StatusRequested, 1, 100)
	return out, err
}

// ApproveCampaign publishes a draft on the creator's behalf. The status
// change and the audit row commit together.
func (u *Usecase) ApproveCampaign(ctx context.Context, adminID, campaignID string) (*campaignDomain.Campaign, error) {
	if _, err := u.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	var updated *campaignDomain.Campaign
	err := u.uow.WithinCampaignTx(ctx, campaignID, func(r uow.Repos, c *campaignDomain.Campaign) error {
		if c.Status != campaignDomain.StatusDraft {
			return apperr.InvalidState("INVALID_STATUS", "only draft campaigns can be approved")
		}
		c.Status = campaignDomain.StatusActive
		if err := r.Campaigns.Save(ctx, c); err != nil {
			return err
		}
		if err := r.AuditLogs.Append(ctx, &auditDomain.Log{
			LogID:      id.NewID32(),
			Action:     auditDomain.ActionApproveCampaign,
			AdminID:    adminID,
			EntityType: "campaign",
			EntityID:   campaignID,
			Changes:    changesJSON(map[string]string{"status": "DRAFT -> ACTIVE"}),
		}); err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("CAMPAIGN_NOT_FOUND", "campaign not found")
		}
		return nil, err
	}

	u.dropCampaignCache(ctx, campaignID)
	return updated, nil
}

func (u *Usecase) RejectCampaign(ctx context.Context, adminID, campaignID, reason string) (*campaignDomain.Campaign, error) {
	if _, err := u.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	var updated *campaignDomain.Campaign
	err := u.uow.WithinCampaignTx(ctx, campaignID, func(r uow.Repos, c *campaignDomain.Campaign) error {
		if c.Status != campaignDomain.StatusDraft {
			return apperr.InvalidState("INVALID_STATUS", "only draft campaigns can be rejected")
		}
		c.Status = campaignDomain.StatusCancelled
		if err := r.Campaigns.Save(ctx, c); err != nil {
			return err
		}
		if err := r.AuditLogs.Append(ctx, &auditDomain.Log{
			LogID:      id.NewID32(),
			Action:     auditDomain.ActionRejectCampaign,
			AdminID:    adminID,
			EntityType: "campaign",
			EntityID:   campaignID,
			Changes:    changesJSON(map[string]string{"status": "DRAFT -> CANCELLED"}),
			Reason:     reason,
		}); err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("CAMPAIGN_NOT_FOUND", "campaign not found")
		}
		return nil, err
	}

	u.dropCampaignCache(ctx, campaignID)
	return updated, nil
}

func (u *Usecase) BlockUser(ctx context.Context, adminID, userID, reason string) (*userDomain.User, error) {
	return u.setBlocked(ctx, adminID, userID, reason, true)
}

func (u *Usecase) UnblockUser(ctx context.Context, adminID, userID string) (*userDomain.User, error) {
	return u.setBlocked(ctx, adminID, userID, "", false)
}

func (u *Usecase) setBlocked(ctx context.Context, adminID, userID, reason string, blocked bool) (*userDomain.User, error) {
	if _, err := u.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	var updated *userDomain.User
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		usr, err := r.Users.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("USER_NOT_FOUND", "user not found")
			}
			return err
		}
		usr.IsBlocked = blocked
		usr.BlockedReason = reason
		if err := r.Users.Save(ctx, usr); err != nil {
			return err
		}

		action := auditDomain.ActionBlockUser
		if !blocked {
			action = auditDomain.ActionUnblockUser
		}
		if err := r.AuditLogs.Append(ctx, &auditDomain.Log{
			LogID:      id.NewID32(),
			Action:     action,
			AdminID:    adminID,
			EntityType: "user",
			EntityID:   userID,
			Changes:    changesJSON(map[string]any{"is_blocked": blocked, "blocked_reason": reason}),
			Reason:     reason,
		}); err != nil {
			return err
		}
		updated = usr
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// MarkLoanDefaulted is the operational entry for delinquency: there is
// no automatic detection, an admin pulls the trigger.
func (u *Usecase) MarkLoanDefaulted(ctx context.Context, adminID, loanID, reason string) (*loanDomain.Loan, error) {
	if _, err := u.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	var updated *loanDomain.Loan
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loanDomain.Loan) error {
		if l.Status != loanDomain.StatusActive {
			return apperr.InvalidState("INVALID_STATUS", "only active loans can default")
		}
		before := l.Status
		l.Status = loanDomain.StatusDefaulted
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		if err := r.AuditLogs.Append(ctx, &auditDomain.Log{
			LogID:      id.NewID32(),
			Action:     auditDomain.ActionDefaultLoan,
			AdminID:    adminID,
			EntityType: "loan",
			EntityID:   loanID,
			Changes:    changesJSON(map[string]string{"status": string(before) + " -> DEFAULTED"}),
			Reason:     reason,
		}); err != nil {
			return err
		}
		updated = l
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("LOAN_NOT_FOUND", "loan not found")
		}
		return nil, err
	}
	return updated, nil
}

func (u *Usecase) AuditLogs(ctx context.Context, adminID string, limit, offset int) ([]auditDomain.Log, int64, error) {
	if _, err := u.requireAdmin(ctx, adminID); err != nil {
		return nil, 0, err
	}
	return u.audits.List(ctx, limit, offset)
}

func (u *Usecase) dropCampaignCache(ctx context.Context, campaignID string) {
	if u.cache == nil {
		return
	}
	_ = u.cache.Delete(ctx, icache.CampaignKey(campaignID), icache.CampaignStatsKey(campaignID))
	_ = u.cache.DeletePattern(ctx, icache.CampaignsPattern())
}
