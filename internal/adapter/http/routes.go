package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes hangs the whole surface under /api/v1. Mutating routes
// additionally go through the idempotency middleware the caller passes in.
func RegisterRoutes(
	e *echo.Echo,
	h *Handler,
	users *UserHandler,
	campaigns *CampaignHandler,
	donations *DonationHandler,
	loans *LoanHandler,
	admin *AdminHandler,
	idemp echo.MiddlewareFunc,
) {
	e.GET("/health", h.Health)

	v1 := e.Group("/api/v1")

	mutating := []echo.MiddlewareFunc{}
	if idemp != nil {
		mutating = append(mutating, idemp)
	}

	// users
	v1.POST("/users", users.Register, mutating...)
	v1.GET("/users/me", users.Me)
	v1.PATCH("/users/me", users.UpdateProfile, mutating...)
	v1.GET("/users/me/transactions", users.MyTransactions)
	v1.GET("/users/:id", users.Get)

	// campaigns
	v1.POST("/campaigns", campaigns.Create, mutating...)
	v1.GET("/campaigns", campaigns.List)
	v1.GET("/campaigns/:id", campaigns.Get)
	v1.PATCH("/campaigns/:id", campaigns.Update, mutating...)
	v1.POST("/campaigns/:id/publish", campaigns.Publish, mutating...)
	v1.POST("/campaigns/:id/cancel", campaigns.Cancel, mutating...)
	v1.GET("/campaigns/:id/stats", campaigns.Stats)
	v1.GET("/campaigns/:id/donations", campaigns.Donations)
	v1.POST("/campaigns/:id/donations", donations.Create, mutating...)

	// donations (caller-scoped)
	v1.GET("/donations/me", donations.Mine)
	v1.GET("/donations/me/total", donations.MyTotal)

	// loans
	v1.POST("/loans", loans.Request, mutating...)
	v1.GET("/loans", loans.List)
	v1.GET("/loans/me", loans.Mine)
	v1.GET("/loans/:id", loans.Get)
	v1.POST("/loans/:id/fundings", loans.Fund, mutating...)
	v1.GET("/loans/:id/fundings", loans.Fundings)
	v1.GET("/loans/:id/repayments", loans.Repayments)
	v1.POST("/loans/:id/repayments/:repaymentId/pay", loans.RecordRepayment, mutating...)

	// admin
	ad := v1.Group("/admin")
	ad.GET("/dashboard", admin.Dashboard)
	ad.GET("/campaigns/pending", admin.PendingCampaigns)
	ad.GET("/loans/pending", admin.PendingLoans)
	ad.POST("/campaigns/:id/approve", admin.ApproveCampaign, mutating...)
	ad.POST("/campaigns/:id/reject", admin.RejectCampaign, mutating...)
	ad.POST("/loans/:id/decide", admin.DecideLoan, mutating...)
	ad.POST("/loans/:id/default", admin.MarkLoanDefaulted, mutating...)
	ad.POST("/users/:id/block", admin.BlockUser, mutating...)
	ad.POST("/users/:id/unblock", admin.UnblockUser, mutating...)
	ad.GET("/audit-logs", admin.AuditLogs)
}
