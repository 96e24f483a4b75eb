package server

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	billingdomain "github.com/strongfit/studio/internal/billing/domain"
)

func (s *Server) ListPaymentSummaries(c *gin.Context) {
	month, err := parseMonth(c.Query("month"))
	if err != nil {
		AbortWithError(c, newValidationError("month", "invalid_month", "invalid month"))
		return
	}

	resp, err := s.billingSvc.ListSummaries(c.Request.Context(), month)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

func (s *Server) ListAdjustments(c *gin.Context) {
	month, err := parseMonth(c.Query("month"))
	if err != nil {
		AbortWithError(c, newValidationError("month", "invalid_month", "invalid month"))
		return
	}

	resp, err := s.billingSvc.ListAdjustments(c.Request.Context(), month, strings.TrimSpace(c.Query("athlete_id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

type createAdjustmentRequest struct {
	AthleteID        string          `json:"athlete_id"`
	AppliesMonth     string          `json:"applies_month"`
	Amount           decimal.Decimal `json:"amount"`
	Reason           *string         `json:"reason"`
	RelatedSessionID *string         `json:"related_session_id"`
}

func (s *Server) CreateAdjustment(c *gin.Context) {
	var req createAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	month, err := time.Parse(dateOnlyLayout, strings.TrimSpace(req.AppliesMonth))
	if err != nil {
		AbortWithError(c, newValidationError("applies_month", "invalid_applies_month", "invalid applies_month"))
		return
	}

	id, err := s.billingSvc.CreateAdjustment(c.Request.Context(), billingdomain.CreateAdjustmentRequest{
		AthleteID:        strings.TrimSpace(req.AthleteID),
		AppliesMonth:     month,
		Amount:           req.Amount,
		Reason:           req.Reason,
		RelatedSessionID: req.RelatedSessionID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, gin.H{"id": id.String()})
}

func (s *Server) DeleteAdjustment(c *gin.Context) {
	if err := s.billingSvc.DeleteAdjustment(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, gin.H{"deleted": true})
}

type markPaidRequest struct {
	AthleteID  string           `json:"athlete_id"`
	Month      string           `json:"month"`
	PaidAmount *decimal.Decimal `json:"paid_amount"`
}

func (s *Server) MarkPaid(c *gin.Context) {
	var req markPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	month, err := parseMonth(req.Month)
	if err != nil {
		AbortWithError(c, newValidationError("month", "invalid_month", "invalid month"))
		return
	}

	if err := s.billingSvc.MarkPaid(c.Request.Context(), billingdomain.MarkPaidRequest{
		AthleteID:  strings.TrimSpace(req.AthleteID),
		Month:      month,
		PaidAmount: req.PaidAmount,
	}); err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, gin.H{"paid": true})
}

func (s *Server) GenerateCredits(c *gin.Context) {
	month, err := parseMonth(c.Query("month"))
	if err != nil {
		AbortWithError(c, newValidationError("month", "invalid_month", "invalid month"))
		return
	}

	created, err := s.billingSvc.GenerateCredits(c.Request.Context(), month, strings.TrimSpace(c.Query("athlete_id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, gin.H{"created": created})
}
