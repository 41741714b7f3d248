package stubapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"fintrack/internal/derived"
	"fintrack/internal/dto"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

type createSubscriptionRequest struct {
	Name            string          `json:"name" binding:"required"`
	Amount          decimal.Decimal `json:"amount"`
	Frequency       string          `json:"frequency" binding:"required,subscription_frequency"`
	NextBillingDate time.Time       `json:"next_billing_date" binding:"required"`
	AccountID       *string         `json:"account_id"`
	CategoryID      *string         `json:"category_id"`
	Notes           *string         `json:"notes"`
}

type updateSubscriptionRequest struct {
	Name            *string          `json:"name" binding:"omitempty,min=1"`
	Amount          *decimal.Decimal `json:"amount"`
	Frequency       *string          `json:"frequency" binding:"omitempty,subscription_frequency"`
	NextBillingDate *time.Time       `json:"next_billing_date"`
	AccountID       *string          `json:"account_id"`
	CategoryID      *string          `json:"category_id"`
	Status          *string          `json:"status" binding:"omitempty,subscription_status"`
	Notes           *string          `json:"notes"`
}

func subscriptionID(s *dto.SubscriptionDTO) string { return s.ID }

// nextBilling advances a billing date by one cycle.
func nextBilling(from time.Time, frequency string) time.Time {
	switch models.ParseSubscriptionFrequency(frequency) {
	case models.FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case models.FrequencyQuarterly:
		return from.AddDate(0, 3, 0)
	case models.FrequencyYearly:
		return from.AddDate(1, 0, 0)
	default:
		return from.AddDate(0, 1, 0)
	}
}

func (s *Store) subscription(userID, id string) (*dto.SubscriptionDTO, error) {
	d := s.userData(userID)
	i := indexByID(d.subscriptions, id, subscriptionID)
	if i < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrNotFound, "Subscription not found")
	}
	return d.subscriptions[i], nil
}

func (s *Store) ListSubscriptions(userID, status, accountID string) dto.SubscriptionsResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	resp := dto.SubscriptionsResponse{Subscriptions: make([]dto.SubscriptionDTO, 0)}
	for _, sub := range s.userData(userID).subscriptions {
		if status != "" && sub.Status != status {
			continue
		}
		if accountID != "" && (sub.AccountID == nil || *sub.AccountID != accountID) {
			continue
		}
		resp.Subscriptions = append(resp.Subscriptions, *sub)
	}
	return resp
}

func (s *Store) GetSubscription(userID, id string) (dto.SubscriptionDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, err := s.subscription(userID, id)
	if err != nil {
		return dto.SubscriptionDTO{}, err
	}
	return *sub, nil
}

func (s *Store) CreateSubscription(userID string, sub dto.SubscriptionDTO) dto.SubscriptionDTO {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub.ID = newID()
	sub.Status = string(models.SubscriptionActive)
	d := s.userData(userID)
	d.subscriptions = append(d.subscriptions, &sub)
	return sub
}

func (s *Store) UpdateSubscription(userID, id string, req updateSubscriptionRequest) (dto.SubscriptionDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, err := s.subscription(userID, id)
	if err != nil {
		return dto.SubscriptionDTO{}, err
	}
	if req.Name != nil {
		sub.Name = *req.Name
	}
	if req.Amount != nil {
		sub.Amount = *req.Amount
	}
	if req.Frequency != nil {
		sub.Frequency = *req.Frequency
	}
	if req.NextBillingDate != nil {
		sub.NextBillingDate = *req.NextBillingDate
	}
	if req.AccountID != nil {
		sub.AccountID = req.AccountID
	}
	if req.CategoryID != nil {
		sub.CategoryID = req.CategoryID
	}
	if req.Status != nil {
		sub.Status = *req.Status
	}
	if req.Notes != nil {
		sub.Notes = req.Notes
	}
	return *sub, nil
}

func (s *Store) DeleteSubscription(userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.userData(userID)
	i := indexByID(d.subscriptions, id, subscriptionID)
	if i < 0 {
		return apperrors.WithMessage(apperrors.ErrNotFound, "Subscription not found")
	}
	d.subscriptions = removeAt(d.subscriptions, i)
	return nil
}

// bill runs one billing cycle: it posts the charge when the subscription
// is tied to an account and advances the next billing date. Caller holds
// s.mu.
func (s *Store) bill(userID string, sub *dto.SubscriptionDTO) error {
	if sub.Status != string(models.SubscriptionActive) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Only active subscriptions can be processed")
	}
	if sub.AccountID != nil {
		if _, err := s.recordTransaction(userID, dto.TransactionDTO{
			AccountID:   *sub.AccountID,
			Amount:      sub.Amount,
			Type:        "EXPENSE",
			Description: sub.Name,
			CategoryID:  sub.CategoryID,
			Date:        sub.NextBillingDate,
		}); err != nil {
			return err
		}
	}
	sub.NextBillingDate = nextBilling(sub.NextBillingDate, sub.Frequency)
	return nil
}

func (s *Store) ProcessSubscription(userID, id string) (dto.SubscriptionDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, err := s.subscription(userID, id)
	if err != nil {
		return dto.SubscriptionDTO{}, err
	}
	if err := s.bill(userID, sub); err != nil {
		return dto.SubscriptionDTO{}, err
	}
	return *sub, nil
}

// ProcessDue bills every active subscription whose next billing date has
// passed, once each, and returns how many were billed.
func (s *Store) ProcessDue(userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	processed := 0
	for _, sub := range s.userData(userID).subscriptions {
		if sub.Status != string(models.SubscriptionActive) || sub.NextBillingDate.After(now) {
			continue
		}
		if err := s.bill(userID, sub); err != nil {
			return processed, err
		}
		processed++
	}
	return processed, nil
}

func (s *Store) SubscriptionSummary(userID string) dto.SubscriptionSummaryDTO {
	resp := s.ListSubscriptions(userID, "", "")
	summary := derived.SummarizeSubscriptions(resp.ToDomain())
	return dto.SubscriptionSummaryDTO{
		TotalSubscriptions:     &summary.TotalSubscriptions,
		ActiveSubscriptions:    &summary.ActiveSubscriptions,
		PausedSubscriptions:    &summary.PausedSubscriptions,
		CancelledSubscriptions: &summary.CancelledSubscriptions,
		TotalMonthlyAmount:     &summary.TotalMonthlyAmount,
		NextBillingDate:        summary.NextBillingDate,
	}
}

func (s *Server) listSubscriptions(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListSubscriptions(userID(c), c.Query("status"), c.Query("accountId")))
}

func (s *Server) getSubscription(c *gin.Context) {
	sub, err := s.store.GetSubscription(userID(c), c.Param("id"))
	respond(c, http.StatusOK, sub, err)
}

func (s *Server) createSubscription(c *gin.Context) {
	var req createSubscriptionRequest
	if !bind(c, &req) {
		return
	}
	if err := requirePositive("amount", req.Amount); err != nil {
		fail(c, err)
		return
	}
	sub := s.store.CreateSubscription(userID(c), dto.SubscriptionDTO{
		Name:            s.clean(req.Name),
		Amount:          req.Amount,
		Frequency:       req.Frequency,
		NextBillingDate: req.NextBillingDate,
		AccountID:       req.AccountID,
		CategoryID:      req.CategoryID,
		Notes:           s.cleanPtr(req.Notes),
	})
	c.JSON(http.StatusCreated, sub)
}

func (s *Server) updateSubscription(c *gin.Context) {
	var req updateSubscriptionRequest
	if !bind(c, &req) {
		return
	}
	if req.Amount != nil {
		if err := requirePositive("amount", *req.Amount); err != nil {
			fail(c, err)
			return
		}
	}
	req.Name = s.cleanPtr(req.Name)
	req.Notes = s.cleanPtr(req.Notes)
	sub, err := s.store.UpdateSubscription(userID(c), c.Param("id"), req)
	respond(c, http.StatusOK, sub, err)
}

func (s *Server) deleteSubscription(c *gin.Context) {
	err := s.store.DeleteSubscription(userID(c), c.Param("id"))
	respond(c, http.StatusNoContent, nil, err)
}

func (s *Server) processSubscription(c *gin.Context) {
	sub, err := s.store.ProcessSubscription(userID(c), c.Param("id"))
	respond(c, http.StatusOK, sub, err)
}

func (s *Server) processDueSubscriptions(c *gin.Context) {
	n, err := s.store.ProcessDue(userID(c))
	respond(c, http.StatusOK, gin.H{"processed": n}, err)
}

func (s *Server) subscriptionSummary(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.SubscriptionSummary(userID(c)))
}
