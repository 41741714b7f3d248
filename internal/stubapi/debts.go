package stubapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"fintrack/internal/derived"
	"fintrack/internal/dto"
	apperrors "fintrack/internal/errors"
)

type createDebtRequest struct {
	PersonName  string          `json:"person_name" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description"`
	DueDate     *time.Time      `json:"due_date"`
	Notes       *string         `json:"notes"`
}

type updateDebtRequest struct {
	PersonName  *string          `json:"person_name" binding:"omitempty,min=1"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
	DueDate     *time.Time       `json:"due_date"`
	Notes       *string          `json:"notes"`
}

type payDebtRequest struct {
	AccountID  string  `json:"account_id" binding:"required"`
	CategoryID string  `json:"category_id" binding:"required"`
	PaidDate   *string `json:"paid_date"`
}

func debtID(d *dto.DebtDTO) string { return d.ID }

func (s *Store) debt(userID, id string) (*dto.DebtDTO, error) {
	d := s.userData(userID)
	i := indexByID(d.debts, id, debtID)
	if i < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrNotFound, "Debt not found")
	}
	return d.debts[i], nil
}

// ListDebts lists debts; a nil isPaid lists all of them.
func (s *Store) ListDebts(userID string, isPaid *bool) dto.DebtsResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	resp := dto.DebtsResponse{Debts: make([]dto.DebtDTO, 0)}
	for _, debt := range s.userData(userID).debts {
		if isPaid == nil || debt.IsPaid == *isPaid {
			resp.Debts = append(resp.Debts, *debt)
		}
	}
	return resp
}

func (s *Store) GetDebt(userID, id string) (dto.DebtDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	debt, err := s.debt(userID, id)
	if err != nil {
		return dto.DebtDTO{}, err
	}
	return *debt, nil
}

func (s *Store) CreateDebt(userID string, debt dto.DebtDTO) dto.DebtDTO {
	s.mu.Lock()
	defer s.mu.Unlock()
	debt.ID = newID()
	debt.IsPaid = false
	debt.PaidDate = nil
	d := s.userData(userID)
	d.debts = append(d.debts, &debt)
	return debt
}

func (s *Store) UpdateDebt(userID, id string, req updateDebtRequest) (dto.DebtDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	debt, err := s.debt(userID, id)
	if err != nil {
		return dto.DebtDTO{}, err
	}
	if req.PersonName != nil {
		debt.PersonName = *req.PersonName
	}
	if req.Amount != nil {
		debt.Amount = *req.Amount
	}
	if req.Description != nil {
		debt.Description = req.Description
	}
	if req.DueDate != nil {
		debt.DueDate = req.DueDate
	}
	if req.Notes != nil {
		debt.Notes = req.Notes
	}
	return *debt, nil
}

func (s *Store) DeleteDebt(userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.userData(userID)
	i := indexByID(d.debts, id, debtID)
	if i < 0 {
		return apperrors.WithMessage(apperrors.ErrNotFound, "Debt not found")
	}
	d.debts = removeAt(d.debts, i)
	return nil
}

// PayDebt marks the debt paid and posts the payment as an expense against
// the account and category. paidDate defaults to now.
func (s *Store) PayDebt(userID, id, accountID, categoryID string, paidDate *time.Time) (dto.DebtDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	debt, err := s.debt(userID, id)
	if err != nil {
		return dto.DebtDTO{}, err
	}
	if debt.IsPaid {
		return dto.DebtDTO{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "Debt is already paid")
	}
	when := s.now().UTC()
	if paidDate != nil {
		when = paidDate.UTC()
	}
	if _, err := s.recordTransaction(userID, dto.TransactionDTO{
		AccountID:   accountID,
		Amount:      debt.Amount,
		Type:        "EXPENSE",
		Description: "Debt payment: " + debt.PersonName,
		CategoryID:  &categoryID,
		Date:        when,
	}); err != nil {
		return dto.DebtDTO{}, err
	}
	debt.IsPaid = true
	debt.PaidDate = &when
	return *debt, nil
}

func (s *Store) DebtSummary(userID string) dto.DebtSummaryDTO {
	summary := derived.SummarizeDebts(s.ListDebts(userID, nil).ToDomain())
	return dto.DebtSummaryDTO{
		TotalDebts:   &summary.TotalDebts,
		TotalAmount:  &summary.TotalAmount,
		PaidDebts:    &summary.PaidDebts,
		PaidAmount:   &summary.PaidAmount,
		UnpaidDebts:  &summary.UnpaidDebts,
		UnpaidAmount: &summary.UnpaidAmount,
	}
}

func (s *Server) debtSummary(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.DebtSummary(userID(c)))
}

func (s *Server) listDebts(c *gin.Context) {
	var isPaid *bool
	if raw := c.Query("isPaid"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			fail(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid isPaid"))
			return
		}
		isPaid = &v
	}
	c.JSON(http.StatusOK, s.store.ListDebts(userID(c), isPaid))
}

func (s *Server) getDebt(c *gin.Context) {
	debt, err := s.store.GetDebt(userID(c), c.Param("id"))
	respond(c, http.StatusOK, debt, err)
}

func (s *Server) createDebt(c *gin.Context) {
	var req createDebtRequest
	if !bind(c, &req) {
		return
	}
	if err := requirePositive("amount", req.Amount); err != nil {
		fail(c, err)
		return
	}
	debt := s.store.CreateDebt(userID(c), dto.DebtDTO{
		PersonName:  s.clean(req.PersonName),
		Amount:      req.Amount,
		Description: s.cleanPtr(req.Description),
		DueDate:     req.DueDate,
		Notes:       s.cleanPtr(req.Notes),
	})
	c.JSON(http.StatusCreated, debt)
}

func (s *Server) updateDebt(c *gin.Context) {
	var req updateDebtRequest
	if !bind(c, &req) {
		return
	}
	if req.Amount != nil {
		if err := requirePositive("amount", *req.Amount); err != nil {
			fail(c, err)
			return
		}
	}
	req.PersonName = s.cleanPtr(req.PersonName)
	req.Description = s.cleanPtr(req.Description)
	req.Notes = s.cleanPtr(req.Notes)
	debt, err := s.store.UpdateDebt(userID(c), c.Param("id"), req)
	respond(c, http.StatusOK, debt, err)
}

func (s *Server) deleteDebt(c *gin.Context) {
	err := s.store.DeleteDebt(userID(c), c.Param("id"))
	respond(c, http.StatusNoContent, nil, err)
}

func (s *Server) payDebt(c *gin.Context) {
	var req payDebtRequest
	if !bind(c, &req) {
		return
	}
	var paidDate *time.Time
	if req.PaidDate != nil {
		t, err := time.Parse(time.RFC3339, *req.PaidDate)
		if err != nil {
			fail(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid paid_date"))
			return
		}
		paidDate = &t
	}
	debt, err := s.store.PayDebt(userID(c), c.Param("id"), req.AccountID, req.CategoryID, paidDate)
	respond(c, http.StatusOK, debt, err)
}
