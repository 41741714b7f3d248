package stubapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"fintrack/internal/dto"
	apperrors "fintrack/internal/errors"
)

type createAccountRequest struct {
	Name        string          `json:"name" binding:"required"`
	Type        string          `json:"type" binding:"required,account_type"`
	Balance     decimal.Decimal `json:"balance"`
	Currency    string          `json:"currency" binding:"required,iso4217"`
	Description *string         `json:"description"`
}

type updateAccountRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1"`
	Type        *string          `json:"type" binding:"omitempty,account_type"`
	Balance     *decimal.Decimal `json:"balance"`
	Currency    *string          `json:"currency" binding:"omitempty,iso4217"`
	Description *string          `json:"description"`
	IsActive    *bool            `json:"is_active"`
}

func accountID(a *dto.AccountDTO) string { return a.ID }

func (s *Store) account(userID, id string) (*dto.AccountDTO, error) {
	d := s.userData(userID)
	i := indexByID(d.accounts, id, accountID)
	if i < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrNotFound, "Account not found")
	}
	return d.accounts[i], nil
}

// ListAccounts returns the accounts and the total balance of active ones.
func (s *Store) ListAccounts(userID string) dto.AccountsResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	resp := dto.AccountsResponse{Accounts: make([]dto.AccountDTO, 0)}
	for _, a := range s.userData(userID).accounts {
		resp.Accounts = append(resp.Accounts, *a)
		if a.IsActive == nil || *a.IsActive {
			resp.TotalBalance = resp.TotalBalance.Add(a.Balance)
		}
	}
	return resp
}

func (s *Store) GetAccount(userID, id string) (dto.AccountDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, err := s.account(userID, id)
	if err != nil {
		return dto.AccountDTO{}, err
	}
	return *a, nil
}

func (s *Store) CreateAccount(userID string, a dto.AccountDTO) dto.AccountDTO {
	s.mu.Lock()
	defer s.mu.Unlock()
	active := true
	a.ID = newID()
	a.IsActive = &active
	d := s.userData(userID)
	d.accounts = append(d.accounts, &a)
	return a
}

func (s *Store) UpdateAccount(userID, id string, req updateAccountRequest) (dto.AccountDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, err := s.account(userID, id)
	if err != nil {
		return dto.AccountDTO{}, err
	}
	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Type != nil {
		a.Type = *req.Type
	}
	if req.Balance != nil {
		a.Balance = *req.Balance
	}
	if req.Currency != nil {
		a.Currency = *req.Currency
	}
	if req.Description != nil {
		a.Description = req.Description
	}
	if req.IsActive != nil {
		active := *req.IsActive
		a.IsActive = &active
	}
	return *a, nil
}

func (s *Store) DeleteAccount(userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.userData(userID)
	i := indexByID(d.accounts, id, accountID)
	if i < 0 {
		return apperrors.WithMessage(apperrors.ErrNotFound, "Account not found")
	}
	d.accounts = removeAt(d.accounts, i)
	return nil
}

// adjustBalance applies a signed delta to an account. Caller holds s.mu.
func (s *Store) adjustBalance(userID, id string, delta decimal.Decimal) error {
	a, err := s.account(userID, id)
	if err != nil {
		return err
	}
	a.Balance = a.Balance.Add(delta)
	return nil
}

func (s *Server) listAccounts(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListAccounts(userID(c)))
}

func (s *Server) getAccount(c *gin.Context) {
	a, err := s.store.GetAccount(userID(c), c.Param("id"))
	respond(c, http.StatusOK, a, err)
}

func (s *Server) createAccount(c *gin.Context) {
	var req createAccountRequest
	if !bind(c, &req) {
		return
	}
	a := s.store.CreateAccount(userID(c), dto.AccountDTO{
		Name:        s.clean(req.Name),
		Type:        req.Type,
		Balance:     req.Balance,
		Currency:    req.Currency,
		Description: s.cleanPtr(req.Description),
	})
	c.JSON(http.StatusCreated, a)
}

func (s *Server) updateAccount(c *gin.Context) {
	var req updateAccountRequest
	if !bind(c, &req) {
		return
	}
	req.Name = s.cleanPtr(req.Name)
	req.Description = s.cleanPtr(req.Description)
	a, err := s.store.UpdateAccount(userID(c), c.Param("id"), req)
	respond(c, http.StatusOK, a, err)
}

func (s *Server) deleteAccount(c *gin.Context) {
	err := s.store.DeleteAccount(userID(c), c.Param("id"))
	respond(c, http.StatusNoContent, nil, err)
}
