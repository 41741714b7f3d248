package stubapi

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"fintrack/internal/dto"
	apperrors "fintrack/internal/errors"
)

type createTransactionRequest struct {
	AccountID   string          `json:"account_id" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type" binding:"required,transaction_type"`
	Description string          `json:"description" binding:"required"`
	Reason      *string         `json:"reason"`
	CategoryID  *string         `json:"category_id"`
	Date        time.Time       `json:"date" binding:"required"`
}

type createTransferRequest struct {
	FromAccountID string          `json:"from_account_id" binding:"required"`
	ToAccountID   string          `json:"to_account_id" binding:"required,nefield=FromAccountID"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date" binding:"required"`
}

// transactionFilter mirrors the query parameters of GET /transactions.
type transactionFilter struct {
	AccountID  string
	CategoryID string
	Type       string
	Start      *time.Time
	End        *time.Time
}

func (f transactionFilter) match(t *dto.TransactionDTO) bool {
	if f.AccountID != "" && t.AccountID != f.AccountID {
		return false
	}
	if f.CategoryID != "" && (t.CategoryID == nil || *t.CategoryID != f.CategoryID) {
		return false
	}
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.Start != nil && t.Date.Before(*f.Start) {
		return false
	}
	if f.End != nil && t.Date.After(*f.End) {
		return false
	}
	return true
}

// ListTransactions returns matching transactions, newest first.
func (s *Store) ListTransactions(userID string, f transactionFilter) dto.TransactionsResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	resp := dto.TransactionsResponse{Transactions: make([]dto.TransactionDTO, 0)}
	for _, t := range s.userData(userID).transactions {
		if f.match(t) {
			resp.Transactions = append(resp.Transactions, *t)
		}
	}
	sort.SliceStable(resp.Transactions, func(i, j int) bool {
		return resp.Transactions[i].Date.After(resp.Transactions[j].Date)
	})
	return resp
}

// recordTransaction stores a transaction with its embedded summaries and
// applies it to the account balance. Caller holds s.mu.
func (s *Store) recordTransaction(userID string, t dto.TransactionDTO) (dto.TransactionDTO, error) {
	account, err := s.account(userID, t.AccountID)
	if err != nil {
		return dto.TransactionDTO{}, err
	}
	t.Account = &dto.TransactionAccountDTO{ID: account.ID, Name: account.Name, Type: account.Type}
	if t.CategoryID != nil {
		category, err := s.category(userID, *t.CategoryID)
		if err != nil {
			return dto.TransactionDTO{}, err
		}
		t.Category = &dto.TransactionCategoryDTO{ID: category.ID, Name: category.Name, Type: category.Type}
	}

	delta := t.Amount
	if t.Type != "INCOME" {
		delta = delta.Neg()
	}
	account.Balance = account.Balance.Add(delta)

	t.ID = newID()
	t.CreatedAt = s.now().UTC()
	d := s.userData(userID)
	d.transactions = append(d.transactions, &t)
	return t, nil
}

func (s *Store) CreateTransaction(userID string, t dto.TransactionDTO) (dto.TransactionDTO, error) {
	if t.Type == "TRANSFER" {
		return dto.TransactionDTO{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "Use the transfers endpoint for transfers")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recordTransaction(userID, t)
}

// CreateTransfer moves money between two accounts, recorded as a TRANSFER
// on the source account.
func (s *Store) CreateTransfer(userID string, req createTransferRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.account(userID, req.ToAccountID); err != nil {
		return err
	}
	if _, err := s.recordTransaction(userID, dto.TransactionDTO{
		AccountID:   req.FromAccountID,
		Amount:      req.Amount,
		Type:        "TRANSFER",
		Description: req.Description,
		Date:        req.Date,
	}); err != nil {
		return err
	}
	return s.adjustBalance(userID, req.ToAccountID, req.Amount)
}

func parseTimeQuery(c *gin.Context, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+key)
	}
	return &t, nil
}

func (s *Server) listTransactions(c *gin.Context) {
	start, err := parseTimeQuery(c, "startDate")
	if err != nil {
		fail(c, err)
		return
	}
	end, err := parseTimeQuery(c, "endDate")
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s.store.ListTransactions(userID(c), transactionFilter{
		AccountID:  c.Query("accountId"),
		CategoryID: c.Query("categoryId"),
		Type:       c.Query("type"),
		Start:      start,
		End:        end,
	}))
}

func (s *Server) createTransaction(c *gin.Context) {
	var req createTransactionRequest
	if !bind(c, &req) {
		return
	}
	if err := requirePositive("amount", req.Amount); err != nil {
		fail(c, err)
		return
	}
	t, err := s.store.CreateTransaction(userID(c), dto.TransactionDTO{
		AccountID:   req.AccountID,
		Amount:      req.Amount,
		Type:        req.Type,
		Description: s.clean(req.Description),
		Reason:      s.cleanPtr(req.Reason),
		CategoryID:  req.CategoryID,
		Date:        req.Date,
	})
	respond(c, http.StatusCreated, t, err)
}

func (s *Server) createTransfer(c *gin.Context) {
	var req createTransferRequest
	if !bind(c, &req) {
		return
	}
	if err := requirePositive("amount", req.Amount); err != nil {
		fail(c, err)
		return
	}
	req.Description = s.clean(req.Description)
	err := s.store.CreateTransfer(userID(c), req)
	respond(c, http.StatusCreated, gin.H{"message": "Transfer created"}, err)
}
