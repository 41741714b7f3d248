package stubapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fintrack/internal/dto"
)

// exportDocument is the JSON dump served by GET /export.
type exportDocument struct {
	ExportedAt     time.Time              `json:"exported_at"`
	User           dto.UserDTO            `json:"user"`
	Accounts       []dto.AccountDTO       `json:"accounts"`
	Categories     []dto.CategoryDTO      `json:"categories"`
	Transactions   []dto.TransactionDTO   `json:"transactions"`
	Subscriptions  []dto.SubscriptionDTO  `json:"subscriptions"`
	Debts          []dto.DebtDTO          `json:"debts"`
	CryptoHoldings []dto.CryptoHoldingDTO `json:"crypto_holdings"`
}

func copyAll[T any](items []*T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, *item)
	}
	return out
}

func (s *Store) Export(userID string) (exportDocument, error) {
	user, err := s.User(userID)
	if err != nil {
		return exportDocument{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.userData(userID)
	return exportDocument{
		ExportedAt:     s.now().UTC(),
		User:           user,
		Accounts:       copyAll(d.accounts),
		Categories:     copyAll(d.categories),
		Transactions:   copyAll(d.transactions),
		Subscriptions:  copyAll(d.subscriptions),
		Debts:          copyAll(d.debts),
		CryptoHoldings: copyAll(d.crypto),
	}, nil
}

func (s *Server) export(c *gin.Context) {
	doc, err := s.store.Export(userID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="finance_export_%d.json"`, doc.ExportedAt.Unix()))
	c.JSON(http.StatusOK, doc)
}
