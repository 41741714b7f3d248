package derived

import (
	"strings"

	"fintrack/internal/models"
)

// SearchTransactions returns the transactions whose description, embedded
// category name or embedded account name contains query, ignoring case. An
// empty query returns txs unchanged.
func SearchTransactions(txs []models.Transaction, query string) []models.Transaction {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return txs
	}
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if matches(tx, q) {
			out = append(out, tx)
		}
	}
	return out
}

func matches(tx models.Transaction, q string) bool {
	if strings.Contains(strings.ToLower(tx.Description), q) {
		return true
	}
	if tx.Category != nil && strings.Contains(strings.ToLower(tx.Category.Name), q) {
		return true
	}
	return tx.Account != nil && strings.Contains(strings.ToLower(tx.Account.Name), q)
}

// FilterTransactionsByType keeps the transactions of one type.
func FilterTransactionsByType(txs []models.Transaction, t models.TransactionType) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Type == t {
			out = append(out, tx)
		}
	}
	return out
}
