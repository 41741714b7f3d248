package stubapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"fintrack/internal/derived"
	"fintrack/internal/dto"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

type createHoldingRequest struct {
	Symbol        string           `json:"symbol" binding:"required"`
	Name          string           `json:"name" binding:"required"`
	Amount        decimal.Decimal  `json:"amount"`
	PurchasePrice decimal.Decimal  `json:"purchase_price"`
	PurchaseDate  time.Time        `json:"purchase_date" binding:"required"`
	PurchaseFee   *decimal.Decimal `json:"purchase_fee"`
	Notes         *string          `json:"notes"`
}

type sellHoldingRequest struct {
	SalePrice     decimal.Decimal  `json:"sale_price"`
	SaleDate      time.Time        `json:"sale_date" binding:"required"`
	SaleFee       *decimal.Decimal `json:"sale_fee"`
	SaleAccountID *string          `json:"sale_account_id"`
	CategoryID    *string          `json:"category_id"`
}

func holdingID(h *dto.CryptoHoldingDTO) string { return h.ID }

// Portfolio returns the holdings with totals computed from them.
func (s *Store) Portfolio(userID string) dto.CryptoPortfolioResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	resp := dto.CryptoPortfolioResponse{Holdings: make([]dto.CryptoHoldingDTO, 0)}
	holdings := make([]models.CryptoHolding, 0)
	for _, h := range s.userData(userID).crypto {
		resp.Holdings = append(resp.Holdings, *h)
		holdings = append(holdings, h.ToDomain())
	}
	totals := derived.PortfolioTotals(holdings)
	resp.TotalValue = &totals.TotalValue
	resp.TotalCost = &totals.TotalCost
	resp.TotalProfitLoss = &totals.TotalProfitLoss
	resp.ProfitLossPercentage = &totals.ProfitLossPercentage
	return resp
}

func (s *Store) CreateHolding(userID string, h dto.CryptoHoldingDTO) dto.CryptoHoldingDTO {
	s.mu.Lock()
	defer s.mu.Unlock()
	h.ID = newID()
	h.Symbol = strings.ToUpper(h.Symbol)
	d := s.userData(userID)
	d.crypto = append(d.crypto, &h)
	return h
}

// SellHolding closes a position. The proceeds, net of the sale fee, are
// posted as income when a sale account is given.
func (s *Store) SellHolding(userID, id string, req sellHoldingRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.userData(userID)
	i := indexByID(d.crypto, id, holdingID)
	if i < 0 {
		return apperrors.WithMessage(apperrors.ErrNotFound, "Holding not found")
	}
	h := d.crypto[i]
	if req.SaleAccountID != nil {
		proceeds := h.Amount.Mul(req.SalePrice)
		if req.SaleFee != nil {
			proceeds = proceeds.Sub(*req.SaleFee)
		}
		if _, err := s.recordTransaction(userID, dto.TransactionDTO{
			AccountID:   *req.SaleAccountID,
			Amount:      proceeds,
			Type:        "INCOME",
			Description: "Sold " + h.Amount.String() + " " + h.Symbol,
			CategoryID:  req.CategoryID,
			Date:        req.SaleDate,
		}); err != nil {
			return err
		}
	}
	d.crypto = removeAt(d.crypto, i)
	return nil
}

// RefreshPrices sets every holding's current price from prices.
func (s *Store) RefreshPrices(userID string, prices PriceFunc) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	holdings := s.userData(userID).crypto
	for _, h := range holdings {
		last := h.PurchasePrice
		if h.CurrentPrice != nil {
			last = *h.CurrentPrice
		}
		price := prices(h.Symbol, last)
		h.CurrentPrice = &price
	}
	return len(holdings)
}

func (s *Server) getPortfolio(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Portfolio(userID(c)))
}

func (s *Server) createHolding(c *gin.Context) {
	var req createHoldingRequest
	if !bind(c, &req) {
		return
	}
	if err := requirePositive("amount", req.Amount); err != nil {
		fail(c, err)
		return
	}
	if err := requirePositive("purchase_price", req.PurchasePrice); err != nil {
		fail(c, err)
		return
	}
	h := s.store.CreateHolding(userID(c), dto.CryptoHoldingDTO{
		Symbol:        s.clean(req.Symbol),
		Name:          s.clean(req.Name),
		Amount:        req.Amount,
		PurchasePrice: req.PurchasePrice,
		PurchaseDate:  req.PurchaseDate,
		PurchaseFee:   req.PurchaseFee,
		Notes:         s.cleanPtr(req.Notes),
	})
	c.JSON(http.StatusCreated, h)
}

func (s *Server) sellHolding(c *gin.Context) {
	var req sellHoldingRequest
	if !bind(c, &req) {
		return
	}
	if err := requirePositive("sale_price", req.SalePrice); err != nil {
		fail(c, err)
		return
	}
	err := s.store.SellHolding(userID(c), c.Param("id"), req)
	respond(c, http.StatusOK, gin.H{"success": true}, err)
}

func (s *Server) updatePrices(c *gin.Context) {
	n := s.store.RefreshPrices(userID(c), s.prices)
	c.JSON(http.StatusOK, gin.H{"updated": n})
}
