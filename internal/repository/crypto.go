package repository

import (
	"context"

	"fintrack/internal/dto"
	"fintrack/internal/models"
)

type cryptoRepository struct {
	api Requester
}

// NewCryptoRepository creates a new CryptoRepository.
func NewCryptoRepository(api Requester) CryptoRepository {
	return &cryptoRepository{api: api}
}

func (r *cryptoRepository) GetPortfolio(ctx context.Context) ([]models.CryptoHolding, error) {
	var resp dto.CryptoPortfolioResponse
	if err := r.api.Get(ctx, "crypto", nil, &resp); err != nil {
		return nil, err
	}
	return resp.ToDomain(), nil
}

func (r *cryptoRepository) Create(ctx context.Context, in CryptoInput) (*models.CryptoHolding, error) {
	req := dto.CreateCryptoRequest{
		Symbol:        in.Symbol,
		Name:          in.Name,
		Amount:        in.Amount,
		PurchasePrice: in.PurchasePrice,
		PurchaseDate:  in.PurchaseDate,
		PurchaseFee:   in.PurchaseFee,
		Notes:         in.Notes,
	}
	var resp dto.CryptoHoldingDTO
	if err := r.api.Post(ctx, "crypto", req, &resp); err != nil {
		return nil, err
	}
	holding := resp.ToDomain()
	return &holding, nil
}

func (r *cryptoRepository) Sell(ctx context.Context, id string, terms SaleTerms) error {
	req := dto.SellCryptoRequest{
		SalePrice:     terms.SalePrice,
		SaleDate:      terms.SaleDate,
		SaleFee:       terms.SaleFee,
		SaleAccountID: terms.SaleAccountID,
		CategoryID:    terms.CategoryID,
	}
	return r.api.Post(ctx, itemPath("crypto", id, "sell"), req, nil)
}

func (r *cryptoRepository) UpdatePrices(ctx context.Context) ([]models.CryptoHolding, error) {
	if err := r.api.Post(ctx, "crypto/update-prices", nil, nil); err != nil {
		return nil, err
	}
	return r.GetPortfolio(ctx)
}
