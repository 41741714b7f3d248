package repository

import (
	"context"
	"net/url"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/validator"
)

type categoryRepository struct {
	api Requester
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(api Requester) CategoryRepository {
	return &categoryRepository{api: api}
}

func (r *categoryRepository) GetAll(ctx context.Context, categoryType *models.CategoryType) ([]models.Category, error) {
	var query url.Values
	if categoryType != nil {
		query = url.Values{"type": {string(*categoryType)}}
	}
	var resp dto.CategoriesResponse
	if err := r.api.Get(ctx, "categories", query, &resp); err != nil {
		return nil, err
	}
	return resp.ToDomain(), nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	var resp dto.CategoryDTO
	if err := r.api.Get(ctx, itemPath("categories", id), nil, &resp); err != nil {
		return nil, err
	}
	category := resp.ToDomain()
	return &category, nil
}

func (r *categoryRepository) Create(ctx context.Context, in CategoryInput) (*models.Category, error) {
	if err := validator.Color(in.Color); err != nil {
		return nil, err
	}
	req := dto.CreateCategoryRequest{
		Name:        in.Name,
		Type:        string(in.Type),
		Description: in.Description,
		Color:       in.Color,
		Icon:        in.Icon,
		ParentID:    in.ParentID,
	}
	var resp dto.CategoryDTO
	if err := r.api.Post(ctx, "categories", req, &resp); err != nil {
		return nil, err
	}
	category := resp.ToDomain()
	return &category, nil
}

func (r *categoryRepository) Update(ctx context.Context, id string, in CategoryUpdate) (*models.Category, error) {
	if err := validator.Color(in.Color); err != nil {
		return nil, err
	}
	req := dto.UpdateCategoryRequest{
		Name:        in.Name,
		Type:        enumPtr(in.Type),
		Description: in.Description,
		Color:       in.Color,
		Icon:        in.Icon,
		ParentID:    in.ParentID,
	}
	var resp dto.CategoryDTO
	if err := r.api.Put(ctx, itemPath("categories", id), req, &resp); err != nil {
		return nil, err
	}
	category := resp.ToDomain()
	return &category, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	return r.api.Delete(ctx, itemPath("categories", id))
}
