package dto

import "fintrack/internal/models"

type CategoryDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	Icon        *string `json:"icon"`
	Type        string  `json:"type"`
	ParentID    *string `json:"parent_id"`
}

func (d CategoryDTO) ToDomain() models.Category {
	return models.Category{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Color:       d.Color,
		Icon:        d.Icon,
		Type:        models.ParseCategoryType(d.Type),
		ParentID:    d.ParentID,
	}
}

type CategoriesResponse struct {
	Categories []CategoryDTO `json:"categories"`
}

func (r CategoriesResponse) ToDomain() []models.Category {
	categories := make([]models.Category, 0, len(r.Categories))
	for _, c := range r.Categories {
		categories = append(categories, c.ToDomain())
	}
	return categories
}

type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	ParentID    *string `json:"parent_id,omitempty"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Type        *string `json:"type,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	ParentID    *string `json:"parent_id,omitempty"`
}
