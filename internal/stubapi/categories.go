package stubapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/dto"
	apperrors "fintrack/internal/errors"
)

type createCategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Type        string  `json:"type" binding:"required,category_type"`
	Description *string `json:"description"`
	Color       *string `json:"color" binding:"omitempty,hex_color"`
	Icon        *string `json:"icon"`
	ParentID    *string `json:"parent_id"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Type        *string `json:"type" binding:"omitempty,category_type"`
	Description *string `json:"description"`
	Color       *string `json:"color" binding:"omitempty,hex_color"`
	Icon        *string `json:"icon"`
	ParentID    *string `json:"parent_id"`
}

func categoryID(c *dto.CategoryDTO) string { return c.ID }

func (s *Store) category(userID, id string) (*dto.CategoryDTO, error) {
	d := s.userData(userID)
	i := indexByID(d.categories, id, categoryID)
	if i < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrNotFound, "Category not found")
	}
	return d.categories[i], nil
}

// checkParent rejects unknown parents and self-references. Deeper cycles
// are left to clients, as the real API does.
func (s *Store) checkParent(userID, id string, parentID *string) error {
	if parentID == nil {
		return nil
	}
	if *parentID == id {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "A category cannot be its own parent")
	}
	if _, err := s.category(userID, *parentID); err != nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Parent category not found")
	}
	return nil
}

func (s *Store) ListCategories(userID, categoryType string) dto.CategoriesResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	resp := dto.CategoriesResponse{Categories: make([]dto.CategoryDTO, 0)}
	for _, c := range s.userData(userID).categories {
		if categoryType == "" || c.Type == categoryType {
			resp.Categories = append(resp.Categories, *c)
		}
	}
	return resp
}

func (s *Store) GetCategory(userID, id string) (dto.CategoryDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.category(userID, id)
	if err != nil {
		return dto.CategoryDTO{}, err
	}
	return *c, nil
}

func (s *Store) CreateCategory(userID string, c dto.CategoryDTO) (dto.CategoryDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = newID()
	if err := s.checkParent(userID, c.ID, c.ParentID); err != nil {
		return dto.CategoryDTO{}, err
	}
	d := s.userData(userID)
	d.categories = append(d.categories, &c)
	return c, nil
}

func (s *Store) UpdateCategory(userID, id string, req updateCategoryRequest) (dto.CategoryDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.category(userID, id)
	if err != nil {
		return dto.CategoryDTO{}, err
	}
	if err := s.checkParent(userID, id, req.ParentID); err != nil {
		return dto.CategoryDTO{}, err
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Type != nil {
		c.Type = *req.Type
	}
	if req.Description != nil {
		c.Description = req.Description
	}
	if req.Color != nil {
		c.Color = req.Color
	}
	if req.Icon != nil {
		c.Icon = req.Icon
	}
	if req.ParentID != nil {
		c.ParentID = req.ParentID
	}
	return *c, nil
}

// DeleteCategory removes the category and detaches its children.
func (s *Store) DeleteCategory(userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.userData(userID)
	i := indexByID(d.categories, id, categoryID)
	if i < 0 {
		return apperrors.WithMessage(apperrors.ErrNotFound, "Category not found")
	}
	d.categories = removeAt(d.categories, i)
	for _, c := range d.categories {
		if c.ParentID != nil && *c.ParentID == id {
			c.ParentID = nil
		}
	}
	return nil
}

func (s *Server) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListCategories(userID(c), c.Query("type")))
}

func (s *Server) getCategory(c *gin.Context) {
	cat, err := s.store.GetCategory(userID(c), c.Param("id"))
	respond(c, http.StatusOK, cat, err)
}

func (s *Server) createCategory(c *gin.Context) {
	var req createCategoryRequest
	if !bind(c, &req) {
		return
	}
	cat, err := s.store.CreateCategory(userID(c), dto.CategoryDTO{
		Name:        s.clean(req.Name),
		Type:        req.Type,
		Description: s.cleanPtr(req.Description),
		Color:       req.Color,
		Icon:        req.Icon,
		ParentID:    req.ParentID,
	})
	respond(c, http.StatusCreated, cat, err)
}

func (s *Server) updateCategory(c *gin.Context) {
	var req updateCategoryRequest
	if !bind(c, &req) {
		return
	}
	req.Name = s.cleanPtr(req.Name)
	req.Description = s.cleanPtr(req.Description)
	cat, err := s.store.UpdateCategory(userID(c), c.Param("id"), req)
	respond(c, http.StatusOK, cat, err)
}

func (s *Server) deleteCategory(c *gin.Context) {
	err := s.store.DeleteCategory(userID(c), c.Param("id"))
	respond(c, http.StatusNoContent, nil, err)
}
