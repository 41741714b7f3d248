package controllers

import (
	"context"

	"go.uber.org/zap"

	"fintrack/internal/derived"
	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/repository"
)

// CategoriesController keeps the category list in memory. Mutations patch
// the list from the server's response instead of reloading it. Patches
// build a new slice so earlier snapshots stay unchanged.
type CategoriesController struct {
	stateBox[[]models.Category]
	repo repository.CategoryRepository
	log  *zap.SugaredLogger
}

// NewCategoriesController creates a new CategoriesController.
func NewCategoriesController(repo repository.CategoryRepository) *CategoriesController {
	return &CategoriesController{repo: repo, log: logger.Named("controllers")}
}

// Load fetches categories; a nil categoryType loads all of them.
func (c *CategoriesController) Load(ctx context.Context, categoryType *models.CategoryType) {
	c.begin()
	categories, err := c.repo.GetAll(ctx, categoryType)
	if err != nil {
		c.log.Errorw("failed to load categories", "error", err)
		c.fail(err)
		return
	}
	c.succeed(categories)
}

func (c *CategoriesController) Create(ctx context.Context, in repository.CategoryInput) error {
	category, err := c.repo.Create(ctx, in)
	if err != nil {
		c.log.Errorw("failed to create category", "error", err)
		return err
	}
	c.update(func(list *[]models.Category) {
		*list = append(*list, *category)
	})
	return nil
}

func (c *CategoriesController) Update(ctx context.Context, id string, in repository.CategoryUpdate) error {
	category, err := c.repo.Update(ctx, id, in)
	if err != nil {
		c.log.Errorw("failed to update category", "error", err)
		return err
	}
	c.update(func(list *[]models.Category) {
		patched := make([]models.Category, len(*list))
		copy(patched, *list)
		for i := range patched {
			if patched[i].ID == id {
				patched[i] = *category
			}
		}
		*list = patched
	})
	return nil
}

func (c *CategoriesController) Delete(ctx context.Context, id string) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		c.log.Errorw("failed to delete category", "error", err)
		return err
	}
	c.update(func(list *[]models.Category) {
		kept := make([]models.Category, 0, len(*list))
		for _, cat := range *list {
			if cat.ID != id {
				kept = append(kept, cat)
			}
		}
		*list = kept
	})
	return nil
}

// ByType returns the loaded categories of one type.
func (c *CategoriesController) ByType(t models.CategoryType) []models.Category {
	return derived.CategoriesByType(c.State().Data, t)
}

// TreeIssues checks the loaded categories for broken parent links.
func (c *CategoriesController) TreeIssues() []derived.TreeIssue {
	return derived.ValidateCategoryTree(c.State().Data)
}
