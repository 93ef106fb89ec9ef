package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/frio-catalog/internal/model"
	"github.com/you-humble/frio-catalog/platform/logger"
)

type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) error
	CategoryByID(ctx context.Context, id string) (*model.Category, error)
	List(ctx context.Context) ([]*model.Category, error)
	CountChildren(ctx context.Context, id string) (int64, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo           CategoryRepository
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewCategoryService(
	repository CategoryRepository,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repository,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (svc *service) Create(ctx context.Context, params model.CreateCategoryParams) (*model.Category, error) {
	const op = "category.service.Create"

	c := &model.Category{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(params.Name),
		Slug:      strings.ToLower(strings.TrimSpace(params.Slug)),
		Ancestors: []string{},
	}
	log := logger.With(logger.String("slug", c.Slug))

	if c.Name == "" || c.Slug == "" {
		return nil, fmt.Errorf("%s: name and slug are required: %w", op, model.ErrValidation)
	}

	if params.ParentID != nil && *params.ParentID != "" {
		rctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
		parent, err := svc.repo.CategoryByID(rctx, *params.ParentID)
		cancel()
		if err != nil {
			if !errors.Is(err, model.ErrNotFound) {
				log.Error(ctx, "repository parent category", logger.ErrorF(err))
			}
			return nil, fmt.Errorf("%s: parent: %w", op, err)
		}

		parentID := parent.ID
		c.ParentID = &parentID
		c.Ancestors = append(append(c.Ancestors, parent.Ancestors...), parent.ID)
	}

	now := time.Now()
	c.CreatedAt, c.UpdatedAt = now, now

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.Create(ctx, c); err != nil {
		if !errors.Is(err, model.ErrConflict) {
			log.Error(ctx, "repository create category", logger.ErrorF(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

func (svc *service) List(ctx context.Context) ([]*model.Category, error) {
	const op = "category.service.List"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	cats, err := svc.repo.List(ctx)
	if err != nil {
		logger.Error(ctx, "repository list categories", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cats, nil
}

func (svc *service) Tree(ctx context.Context) ([]*model.CategoryNode, error) {
	const op = "category.service.Tree"

	cats, err := svc.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return BuildTree(cats), nil
}

func (svc *service) Delete(ctx context.Context, id string) error {
	const op = "category.service.Delete"
	log := logger.With(logger.String("category_id", id))

	rctx, rcancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rcancel()

	children, err := svc.repo.CountChildren(rctx, id)
	if err != nil {
		log.Error(ctx, "repository count children", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if children > 0 {
		return fmt.Errorf("%s: category has %d subcategories: %w", op, children, model.ErrConflict)
	}

	wctx, wcancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wcancel()

	if err := svc.repo.Delete(wctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "category deleted")
	return nil
}

// BuildTree nests categories under their parents keeping the input order.
// Categories pointing at a missing parent are left out.
func BuildTree(cats []*model.Category) []*model.CategoryNode {
	nodes := make(map[string]*model.CategoryNode, len(cats))
	for _, c := range cats {
		nodes[c.ID] = &model.CategoryNode{Category: c, Children: []*model.CategoryNode{}}
	}

	roots := make([]*model.CategoryNode, 0)
	for _, c := range cats {
		n := nodes[c.ID]
		if c.ParentID == nil {
			roots = append(roots, n)
			continue
		}
		if parent, ok := nodes[*c.ParentID]; ok {
			parent.Children = append(parent.Children, n)
		}
	}

	return roots
}
