package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/frio-catalog/internal/model"
	"github.com/you-humble/frio-catalog/platform/logger"
)

type BannerRepository interface {
	Create(ctx context.Context, b *model.Banner) error
	BannerByID(ctx context.Context, id string) (*model.Banner, error)
	List(ctx context.Context, filter model.BannerFilter) ([]*model.Banner, error)
	Update(ctx context.Context, b *model.Banner) error
	Delete(ctx context.Context, id string) error
	ToggleActive(ctx context.Context, id string) (*model.Banner, error)
	Reorder(ctx context.Context, ids []string) (int64, error)
}

type service struct {
	repo           BannerRepository
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewBannerService(
	repository BannerRepository,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repository,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

// Public returns the active banners of one type. An empty type means home.
func (svc *service) Public(ctx context.Context, typ model.BannerType) ([]*model.Banner, error) {
	const op = "banner.service.Public"

	if typ == "" {
		typ = model.BannerTypeHome
	}
	if !typ.Valid() {
		return nil, fmt.Errorf("%s: unknown banner type %q: %w", op, typ, model.ErrValidation)
	}

	return svc.list(ctx, op, model.BannerFilter{Type: &typ, ActiveOnly: true})
}

func (svc *service) All(ctx context.Context, typ *model.BannerType) ([]*model.Banner, error) {
	const op = "banner.service.All"

	if typ != nil && !typ.Valid() {
		return nil, fmt.Errorf("%s: unknown banner type %q: %w", op, *typ, model.ErrValidation)
	}

	return svc.list(ctx, op, model.BannerFilter{Type: typ})
}

func (svc *service) list(ctx context.Context, op string, f model.BannerFilter) ([]*model.Banner, error) {
	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	banners, err := svc.repo.List(ctx, f)
	if err != nil {
		logger.Error(ctx, "repository list banners", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return banners, nil
}

func (svc *service) Create(ctx context.Context, params model.CreateBannerParams) (*model.Banner, error) {
	const op = "banner.service.Create"

	b := &model.Banner{
		ID:       uuid.NewString(),
		Title:    strings.TrimSpace(params.Title),
		Subtitle: strings.TrimSpace(params.Subtitle),
		Image:    strings.TrimSpace(params.Image),
		LinkURL:  strings.TrimSpace(params.LinkURL),
		Type:     params.Type,
		Order:    params.Order,
		Active:   lo.FromPtrOr(params.Active, true),
	}
	if b.Type == "" {
		b.Type = model.BannerTypeHome
	}

	if err := validateBanner(b); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now()
	b.CreatedAt, b.UpdatedAt = now, now

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.Create(ctx, b); err != nil {
		logger.Error(ctx, "repository create banner", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (svc *service) Update(ctx context.Context, id string, patch model.UpdateBannerParams) (*model.Banner, error) {
	const op = "banner.service.Update"
	log := logger.With(logger.String("banner_id", id))

	rctx, rcancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rcancel()

	b, err := svc.repo.BannerByID(rctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if patch.Title != nil {
		b.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Subtitle != nil {
		b.Subtitle = strings.TrimSpace(*patch.Subtitle)
	}
	if patch.Image != nil {
		b.Image = strings.TrimSpace(*patch.Image)
	}
	if patch.LinkURL != nil {
		b.LinkURL = strings.TrimSpace(*patch.LinkURL)
	}
	if patch.Type != nil {
		b.Type = *patch.Type
	}
	if patch.Order != nil {
		b.Order = *patch.Order
	}
	if patch.Active != nil {
		b.Active = *patch.Active
	}

	if err := validateBanner(b); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	b.UpdatedAt = time.Now()

	wctx, wcancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wcancel()

	if err := svc.repo.Update(wctx, b); err != nil {
		log.Error(ctx, "repository update banner", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (svc *service) Delete(ctx context.Context, id string) error {
	const op = "banner.service.Delete"

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (svc *service) ToggleActive(ctx context.Context, id string) (*model.Banner, error) {
	const op = "banner.service.ToggleActive"

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	b, err := svc.repo.ToggleActive(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return b, nil
}

// Reorder gives every banner in ids its position as order.
// Ids that match no banner are skipped.
func (svc *service) Reorder(ctx context.Context, ids []string) (int64, error) {
	const op = "banner.service.Reorder"

	ids = lo.Compact(lo.Map(ids, func(id string, _ int) string { return strings.TrimSpace(id) }))
	if len(ids) != len(lo.Uniq(ids)) {
		return 0, fmt.Errorf("%s: duplicate banner id: %w", op, model.ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	matched, err := svc.repo.Reorder(ctx, ids)
	if err != nil {
		logger.Error(ctx, "repository reorder banners", logger.ErrorF(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if skipped := int64(len(ids)) - matched; skipped > 0 {
		logger.Warn(ctx, "reorder skipped unknown banners", logger.Int64("skipped", skipped))
	}
	return matched, nil
}

func validateBanner(b *model.Banner) error {
	if b.Image == "" {
		return fmt.Errorf("image is required: %w", model.ErrValidation)
	}
	if !b.Type.Valid() {
		return fmt.Errorf("unknown banner type %q: %w", b.Type, model.ErrValidation)
	}
	return nil
}
