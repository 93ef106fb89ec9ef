package service

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/frio-catalog/internal/model"
	"github.com/you-humble/frio-catalog/internal/service/mocks"
)

func newSvc(repo *mocks.MockBannerRepository) *service {
	return NewBannerService(repo, time.Second, time.Second)
}

func TestServicePublic(t *testing.T) {
	t.Parallel()

	t.Run("defaults to home and active only", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockBannerRepository(t)
		repo.On("List", mock.Anything, mock.MatchedBy(func(f model.BannerFilter) bool {
			return f.ActiveOnly && f.Type != nil && *f.Type == model.BannerTypeHome
		})).Return([]*model.Banner{{ID: "b1"}}, nil).Once()

		banners, err := newSvc(repo).Public(context.Background(), "")
		require.NoError(t, err)
		assert.Len(t, banners, 1)
	})

	t.Run("unknown type", func(t *testing.T) {
		t.Parallel()

		_, err := newSvc(mocks.NewMockBannerRepository(t)).Public(context.Background(), "footer")
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("admin list without type", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockBannerRepository(t)
		repo.On("List", mock.Anything, model.BannerFilter{}).Return([]*model.Banner{}, nil).Once()

		_, err := newSvc(repo).All(context.Background(), nil)
		require.NoError(t, err)
	})
}

func TestServiceCreate(t *testing.T) {
	t.Parallel()

	image := gofakeit.URL()

	t.Run("image required", func(t *testing.T) {
		t.Parallel()

		_, err := newSvc(mocks.NewMockBannerRepository(t)).Create(context.Background(), model.CreateBannerParams{Title: "Promo"})
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockBannerRepository(t)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		b, err := newSvc(repo).Create(context.Background(), model.CreateBannerParams{Image: image})
		require.NoError(t, err)
		assert.Equal(t, model.BannerTypeHome, b.Type)
		assert.True(t, b.Active)
		assert.NotEmpty(t, b.ID)
	})

	t.Run("explicit inactive catalog banner", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockBannerRepository(t)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		b, err := newSvc(repo).Create(context.Background(), model.CreateBannerParams{
			Image:  image,
			Type:   model.BannerTypeCatalog,
			Active: lo.ToPtr(false),
			Order:  3,
		})
		require.NoError(t, err)
		assert.False(t, b.Active)
		assert.Equal(t, 3, b.Order)
	})
}

func TestServiceUpdate(t *testing.T) {
	t.Parallel()

	stored := func() *model.Banner {
		return &model.Banner{ID: "b1", Image: "https://img/1.png", Type: model.BannerTypeHome, Active: true}
	}

	t.Run("applies patch", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockBannerRepository(t)
		repo.On("BannerByID", mock.Anything, "b1").Return(stored(), nil).Once()
		repo.On("Update", mock.Anything, mock.MatchedBy(func(b *model.Banner) bool {
			return b.Title == "Verano" && b.Type == model.BannerTypeCatalog && b.Image == "https://img/1.png"
		})).Return(nil).Once()

		catalog := model.BannerTypeCatalog
		b, err := newSvc(repo).Update(context.Background(), "b1", model.UpdateBannerParams{
			Title: lo.ToPtr(" Verano "),
			Type:  &catalog,
		})
		require.NoError(t, err)
		assert.Equal(t, "Verano", b.Title)
	})

	t.Run("rejects clearing the image", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockBannerRepository(t)
		repo.On("BannerByID", mock.Anything, "b1").Return(stored(), nil).Once()

		_, err := newSvc(repo).Update(context.Background(), "b1", model.UpdateBannerParams{Image: lo.ToPtr("")})
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockBannerRepository(t)
		repo.On("BannerByID", mock.Anything, "b9").Return(nil, model.ErrNotFound).Once()

		_, err := newSvc(repo).Update(context.Background(), "b9", model.UpdateBannerParams{})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestServiceReorder(t *testing.T) {
	t.Parallel()

	t.Run("skips unknown ids", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockBannerRepository(t)
		repo.On("Reorder", mock.Anything, []string{"b2", "b1", "ghost"}).Return(int64(2), nil).Once()

		n, err := newSvc(repo).Reorder(context.Background(), []string{" b2", "b1", "", "ghost"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("duplicate ids", func(t *testing.T) {
		t.Parallel()

		_, err := newSvc(mocks.NewMockBannerRepository(t)).Reorder(context.Background(), []string{"b1", "b1"})
		assert.ErrorIs(t, err, model.ErrValidation)
	})
}
