package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/you-humble/frio-catalog/internal/model"
	"github.com/you-humble/frio-catalog/internal/service/pricing"
	"github.com/you-humble/frio-catalog/platform/logger"
)

type SettingsRepository interface {
	Settings(ctx context.Context) (*model.Settings, error)
	SetRate(ctx context.Context, rate float64) (*model.Settings, error)
}

type ProductRepricer interface {
	RepriceAll(ctx context.Context, rate float64) (int64, error)
}

type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type RetryPolicy struct {
	MaxRetries uint64
	Base       time.Duration
}

var DefaultRetryPolicy = RetryPolicy{MaxRetries: 3, Base: 100 * time.Millisecond}

type service struct {
	repo           SettingsRepository
	products       ProductRepricer
	tx             Transactor
	retry          RetryPolicy
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewSettingsService(
	repository SettingsRepository,
	products ProductRepricer,
	tx Transactor,
	retry RetryPolicy,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repository,
		products:       products,
		tx:             tx,
		retry:          retry,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

// Settings returns the stored settings. Before the first write the rate
// reads as model.DefaultExchangeRate with an empty kit.
func (svc *service) Settings(ctx context.Context) (*model.Settings, error) {
	const op = "settings.service.Settings"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	s, err := svc.repo.Settings(ctx)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return &model.Settings{Rate: model.DefaultExchangeRate, InstallKit: []model.KitItemSpec{}}, nil
		}
		logger.Error(ctx, "repository settings", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}

func (svc *service) ExchangeRate(ctx context.Context) (float64, error) {
	const op = "settings.service.ExchangeRate"

	s, err := svc.Settings(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return s.Rate, nil
}

// UpdateExchangeRate reprices every product that is not fixed in ARS and
// stores the new rate. Both steps run in one transaction when available.
// Without transactions products are repriced first, so a stored rate is
// never left next to stale prices. Both steps are idempotent, so transient
// failures are retried as a whole.
func (svc *service) UpdateExchangeRate(ctx context.Context, rate float64) (*model.UpdateRateResult, error) {
	const op = "settings.service.UpdateExchangeRate"
	log := logger.With(logger.Float64("rate", rate))

	if !pricing.ValidRate(rate) {
		log.Warn(ctx, "invalid exchange rate")
		return nil, fmt.Errorf("%s: exchange rate must be positive: %w", op, model.ErrValidation)
	}

	backoff := retry.WithMaxRetries(svc.retry.MaxRetries, retry.NewExponential(svc.retry.Base))
	res, err := retry.DoValue(ctx, backoff, func(ctx context.Context) (*model.UpdateRateResult, error) {
		res, err := svc.updateRateOnce(ctx, rate)
		if errors.Is(err, model.ErrUnavailable) {
			log.Warn(ctx, "exchange rate update failed, retrying", logger.ErrorF(err))
			return nil, retry.RetryableError(err)
		}
		return res, err
	})
	if err != nil {
		log.Error(ctx, "update exchange rate", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "exchange rate updated", logger.Int64("repriced", res.Repriced))
	return res, nil
}

func (svc *service) updateRateOnce(ctx context.Context, rate float64) (*model.UpdateRateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	var res model.UpdateRateResult
	err := svc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		n, err := svc.products.RepriceAll(ctx, rate)
		if err != nil {
			return err
		}

		s, err := svc.repo.SetRate(ctx, rate)
		if err != nil {
			return err
		}

		res = model.UpdateRateResult{Settings: s, Repriced: n}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &res, nil
}
