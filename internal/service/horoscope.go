package service

import (
	"context"

	"github.com/astrointeract/astropulse/internal/astro"
	"github.com/astrointeract/astropulse/internal/domain/models"
)

// HoroscopeService defines the business logic for computing horoscopes.
type HoroscopeService interface {
	Compute(ctx context.Context, req astro.Request) (*models.Horoscope, error)
}

type horoscopeService struct {
	engine *astro.Engine
}

func NewHoroscopeService(engine *astro.Engine) HoroscopeService {
	return &horoscopeService{engine: engine}
}

func (s *horoscopeService) Compute(ctx context.Context, req astro.Request) (*models.Horoscope, error) {
	return s.engine.Horoscope(ctx, req)
}
