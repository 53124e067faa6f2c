package service

import (
	"github.com/hendrikschneider/silver/internal/clock"
	"github.com/hendrikschneider/silver/internal/config"
	"github.com/hendrikschneider/silver/internal/domain/customer"
	"github.com/hendrikschneider/silver/internal/domain/document"
	"github.com/hendrikschneider/silver/internal/domain/plan"
	"github.com/hendrikschneider/silver/internal/domain/provider"
	"github.com/hendrikschneider/silver/internal/domain/subscription"
	"github.com/hendrikschneider/silver/internal/logger"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	Clock  clock.Clock

	// Repositories
	CustomerRepo customer.Repository
	ProviderRepo provider.Repository
	PlanRepo     plan.Repository
	SubRepo      subscription.Repository
	DocumentRepo document.Repository

	// Charger computes and appends a subscription's charge onto a document.
	// Left nil, the default plan backed charger is used.
	Charger subscription.Charger
}

// GetCharger returns the configured charger, falling back to the default
// plan backed implementation
func (p ServiceParams) GetCharger() subscription.Charger {
	if p.Charger != nil {
		return p.Charger
	}
	return NewSubscriptionChargeService(p)
}
