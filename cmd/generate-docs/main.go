package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hendrikschneider/silver/internal/clock"
	"github.com/hendrikschneider/silver/internal/config"
	"github.com/hendrikschneider/silver/internal/domain/customer"
	"github.com/hendrikschneider/silver/internal/domain/plan"
	"github.com/hendrikschneider/silver/internal/domain/provider"
	"github.com/hendrikschneider/silver/internal/domain/subscription"
	"github.com/hendrikschneider/silver/internal/logger"
	"github.com/hendrikschneider/silver/internal/service"
	"github.com/hendrikschneider/silver/internal/testutil"
	"github.com/hendrikschneider/silver/internal/types"
	"github.com/robfig/cron/v3"
)

var (
	subscriptionID = flag.String("subscription", "", "Generate documents for a single subscription, dated now, and exit")
	seedFile       = flag.String("seed", "", "JSON file with customers, providers, plans and subscriptions to load before running")
	schedule       = flag.String("schedule", "", "Cron schedule for full generation runs (overrides config)")
	runOnce        = flag.Bool("run-once", false, "Run a full generation pass and exit (overrides config)")
)

// seed is the fixture format loaded with --seed. The binary runs against
// in-memory repositories; embedding applications wire their own persistence.
type seed struct {
	Customers     []*customer.Customer         `json:"customers"`
	Providers     []*provider.Provider         `json:"providers"`
	Plans         []*plan.Plan                 `json:"plans"`
	Subscriptions []*subscription.Subscription `json:"subscriptions"`
}

func main() {
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *schedule != "" {
		cfg.Generation.Schedule = *schedule
	}

	logger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	params := service.ServiceParams{
		Logger:       logger,
		Config:       cfg,
		Clock:        clock.New(),
		CustomerRepo: testutil.NewInMemoryCustomerStore(),
		ProviderRepo: testutil.NewInMemoryProviderStore(),
		PlanRepo:     testutil.NewInMemoryPlanStore(),
		SubRepo:      testutil.NewInMemorySubscriptionStore(),
		DocumentRepo: testutil.NewInMemoryDocumentStore(),
	}

	ctx := types.SetTenantID(context.Background(), types.DefaultTenantID)
	ctx = types.SetUserID(ctx, types.DefaultUserID)

	if *seedFile != "" {
		if err := loadSeed(ctx, params, *seedFile); err != nil {
			logger.Fatalw("Failed to load seed file", "file", *seedFile, "error", err)
		}
	}

	generator := service.NewDocumentGenerationService(params)

	if *subscriptionID != "" {
		if err := generator.GenerateForSubscription(ctx, *subscriptionID); err != nil {
			logger.Fatalw("Single subscription generation failed", "subscription_id", *subscriptionID, "error", err)
		}
		printDocuments(ctx, params)
		return
	}

	if *runOnce || cfg.Deployment.Mode == types.ModeOnce {
		if err := generator.GenerateAll(ctx); err != nil {
			logger.Fatalw("Generation run failed", "error", err)
		}
		printDocuments(ctx, params)
		return
	}

	// Scheduler mode: trigger full runs on the configured cadence
	c := cron.New()
	_, err = c.AddFunc(cfg.Generation.Schedule, func() {
		if err := generator.GenerateAll(ctx); err != nil {
			logger.Errorw("Scheduled generation run failed", "error", err)
		}
	})
	if err != nil {
		logger.Fatalw("Failed to schedule generation runs", "schedule", cfg.Generation.Schedule, "error", err)
	}

	c.Start()
	logger.Infow("Generation scheduler started", "schedule", cfg.Generation.Schedule)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutting down scheduler")
	<-c.Stop().Done()
}

func loadSeed(ctx context.Context, params service.ServiceParams, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var s seed
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	for _, c := range s.Customers {
		c.BaseModel = types.GetDefaultBaseModel(ctx)
		if err := params.CustomerRepo.Create(ctx, c); err != nil {
			return err
		}
	}
	for _, p := range s.Providers {
		if err := p.Validate(); err != nil {
			return err
		}
		p.BaseModel = types.GetDefaultBaseModel(ctx)
		if err := params.ProviderRepo.Create(ctx, p); err != nil {
			return err
		}
	}
	for _, p := range s.Plans {
		p.BaseModel = types.GetDefaultBaseModel(ctx)
		if err := params.PlanRepo.Create(ctx, p); err != nil {
			return err
		}
	}
	for _, sub := range s.Subscriptions {
		sub.BaseModel = types.GetDefaultBaseModel(ctx)
		if err := params.SubRepo.Create(ctx, sub); err != nil {
			return err
		}
	}
	return nil
}

func printDocuments(ctx context.Context, params service.ServiceParams) {
	docs, err := params.DocumentRepo.List(ctx, types.NewNoLimitDocumentFilter())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to list documents: %v\n", err)
		return
	}

	out, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal documents: %v\n", err)
		return
	}
	fmt.Println(string(out))
}
