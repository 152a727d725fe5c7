package migration

import (
	"context"
	"errors"

	"github.com/tonsuimining/platform/internal/domain/entity"
	errs "github.com/tonsuimining/platform/internal/domain/error"
	coreport "github.com/tonsuimining/platform/internal/domain/port/core"
	"github.com/tonsuimining/platform/internal/domain/port/persistence"
)

// defaultPlans is the plan catalog seeded into an empty database
var defaultPlans = []entity.Plan{
	{Name: "Starter", ROIPercentage: 10, DurationDays: 7, MinAmountInCents: 5000, MaxAmountInCents: 100000, Active: true},
	{Name: "Silver", ROIPercentage: 25, DurationDays: 14, MinAmountInCents: 100000, MaxAmountInCents: 500000, Active: true},
	{Name: "Gold", ROIPercentage: 60, DurationDays: 30, MinAmountInCents: 500000, MaxAmountInCents: 0, Active: true},
}

// CreateDefaultPlans seeds the plan catalog when it is empty
func CreateDefaultPlans(ctx context.Context, planRepo persistence.PlanRepository, timeProvider coreport.TimeProvider) error {
	existing, err := planRepo.List(ctx, false)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := timeProvider.Now()
	for i := range defaultPlans {
		plan := defaultPlans[i]
		plan.CreatedAt = now
		plan.UpdatedAt = now
		if err := planRepo.Create(ctx, &plan); err != nil {
			return err
		}
	}

	return nil
}

// CreateDefaultAdmin ensures an admin account exists for first boot.
// The password comes from configuration, never from source.
func CreateDefaultAdmin(
	ctx context.Context,
	userRepo persistence.UserRepository,
	hasher coreport.PasswordHasher,
	timeProvider coreport.TimeProvider,
	email, password string,
) error {
	if email == "" || password == "" {
		return nil
	}

	_, err := userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return err
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return err
	}

	admin, err := entity.NewUser(email, "Administrator", hash, timeProvider)
	if err != nil {
		return err
	}
	admin.Role = entity.RoleAdmin

	return userRepo.Create(ctx, admin)
}
