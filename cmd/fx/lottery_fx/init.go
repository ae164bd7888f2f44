package lottery_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"lottopay/internal/config"
	"lottopay/internal/repositories"
	"lottopay/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionRepo,
	provideEntryRepo,
	provideDrawRepo,
	provideRandomSource,
	provideNumberGenerator,
	provideSubscriptionService,
	provideTicketService,
	provideDrawService,
	provideRewardService)

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideEntryRepo(db *gorm.DB) repositories.EntryRepository {
	return repositories.NewEntryRepository(db)
}

func provideDrawRepo(db *gorm.DB) repositories.DrawRepository {
	return repositories.NewDrawRepository(db)
}

func provideRandomSource() services.RandomSource {
	return services.NewRandomSource()
}

func provideNumberGenerator(entryRepo repositories.EntryRepository, src services.RandomSource) services.NumberGeneratorInterface {
	return services.NewNumberGenerator(entryRepo, src)
}

func provideSubscriptionService(subRepo repositories.SubscriptionRepository, log *zap.Logger) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(subRepo, log)
}

func provideTicketService(
	subRepo repositories.SubscriptionRepository,
	entryRepo repositories.EntryRepository,
	generator services.NumberGeneratorInterface,
	cfg *config.Config,
	log *zap.Logger,
) services.TicketServiceInterface {
	return services.NewTicketService(subRepo, entryRepo, generator, cfg, log)
}

func provideDrawService(
	drawRepo repositories.DrawRepository,
	entryRepo repositories.EntryRepository,
	src services.RandomSource,
	cfg *config.Config,
	log *zap.Logger,
) services.DrawServiceInterface {
	return services.NewDrawService(drawRepo, entryRepo, src, cfg, log)
}

func provideRewardService(drawRepo repositories.DrawRepository, cfg *config.Config, log *zap.Logger) services.RewardServiceInterface {
	return services.NewRewardService(drawRepo, cfg, log)
}
