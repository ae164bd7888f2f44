package controllers_fx

import (
	"go.uber.org/fx"

	"lottopay/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewSubscriptionController),
	fx.Provide(controllers.NewTicketController),
	fx.Provide(controllers.NewDrawController),
	fx.Provide(controllers.NewRewardController))
