package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"lottopay/cmd/fx/config_fx"
	"lottopay/cmd/fx/controllers_fx"
	"lottopay/cmd/fx/db_fx"
	"lottopay/cmd/fx/lottery_fx"
	"lottopay/internal/api/controllers"
	"lottopay/internal/config"
	"lottopay/pkg/logger"
	"lottopay/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	app := fx.New(
		fx.Provide(logger.New),
		config_fx.Module,
		db_fx.Module,
		lottery_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, zlog *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				zlog.Info("starting HTTP server", zap.String("port", cfg.Port))
				if err := engine.Run(":" + cfg.Port); err != nil {
					zlog.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			zlog.Info("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	subscriptionController *controllers.SubscriptionController,
	ticketController *controllers.TicketController,
	drawController *controllers.DrawController,
	rewardController *controllers.RewardController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, subscriptionController, ticketController, drawController, rewardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	subscriptionController *controllers.SubscriptionController,
	ticketController *controllers.TicketController,
	drawController *controllers.DrawController,
	rewardController *controllers.RewardController) {

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	lottery := r.Group("/lottery")
	lottery.Use(middleware.JWTAuthMiddleware())

	lottery.POST("/subscribe", subscriptionController.Subscribe)
	lottery.POST("/unsubscribe", subscriptionController.Unsubscribe)
	lottery.POST("/entries", ticketController.IssueTicket)
	lottery.GET("/my-numbers", ticketController.GetUserTickets)
	lottery.GET("/reward", rewardController.CheckReward)

	admin := lottery.Group("")
	admin.Use(middleware.RoleMiddleware("admin"))
	admin.GET("/numbers", ticketController.ListPoolNumbers)
	admin.POST("/draw", drawController.SelectWinner)
	admin.POST("/draw/manual", drawController.SelectWinnerManual)
	admin.POST("/clear", drawController.ClearPool)
	admin.GET("/stats", drawController.Stats)
}
