package main

import (
	"context"
	"log/slog"
	"os"

	"igpress/config"
	"igpress/internal/delivery"
	"igpress/internal/delivery/http"
	"igpress/internal/delivery/http/middleware"
	"igpress/internal/delivery/http/router/handler"
	"igpress/internal/infra/auth"
	"igpress/internal/infra/gemini"
	logs "igpress/internal/infra/log"
	"igpress/internal/infra/metagraph"
	mongopersist "igpress/internal/infra/persistence/mongo"
	"igpress/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		mongopersist.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongopersist.NewUserRepository,
			mongopersist.NewPageRepository,
			mongopersist.NewLinkedAccountRepository,
			mongopersist.NewPublicationRepository,
			mongopersist.NewSummaryRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			metagraph.NewClient,
			gemini.NewSummarizer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewAccountService,
			impl.NewSummarizeService,
			impl.NewPublishService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewAccountHandler,
			handler.NewSummarizeHandler,
			handler.NewPublishHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
