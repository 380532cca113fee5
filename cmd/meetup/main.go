package main

import (
	"context"
	"log/slog"
	"os"

	"meetup/config"
	"meetup/internal/delivery"
	"meetup/internal/delivery/api"
	"meetup/internal/delivery/api/middleware"
	"meetup/internal/delivery/api/router/handler"
	"meetup/internal/domain/service"
	"meetup/internal/errors"
	"meetup/internal/infra/auth"
	logs "meetup/internal/infra/log"
	"meetup/internal/infra/maps"
	"meetup/internal/infra/qrcode"
	"meetup/internal/usecase/impl"

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
		maps.NewClient,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			maps.NewGeocoder,
			maps.NewPlacesSearcher,
			maps.NewDistanceMatrix,
			auth.NewBcryptHasher,
			newTokenService,
			qrcode.NewQRCodeService,
		),
	)
}

// newTokenService creates the session token service when the password gate is on
func newTokenService(cfg *config.Config) (service.TokenService, error) {
	if !cfg.Access.Enabled() {
		return nil, nil // The gate is optional
	}

	svc, err := auth.NewJWTService(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token service")
	}

	return svc, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMatchService,
			impl.NewAccessService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewMatchHandler,
			handler.NewSessionHandler,
			handler.NewLinkHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
