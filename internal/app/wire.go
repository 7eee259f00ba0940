//go:build wireinject
// +build wireinject

package app

import (
	"context"

	checkoutGateway "service/internal/gateway/checkout"
	identityGateway "service/internal/gateway/identity"
	"service/internal/handlers/tasks/parcel_cleanup"
	"service/internal/pkg/config"
	"service/internal/pkg/factory/delivery_handle"
	"service/internal/pkg/factory/tracking_id"

	parcelRepo "service/internal/repository/parcel"
	paymentRepo "service/internal/repository/payment"
	riderRepo "service/internal/repository/rider"
	userRepo "service/internal/repository/user"
	authService "service/internal/service/auth"
	deliveryService "service/internal/service/delivery"
	parcelService "service/internal/service/parcel"
	paymentService "service/internal/service/payment"
	riderService "service/internal/service/rider"
	userService "service/internal/service/user"

	"service/pkg/logger"
	"service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideCleanupInterval,
		provideParcelTTL,
		provideParcelLocation,

		provideParcelRepository,
		providePaymentRepository,
		provideRiderRepository,
		provideUserRepository,

		provideCheckoutGateway,
		provideIdentityGateway,
		tracking_id.New,

		provideServiceParcel,
		provideServicePayment,
		provideServiceRider,
		provideServiceUser,
		provideServiceAuth,

		provideParcelCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceParcel), new(*parcelService.Parcel)),
		wire.Bind(new(ServicePayment), new(*paymentService.Payment)),
		wire.Bind(new(ServiceRider), new(*riderService.Rider)),
		wire.Bind(new(ServiceUser), new(*userService.User)),
		wire.Bind(new(ServiceAuth), new(*authService.Auth)),

		wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(parcelService.RiderRepository), new(*riderRepo.Repository)),
		wire.Bind(new(paymentService.Repository), new(*paymentRepo.Repository)),
		wire.Bind(new(paymentService.ParcelRepository), new(*parcelRepo.Repository)),
		wire.Bind(new(paymentService.CheckoutGateway), new(*checkoutGateway.Gateway)),
		wire.Bind(new(paymentService.TrackingIDFactory), new(*tracking_id.TrackingIDFactory)),
		wire.Bind(new(riderService.Repository), new(*riderRepo.Repository)),
		wire.Bind(new(riderService.UserRepository), new(*userRepo.Repository)),
		wire.Bind(new(userService.Repository), new(*userRepo.Repository)),
		wire.Bind(new(authService.IdentityGateway), new(*identityGateway.Gateway)),
		wire.Bind(new(authService.UserRepository), new(*userRepo.Repository)),

		wire.Bind(new(parcelService.TxManager), new(*tx.Manager)),
		wire.Bind(new(riderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(parcel_cleanup.Service), new(*parcelService.Parcel)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-delivery-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideParcelLocation,

		provideParcelRepository,
		provideRiderRepository,

		provideServiceParcel,
		provideStatusHandlerFactory,
		provideDeliveryService,

		wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(parcelService.RiderRepository), new(*riderRepo.Repository)),
		wire.Bind(new(parcelService.TxManager), new(*tx.Manager)),

		wire.Bind(new(deliveryService.ParcelService), new(*parcelService.Parcel)),
		wire.Bind(new(deliveryService.ParcelTransitions), new(*parcelService.Parcel)),
		wire.Bind(new(deliveryService.HandlerFactory), new(*delivery_handle.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
