package app

import (
	"context"
	"time"

	checkoutGateway "service/internal/gateway/checkout"
	identityGateway "service/internal/gateway/identity"
	"service/internal/handlers/rest/checkout_session_post"
	"service/internal/handlers/rest/parcel_assign_patch"
	"service/internal/handlers/rest/parcel_delete"
	"service/internal/handlers/rest/parcel_get"
	"service/internal/handlers/rest/parcel_post"
	"service/internal/handlers/rest/parcels_get"
	"service/internal/handlers/rest/payment_success_patch"
	"service/internal/handlers/rest/payments_get"
	"service/internal/handlers/rest/rider_patch"
	"service/internal/handlers/rest/rider_post"
	"service/internal/handlers/rest/riders_get"
	"service/internal/handlers/rest/user_post"
	"service/internal/handlers/rest/user_role_get"
	"service/internal/handlers/rest/user_role_patch"
	"service/internal/handlers/rest/users_get"
	"service/internal/handlers/tasks/parcel_cleanup"
	"service/internal/pkg/config"
	"service/internal/pkg/factory/delivery_handle"
	authmw "service/internal/pkg/middlewares/auth"

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

	"service/pkg/background"
	"service/pkg/logger"
	"service/pkg/querier"
	"service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	CleanupInterval time.Duration
	ParcelTTL       time.Duration
)

type Application struct {
	ServiceParcel     ServiceParcel
	ServicePayment    ServicePayment
	ServiceRider      ServiceRider
	ServiceUser       ServiceUser
	ServiceAuth       ServiceAuth
	BackgroundWorkers *background.Worker
}

type ServiceParcel interface {
	parcels_get.Service
	parcel_get.Service
	parcel_post.Service
	parcel_delete.Service
	parcel_assign_patch.Service
}

type ServicePayment interface {
	checkout_session_post.Service
	payment_success_patch.Service
	payments_get.Service
}

type ServiceRider interface {
	riders_get.Service
	rider_post.Service
	rider_patch.Service
}

type ServiceUser interface {
	users_get.Service
	user_post.Service
	user_role_get.Service
	user_role_patch.Service
}

type ServiceAuth interface {
	authmw.Authenticator
	rider_patch.Authorizer
}

type KafkaWorkerApp struct {
	DeliveryService *deliveryService.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideParcelRepository(querier *querier.Querier) *parcelRepo.Repository {
	return parcelRepo.New(querier)
}

func providePaymentRepository(querier *querier.Querier) *paymentRepo.Repository {
	return paymentRepo.New(querier)
}

func provideRiderRepository(querier *querier.Querier) *riderRepo.Repository {
	return riderRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

// provideParcelLocation — часовой пояс, в котором штампуется creationDate
func provideParcelLocation(cfg *config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.Parcel.Timezone)
}

func provideCheckoutGateway(cfg *config.Config) (*checkoutGateway.Gateway, error) {
	return checkoutGateway.New(
		cfg.Checkout.BaseURL,
		cfg.Checkout.SecretKey,
		cfg.Checkout.SuccessURL,
		cfg.Checkout.CancelURL,
		cfg.Checkout.Currency,
	)
}

func provideIdentityGateway(cfg *config.Config) (*identityGateway.Gateway, error) {
	return identityGateway.New(cfg.Identity.BaseURL)
}

func provideServiceParcel(
	repository parcelService.Repository,
	riderRepository parcelService.RiderRepository,
	txManager parcelService.TxManager,
	location *time.Location,
) *parcelService.Parcel {
	return parcelService.New(repository, riderRepository, txManager, location)
}

func provideServicePayment(
	repository paymentService.Repository,
	parcelRepository paymentService.ParcelRepository,
	checkoutGw paymentService.CheckoutGateway,
	trackingFactory paymentService.TrackingIDFactory,
) *paymentService.Payment {
	return paymentService.New(repository, parcelRepository, checkoutGw, trackingFactory)
}

func provideServiceRider(
	repository riderService.Repository,
	userRepository riderService.UserRepository,
	txManager riderService.TxManager,
) *riderService.Rider {
	return riderService.New(repository, userRepository, txManager)
}

func provideServiceUser(repository userService.Repository) *userService.User {
	return userService.New(repository)
}

func provideServiceAuth(
	identityGw authService.IdentityGateway,
	userRepository authService.UserRepository,
) *authService.Auth {
	return authService.New(identityGw, userRepository)
}

func provideStatusHandlerFactory(parcelSvc deliveryService.ParcelTransitions) *delivery_handle.StatusHandlerFactory {
	return delivery_handle.NewStatusHandlerFactory(parcelSvc)
}

func provideDeliveryService(
	parcelSvc deliveryService.ParcelService,
	handlerFactory deliveryService.HandlerFactory,
) *deliveryService.Service {
	return deliveryService.New(parcelSvc, handlerFactory)
}

func provideCleanupInterval(cfg *config.Config) CleanupInterval {
	return CleanupInterval(cfg.Tasks.ParcelCleanupInterval)
}

func provideParcelTTL(cfg *config.Config) ParcelTTL {
	return ParcelTTL(cfg.Tasks.ParcelTTL)
}

func provideParcelCleanupTask(
	log logger.Logger,
	parcelSvc parcel_cleanup.Service,
	interval CleanupInterval,
	ttl ParcelTTL,
) *parcel_cleanup.ParcelCleanup {
	return parcel_cleanup.NewParcelCleanup(log, parcelSvc, time.Duration(interval), time.Duration(ttl))
}

func provideTaskList(
	parcelCleanupTask *parcel_cleanup.ParcelCleanup,
) []background.Task {
	return []background.Task{
		parcelCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
