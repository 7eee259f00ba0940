//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_patch_test
package rider_patch

import (
	"context"

	"service/internal/entities"
	"service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateApplicationStatus(ctx context.Context, id int64, status entities.RiderApplicationStatusType) (*entities.Rider, error)
}

type Authorizer interface {
	RequireOperation(ctx context.Context, email string, op entities.Operation) error
}
