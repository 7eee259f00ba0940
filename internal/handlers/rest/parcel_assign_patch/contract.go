//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_assign_patch_test
package parcel_assign_patch

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
	AssignRider(ctx context.Context, parcelID int64, assignment entities.RiderAssignment) (*entities.AssignmentResult, error)
}
