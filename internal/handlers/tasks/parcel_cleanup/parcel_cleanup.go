package parcel_cleanup

import (
	"context"
	"time"

	"service/pkg/logger"
)

type Service interface {
	CleanupAbandonedParcels(ctx context.Context, ttl time.Duration) (int64, error)
}

// ParcelCleanup периодически удаляет неоплаченные посылки без
// назначенного райдера старше ttl.
type ParcelCleanup struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	ttl      time.Duration
}

func NewParcelCleanup(log logger.Logger, service Service, interval, ttl time.Duration) *ParcelCleanup {
	return &ParcelCleanup{
		log:      log,
		service:  service,
		interval: interval,
		ttl:      ttl,
	}
}

func (p *ParcelCleanup) TTL() time.Duration {
	return p.interval
}

func (p *ParcelCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	rowsAffected, err := p.service.CleanupAbandonedParcels(ctxWithTimeout, p.ttl)

	if rowsAffected > 0 {
		p.log.With(
			logger.NewField("abandoned_parcels", rowsAffected),
		).Info("parcel cleanup")
	}

	return err
}

func (p *ParcelCleanup) Info() string {
	return "parcel cleanup"
}
