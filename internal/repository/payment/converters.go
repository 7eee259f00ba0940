package payment

import "service/internal/entities"

func ToDomain(p *PaymentDB) *entities.Payment {
	if p == nil {
		return nil
	}
	return &entities.Payment{
		ID:            p.ID,
		ParcelID:      p.ParcelID,
		CustomerEmail: p.CustomerEmail,
		Amount:        p.Amount,
		Currency:      p.Currency,
		TransactionID: p.TransactionID,
		TrackingID:    p.TrackingID,
		PaymentStatus: entities.PaymentStatusType(p.PaymentStatus),
		PaidAt:        p.PaidAt,
	}
}

func FromDomain(p *entities.Payment) *PaymentDB {
	if p == nil {
		return nil
	}
	return &PaymentDB{
		ID:            p.ID,
		ParcelID:      p.ParcelID,
		CustomerEmail: p.CustomerEmail,
		Amount:        p.Amount,
		Currency:      p.Currency,
		TransactionID: p.TransactionID,
		TrackingID:    p.TrackingID,
		PaymentStatus: p.PaymentStatus.String(),
		PaidAt:        p.PaidAt,
	}
}

func ToDomainList(paymentsDB []PaymentDB) []entities.Payment {
	if len(paymentsDB) == 0 {
		return []entities.Payment{}
	}

	result := make([]entities.Payment, len(paymentsDB))
	for i, paymentDB := range paymentsDB {
		result[i] = *ToDomain(&paymentDB)
	}
	return result
}
