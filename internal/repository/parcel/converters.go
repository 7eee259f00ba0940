package parcel

import (
	"service/internal/entities"
)

func ToDomain(p *ParcelDB) *entities.Parcel {
	if p == nil {
		return nil
	}

	parcel := &entities.Parcel{
		ID:             p.ID,
		SenderEmail:    p.SenderEmail,
		Name:           p.Name,
		Cost:           p.Cost,
		PaymentStatus:  entities.PaymentStatusType(p.PaymentStatus),
		DeliveryStatus: entities.DeliveryStatusType(p.DeliveryStatus),
		CreatedAt:      p.CreatedAt,
	}

	if p.TrackingID != nil {
		parcel.TrackingID = *p.TrackingID
	}
	if p.RiderID != nil {
		parcel.RiderID = *p.RiderID
	}
	if p.RiderName != nil {
		parcel.RiderName = *p.RiderName
	}
	if p.RiderEmail != nil {
		parcel.RiderEmail = *p.RiderEmail
	}

	return parcel
}

func FromDomainModify(parcelModify *entities.ParcelModify) *ParcelModifyDB {
	if parcelModify == nil {
		return nil
	}
	parcelDB := &ParcelModifyDB{
		ID:          parcelModify.ID,
		SenderEmail: parcelModify.SenderEmail,
		Name:        parcelModify.Name,
		Cost:        parcelModify.Cost,
		TrackingID:  parcelModify.TrackingID,
		RiderID:     parcelModify.RiderID,
		RiderName:   parcelModify.RiderName,
		RiderEmail:  parcelModify.RiderEmail,
		CreatedAt:   parcelModify.CreatedAt,
	}

	if parcelModify.PaymentStatus != nil {
		paymentStatus := parcelModify.PaymentStatus.String()
		parcelDB.PaymentStatus = &paymentStatus
	}
	if parcelModify.DeliveryStatus != nil {
		deliveryStatus := parcelModify.DeliveryStatus.String()
		parcelDB.DeliveryStatus = &deliveryStatus
	}

	return parcelDB
}

func ToDomainList(parcelsDB []ParcelDB) []entities.Parcel {
	if len(parcelsDB) == 0 {
		return []entities.Parcel{}
	}

	result := make([]entities.Parcel, len(parcelsDB))
	for i, parcelDB := range parcelsDB {
		result[i] = *ToDomain(&parcelDB)
	}
	return result
}
