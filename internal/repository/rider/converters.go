package rider

import "service/internal/entities"

func ToDomain(r *RiderDB) *entities.Rider {
	if r == nil {
		return nil
	}
	return &entities.Rider{
		ID:                r.ID,
		Name:              r.Name,
		Email:             r.Email,
		District:          r.District,
		ApplicationStatus: entities.RiderApplicationStatusType(r.ApplicationStatus),
		WorkStatus:        entities.RiderWorkStatusType(r.WorkStatus),
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func FromDomainModify(riderModify *entities.RiderModify) *RiderModifyDB {
	if riderModify == nil {
		return nil
	}
	riderDB := &RiderModifyDB{
		ID:       riderModify.ID,
		Name:     riderModify.Name,
		Email:    riderModify.Email,
		District: riderModify.District,
	}

	if riderModify.ApplicationStatus != nil {
		applicationStatus := riderModify.ApplicationStatus.String()
		riderDB.ApplicationStatus = &applicationStatus
	}
	if riderModify.WorkStatus != nil {
		workStatus := riderModify.WorkStatus.String()
		riderDB.WorkStatus = &workStatus
	}

	return riderDB
}

func ToDomainList(ridersDB []RiderDB) []entities.Rider {
	if len(ridersDB) == 0 {
		return []entities.Rider{}
	}

	result := make([]entities.Rider, len(ridersDB))
	for i, riderDB := range ridersDB {
		result[i] = *ToDomain(&riderDB)
	}
	return result
}
