package parcel

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return !strings.ContainsAny(email, " \t")
}

func isValidCost(cost float64) bool {
	return cost > 0
}

func isValidParcelID(id int64) bool {
	return id > 0
}

func isValidDeliveryStatus(status string) bool {
	switch status {
	case "created", "pending-pickup", "driver_assigned", "in_transit", "delivered", "cancelled":
		return true
	default:
		return false
	}
}
