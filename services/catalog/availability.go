package catalog

import "doctorportal/models"

// ComputeAvailability replaces each service's slot list with the slots not
// yet booked for that service on the given date. A pure function: inputs
// are not mutated, slot order is preserved, and a fully booked service is
// returned with an empty slot list rather than dropped.
func ComputeAvailability(date string, services []models.Service, bookings []models.Booking) []models.Service {
	out := make([]models.Service, len(services))
	for i, svc := range services {
		booked := make(map[string]struct{})
		for _, b := range bookings {
			if b.Treatment == svc.Name && b.Date == date {
				booked[b.Slot] = struct{}{}
			}
		}

		open := make([]string, 0, len(svc.Slots))
		for _, slot := range svc.Slots {
			if _, taken := booked[slot]; !taken {
				open = append(open, slot)
			}
		}

		out[i] = svc
		out[i].Slots = open
	}
	return out
}
