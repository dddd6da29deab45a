package response

import "app_oficios/internal/domain/entities"

type AvailableSlotResponse struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}

// WeeklySlotsResponse carries the raw 7-day slot list plus the same slots
// grouped per day, already sorted for rendering.
type WeeklySlotsResponse struct {
	Slots  []AvailableSlotResponse `json:"slots"`
	ByDate []SlotGroupResponse     `json:"by_date"`
}

type SlotGroupResponse struct {
	Date  string                  `json:"date"`
	Slots []AvailableSlotResponse `json:"slots"`
}

func FromSlots(slots []entities.AvailableSlot, groups []entities.SlotGroup) WeeklySlotsResponse {
	out := WeeklySlotsResponse{
		Slots:  make([]AvailableSlotResponse, 0, len(slots)),
		ByDate: make([]SlotGroupResponse, 0, len(groups)),
	}
	for _, s := range slots {
		out.Slots = append(out.Slots, fromSlot(s))
	}
	for _, g := range groups {
		gr := SlotGroupResponse{Date: g.Date, Slots: make([]AvailableSlotResponse, 0, len(g.Slots))}
		for _, s := range g.Slots {
			gr.Slots = append(gr.Slots, fromSlot(s))
		}
		out.ByDate = append(out.ByDate, gr)
	}
	return out
}

func fromSlot(s entities.AvailableSlot) AvailableSlotResponse {
	return AvailableSlotResponse{
		Date:      s.Date,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Available: s.Available,
	}
}
