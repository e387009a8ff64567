package dto

type CreateJobRequest struct {
	Address       string  `json:"address"`
	Postcode      string  `json:"postcode"`
	Problem       string  `json:"problem"`
	CustomerPhone string  `json:"customerPhone"`
	ScheduledDate *string `json:"scheduledDate"`
	TimeFrom      *string `json:"timeFrom"`
	TimeTo        *string `json:"timeTo"`
	AssignedTo    *string `json:"assignedTo"`
}
