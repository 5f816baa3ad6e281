package api

// swagger:model api.UpdateExperienceRequest
type UpdateExperienceRequest struct {
	HoursPlayed *float64 `json:"hoursPlayed,omitempty" validate:"omitempty,gte=0" example:"20"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=10" example:"7"`
	Review      *string  `json:"review,omitempty" example:"Still fun"`
}
