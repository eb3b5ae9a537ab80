package catalog

type CreateRoomTypeRequest struct {
	Name        string  `json:"name" binding:"required"`
	NightlyRate float64 `json:"nightly_rate" binding:"required,gt=0"`
	Capacity    int     `json:"capacity" binding:"required,gt=0"`
	Description string  `json:"description"`
}

type UpdateRoomTypeRequest struct {
	Name        *string  `json:"name"`
	NightlyRate *float64 `json:"nightly_rate"`
	Capacity    *int     `json:"capacity"`
	Description *string  `json:"description"`
}

type CreateRoomRequest struct {
	Number string `json:"number" binding:"required"`
	Type   string `json:"type" binding:"required"`
	Status string `json:"status"`
}

type UpdateRoomRequest struct {
	Number *string `json:"number"`
	Type   *string `json:"type"`
	Status *string `json:"status"`
}
