package request_models

type UpdateProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	AvatarURL string `json:"avatar_url"`
}

type CheckInRequest struct {
	WeekNumber int      `json:"week_number" binding:"required"`
	Notes      string   `json:"notes"`
	WeightKg   *float64 `json:"weight_kg"`
}

type FeedbackRequest struct {
	Comment string `json:"comment" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}
