package response_models

type LoginResponse struct {
	Token     string `json:"token"`
	Role      string `json:"role"`
	HasAccess bool   `json:"has_access"`
}

type ProfileResponse struct {
	AccountID              string  `json:"account_id"`
	FirstName              string  `json:"first_name"`
	LastName               string  `json:"last_name"`
	Email                  string  `json:"email"`
	AvatarURL              *string `json:"avatar_url,omitempty"`
	IntakeCompletedAt      *int64  `json:"intake_completed_at"`
	FirstLoginVideoWatched bool    `json:"first_login_video_watched"`
}
