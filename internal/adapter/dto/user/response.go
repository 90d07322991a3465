package user

import "time"

// UserResponse represents a user in responses
type UserResponse struct {
	ID           string                 `json:"id"`
	Email        string                 `json:"email"`
	Name         string                 `json:"name"`
	Tier         string                 `json:"tier"`
	TargetRole   *string                `json:"target_role,omitempty"`
	AvatarURL    *string                `json:"avatar_url,omitempty"`
	Timezone     string                 `json:"timezone"`
	Preferences  map[string]interface{} `json:"preferences"`
	LastActiveAt *time.Time             `json:"last_active_at,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}
