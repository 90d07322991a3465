package user

// CreateUserRequest represents the request to register an account
type CreateUserRequest struct {
	Email      string  `json:"email" validate:"required,email,max=255"`
	Name       string  `json:"name" validate:"required,min=1,max=255"`
	TargetRole *string `json:"target_role,omitempty" validate:"omitempty,max=255"`
	Timezone   string  `json:"timezone,omitempty" validate:"omitempty,max=50"`
}

// UpdateUserRequest represents a partial profile update
type UpdateUserRequest struct {
	Name        *string                `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	TargetRole  *string                `json:"target_role,omitempty" validate:"omitempty,max=255"`
	AvatarURL   *string                `json:"avatar_url,omitempty" validate:"omitempty,url,max=500"`
	Timezone    *string                `json:"timezone,omitempty" validate:"omitempty,max=50"`
	Preferences map[string]interface{} `json:"preferences,omitempty"`
}
