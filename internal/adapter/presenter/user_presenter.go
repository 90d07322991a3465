package presenter

import (
	"encoding/json"

	userDTO "github.com/interviewai-team/interviewai-backend/internal/adapter/dto/user"
	"github.com/interviewai-team/interviewai-backend/internal/domain/entities"
)

// ToUserResponse converts a User entity to UserResponse DTO
func ToUserResponse(u *entities.User) *userDTO.UserResponse {
	if u == nil {
		return nil
	}

	var preferences map[string]interface{}
	if u.Preferences != nil {
		json.Unmarshal(u.Preferences, &preferences)
	}

	return &userDTO.UserResponse{
		ID:           u.ID.String(),
		Email:        u.Email,
		Name:         u.Name,
		Tier:         string(u.Tier),
		TargetRole:   u.TargetRole,
		AvatarURL:    u.AvatarURL,
		Timezone:     u.Timezone,
		Preferences:  preferences,
		LastActiveAt: u.LastActiveAt,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
