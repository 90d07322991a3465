package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// User represents a user in the system
type User struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email    string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Name     string    `json:"name" gorm:"type:varchar(255);not null"`
	Tier     UserTier  `json:"tier" gorm:"type:varchar(50);default:'free';not null"`
	IsActive bool      `json:"is_active" gorm:"default:true;not null"`

	// Profile
	TargetRole *string `json:"target_role,omitempty" gorm:"type:varchar(255)"`
	AvatarURL  *string `json:"avatar_url,omitempty" gorm:"type:varchar(500)"`
	Timezone   string  `json:"timezone" gorm:"type:varchar(50);default:'UTC';not null"`

	// Status
	LastActiveAt *time.Time `json:"last_active_at,omitempty" gorm:"type:timestamp"`

	// Preferences (stored as JSONB in PostgreSQL)
	Preferences datatypes.JSON `json:"preferences" gorm:"type:jsonb;default:'{}'"`

	// Timestamps
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// UserTier defines subscription tiers
type UserTier string

const (
	TierFree UserTier = "free"
	TierPro  UserTier = "pro"
)

// IsValid checks if the user tier is valid
func (t UserTier) IsValid() bool {
	switch t {
	case TierFree, TierPro:
		return true
	}
	return false
}

// NewUser creates a new user with default values
func NewUser(email, name string) *User {
	now := time.Now()

	// Default preferences
	prefs, _ := json.Marshal(map[string]interface{}{
		"weekly_report":      true,
		"practice_reminders": true,
		"share_usage_stats":  false,
	})

	return &User{
		ID:          uuid.New(),
		Email:       email,
		Name:        name,
		Tier:        TierFree,
		IsActive:    true,
		Timezone:    "UTC",
		Preferences: prefs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdateActivity updates the last active timestamp
func (u *User) UpdateActivity() {
	now := time.Now()
	u.LastActiveAt = &now
	u.UpdatedAt = now
}

// IsPro checks if user is on the pro tier
func (u *User) IsPro() bool {
	return u.Tier == TierPro
}

// Validate validates user data
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrInvalidEmail
	}
	if u.Name == "" {
		return ErrInvalidName
	}
	if !u.Tier.IsValid() {
		return ErrInvalidTier
	}
	return nil
}

// PublicUser returns a user with internal fields removed
type PublicUser struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Tier       UserTier  `json:"tier"`
	TargetRole *string   `json:"target_role,omitempty"`
	AvatarURL  *string   `json:"avatar_url,omitempty"`
	Timezone   string    `json:"timezone"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToPublic converts User to PublicUser
func (u *User) ToPublic() *PublicUser {
	return &PublicUser{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Tier:       u.Tier,
		TargetRole: u.TargetRole,
		AvatarURL:  u.AvatarURL,
		Timezone:   u.Timezone,
		CreatedAt:  u.CreatedAt,
	}
}
