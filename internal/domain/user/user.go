package user

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null;size:255;column:email" json:"email"`
	Name         string    `gorm:"not null;size:255;column:name" json:"name"`
	PasswordHash *string   `gorm:"column:password_hash" json:"-"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`

	Profile *UserProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
}

func (User) TableName() string { return "users" }

// UserProfile holds the latest personality assessment for a user.
type UserProfile struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint           `gorm:"uniqueIndex;not null;column:user_id" json:"user_id"`
	Archetype   *string        `gorm:"size:50;column:archetype" json:"archetype"`
	TraitScores datatypes.JSON `gorm:"column:trait_scores" json:"trait_scores"`
	JungianType *string        `gorm:"size:4;column:jungian_type" json:"jungian_type"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updated_at"`
}

func (UserProfile) TableName() string { return "user_profiles" }
