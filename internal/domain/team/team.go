package team

import (
	"time"

	"gorm.io/datatypes"

	"github.com/yungbote/team-alchemy-backend/internal/domain/user"
)

type Team struct {
	ID          uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string       `gorm:"uniqueIndex;not null;size:255;column:name" json:"name"`
	Description *string      `gorm:"size:1000;column:description" json:"description"`
	CreatedAt   time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null" json:"updated_at"`
	Members     []*user.User `gorm:"many2many:team_members;joinForeignKey:TeamID;joinReferences:UserID" json:"members"`
}

func (Team) TableName() string { return "teams" }

// TeamAnalysis rows are append-only snapshots of an analysis run.
type TeamAnalysis struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	TeamID       uint           `gorm:"index;not null;column:team_id" json:"team_id"`
	AnalysisType string         `gorm:"size:50;not null;column:analysis_type" json:"analysis_type"`
	Results      datatypes.JSON `gorm:"column:results" json:"results"`
	Score        *float64       `gorm:"column:score" json:"score"`
	CreatedAt    time.Time      `gorm:"not null;index" json:"created_at"`
}

func (TeamAnalysis) TableName() string { return "team_analyses" }
