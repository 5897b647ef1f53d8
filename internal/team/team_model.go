// team/model.go
package team

import (
	"gorm.io/gorm"

	"github.com/pitchside/scorebox/internal/models"
)

// Team represents one side of a match: a name and an ordered roster of
// player references. Roster order defines the batting order; the openers
// are the first two entries.
type Team struct {
	gorm.Model
	Name   string           `json:"name" gorm:"not null"`
	Roster models.UintSlice `json:"players" gorm:"type:jsonb"`
}
