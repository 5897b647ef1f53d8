// player/model.go
package player

import (
	"gorm.io/gorm"
)

// BattingPosition is where in the order a player usually bats.
type BattingPosition string

const (
	PositionOpening     BattingPosition = "opening"
	PositionMiddleOrder BattingPosition = "middle-order"
	PositionLowerOrder  BattingPosition = "lower-order"
)

// BattingType is the batting hand.
type BattingType string

const (
	BattingLeftHand  BattingType = "left-hand"
	BattingRightHand BattingType = "right-hand"
)

// BowlingType is the bowling style; "none" for pure batters.
type BowlingType string

const (
	BowlingFast    BowlingType = "fast"
	BowlingMedium  BowlingType = "medium"
	BowlingLegSpin BowlingType = "leg-spin"
	BowlingOffSpin BowlingType = "off-spin"
	BowlingNone    BowlingType = "none"
)

// Player represents a cricketer. Player records are immutable once created
// and are referenced, never owned, by teams and matches.
type Player struct {
	gorm.Model
	Name            string          `json:"name" gorm:"not null"`
	BattingPosition BattingPosition `json:"batting_position" gorm:"not null"`
	BattingType     BattingType     `json:"batting_type" gorm:"not null"`
	BowlingType     BowlingType     `json:"bowling_type" gorm:"default:'none'"`
}
