// match/model.go
package match

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/pitchside/scorebox/internal/scoring"
)

// InningsDoc stores one innings as a JSONB document on the match row. An
// innings is written and read whole: the scoring engine replaces the entire
// value on every delivery, so a document column fits better than normalized
// delivery rows.
type InningsDoc struct {
	scoring.Innings
}

// Value implements the driver.Valuer interface for InningsDoc.
func (d InningsDoc) Value() (driver.Value, error) {
	return json.Marshal(d.Innings)
}

// Scan implements the sql.Scanner interface for InningsDoc.
func (d *InningsDoc) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		str, ok := value.(string)
		if !ok {
			return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
		}
		bytes = []byte(str)
	}
	return json.Unmarshal(bytes, &d.Innings)
}

// Match is the persisted form of a game. The scalar columns mirror the
// scoring aggregate; the two innings ride along as JSONB documents.
type Match struct {
	gorm.Model
	TeamAID        uint            `json:"team_a_id" gorm:"not null"`
	TeamBID        uint            `json:"team_b_id" gorm:"not null"`
	TotalOvers     int             `json:"total_overs" gorm:"not null"`
	BattingFirst   scoring.BatSide `json:"batting_first" gorm:"not null"`
	CurrentInnings int             `json:"current_innings" gorm:"default:1"`
	Status         scoring.Status  `json:"status" gorm:"default:pending;index"`
	Result         scoring.Result  `json:"result,omitempty"`
	FirstInnings   *InningsDoc     `json:"first_innings" gorm:"type:jsonb"`
	SecondInnings  *InningsDoc     `json:"second_innings,omitempty" gorm:"type:jsonb"`
}

// ToScoring rebuilds the in-memory aggregate from the row. Rosters are not
// stored on the match (they live on the team records), so the caller passes
// them in.
func (m *Match) ToScoring(rosterA, rosterB []scoring.PlayerID) *scoring.Match {
	sm := &scoring.Match{
		TeamAID:      m.TeamAID,
		TeamBID:      m.TeamBID,
		RosterA:      rosterA,
		RosterB:      rosterB,
		TotalOvers:   m.TotalOvers,
		BattingFirst: m.BattingFirst,
		Current:      m.CurrentInnings,
		Status:       m.Status,
		Result:       m.Result,
	}
	if m.FirstInnings != nil {
		inn := m.FirstInnings.Innings
		sm.First = &inn
	}
	if m.SecondInnings != nil {
		inn := m.SecondInnings.Innings
		sm.Second = &inn
	}
	return sm
}

// ApplyScoring copies the aggregate's state back onto the row before save.
func (m *Match) ApplyScoring(sm *scoring.Match) {
	m.TeamAID = sm.TeamAID
	m.TeamBID = sm.TeamBID
	m.TotalOvers = sm.TotalOvers
	m.BattingFirst = sm.BattingFirst
	m.CurrentInnings = sm.Current
	m.Status = sm.Status
	m.Result = sm.Result
	if sm.First != nil {
		m.FirstInnings = &InningsDoc{Innings: *sm.First}
	}
	if sm.Second != nil {
		m.SecondInnings = &InningsDoc{Innings: *sm.Second}
	}
}
