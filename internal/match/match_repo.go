// match/repo.go
package match

import (
	"errors"

	"gorm.io/gorm"
)

type MatchRepository interface {
	CreateMatch(match *Match) error
	GetMatchByID(id uint) (*Match, error)
	GetActiveMatch() (*Match, error)
	UpdateMatch(match *Match) error
	WithTransaction(fn func(repo MatchRepository) error) error
}

type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new instance of MatchRepository.
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) CreateMatch(match *Match) error {
	return r.db.Create(match).Error
}

func (r *matchRepository) GetMatchByID(id uint) (*Match, error) {
	var match Match
	err := r.db.First(&match, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Not found
		}
		return nil, err
	}
	return &match, nil
}

// GetActiveMatch returns the most recently started live match, or nil when
// nothing is in progress.
func (r *matchRepository) GetActiveMatch() (*Match, error) {
	var match Match
	err := r.db.Where("status = ?", "live").Order("updated_at DESC").First(&match).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) UpdateMatch(match *Match) error {
	return r.db.Save(match).Error
}

// WithTransaction runs fn against a repository bound to a single transaction,
// committing on nil and rolling back on error.
func (r *matchRepository) WithTransaction(fn func(repo MatchRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&matchRepository{db: tx})
	})
}
