package services

import (
	"errors"
	"fmt"
	"time"

	"score-leaderboard-service/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	MaxScore        = 300
	SubmitCooldown  = 10 * time.Second
	LeaderboardSize = 10
)

var (
	ErrInvalidPayload = errors.New("invalid payload")
	ErrInvalidScore   = errors.New("invalid score")
	ErrTooFast        = errors.New("too fast")
	ErrStorage        = errors.New("db error")
)

type ScoreService struct {
	DB      *gorm.DB
	Clock   Clock
	Limiter *CooldownLimiter
}

func NewScoreService(db *gorm.DB, clock Clock, limiter *CooldownLimiter) *ScoreService {
	return &ScoreService{DB: db, Clock: clock, Limiter: limiter}
}

// Submit validates and records a score, keeping only the best score per user
// per day. A submission that does not beat the stored score still succeeds
// (and still arms the cooldown).
func (s *ScoreService) Submit(userID, displayName string, score int) error {
	if userID == "" {
		return ErrInvalidPayload
	}
	if score < 0 || score > MaxScore {
		return ErrInvalidScore
	}

	now := s.Clock.Now()
	nowMs := now.UnixMilli()

	if !s.Limiter.Reserve(userID, nowMs) {
		return ErrTooFast
	}

	if displayName == "" {
		displayName = "anon"
	}

	rec := models.ScoreRecord{
		ID:            uuid.NewString(),
		UserID:        userID,
		DisplayName:   displayName,
		Score:         score,
		Day:           DayOf(now),
		SubmittedAtMs: nowMs,
	}

	// Single-statement upsert: insert the row, or raise the stored score when
	// beaten. The display name is set on first insert only.
	err := s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "day"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"score":           rec.Score,
			"submitted_at_ms": rec.SubmittedAtMs,
		}),
		Where: clause.Where{Exprs: []clause.Expression{
			gorm.Expr("excluded.score > scores.score"),
		}},
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

// Leaderboard returns up to the top 10 entries for the given day (current UTC
// day when day is empty), best scores first, earlier submissions winning ties.
// A day with no rows yields an empty slice.
func (s *ScoreService) Leaderboard(day string) ([]models.LeaderboardEntry, error) {
	if day == "" {
		day = DayOf(s.Clock.Now())
	}

	entries := make([]models.LeaderboardEntry, 0, LeaderboardSize)
	err := s.DB.Model(&models.ScoreRecord{}).
		Select("display_name AS username, score").
		Where("day = ?", day).
		Order("score DESC, submitted_at_ms ASC").
		Limit(LeaderboardSize).
		Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return entries, nil
}
