package models

// ScoreRecord holds a user's best score for one calendar day.
// At most one row exists per (user_id, day); the unique index backs the
// conditional upsert in the score service.
type ScoreRecord struct {
	ID            string `gorm:"primaryKey" json:"id"`
	UserID        string `gorm:"uniqueIndex:idx_scores_user_day;not null" json:"user_id"`
	DisplayName   string `json:"display_name"`
	Score         int    `json:"score"`
	Day           string `gorm:"uniqueIndex:idx_scores_user_day;index;not null" json:"day"` // YYYY-MM-DD, server UTC
	SubmittedAtMs int64  `json:"submitted_at_ms"`
}

// TableName keeps the original table name.
func (ScoreRecord) TableName() string {
	return "scores"
}

// LeaderboardEntry is one row of the public leaderboard response.
type LeaderboardEntry struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}
