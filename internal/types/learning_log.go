package types

import (
	"time"
)

// LearningLog identifies one learning session: one attempt by a profile at one
// scenario. Immutable once created.
type LearningLog struct {
	LearningLogID uint      `gorm:"primaryKey;autoIncrement;column:learning_log_id" json:"learning_log_id"`
	ScenarioID    uint      `gorm:"not null;index;column:scenario_id" json:"scenario_id"`
	Scenario      *Scenario `gorm:"foreignKey:ScenarioID;references:ScenarioID" json:"-"`
	UserID        string    `gorm:"not null;index:idx_logs_user_profile;column:user_id" json:"user_id"`
	ProfileName   string    `gorm:"not null;index:idx_logs_user_profile;column:profile_name" json:"profile_name"`
	Time          time.Time `gorm:"not null;column:time" json:"time"`
}

func (LearningLog) TableName() string {
	return "learning_logs"
}

// LearningLogSummary is the per-session rollup returned by the session listing;
// it is computed by a join, not stored.
type LearningLogSummary struct {
	LearningLogID      uint   `json:"learning_log_id"`
	ScenarioTitle      string `json:"scenario_title"`
	ScenarioPages      int    `json:"scenario_pages"`
	NumOfAnswerRecords int    `json:"num_of_answer_records"`
	LearningTime       string `json:"learning_time"`
}
