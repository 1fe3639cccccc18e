package types

import (
	"time"
)

// Statics is the numeric rollup written alongside a learning report: two
// counters keyed by learning log, upserted so regeneration replaces them.
type Statics struct {
	ID                 uint         `gorm:"primaryKey;autoIncrement;column:id" json:"-"`
	LearningLogID      uint         `gorm:"uniqueIndex;not null;column:learning_log_id" json:"learning_log_id"`
	LearningLog        *LearningLog `gorm:"constraint:OnDelete:CASCADE;foreignKey:LearningLogID;references:LearningLogID" json:"-"`
	CorrectResponseCnt int          `gorm:"not null;default:0;column:correct_response_cnt" json:"correct_response_cnt"`
	TimeoutResponseCnt int          `gorm:"not null;default:0;column:timeout_response_cnt" json:"timeout_response_cnt"`
	UpdatedAt          time.Time    `gorm:"not null;autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (Statics) TableName() string {
	return "statics"
}
