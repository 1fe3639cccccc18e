package types

import (
	"time"
)

// Answer is one answered step within a session. Rows are append-only; the
// auto-assigned hash_num is the monotone sequence used to resolve the latest
// attempt when a scene was retried.
type Answer struct {
	HashNum       uint64       `gorm:"primaryKey;autoIncrement;column:hash_num" json:"-"`
	LearningLogID uint         `gorm:"not null;index;column:learning_log_id" json:"-"`
	LearningLog   *LearningLog `gorm:"constraint:OnDelete:CASCADE;foreignKey:LearningLogID;references:LearningLogID" json:"-"`
	SceneID       string       `gorm:"not null;column:scene_id" json:"scene"`
	Question      string       `gorm:"type:text;column:question" json:"question"`
	Answer        string       `gorm:"type:text;column:answer" json:"answer"`
	Response      string       `gorm:"type:text;column:response" json:"response"`
	Time          time.Time    `gorm:"not null;autoCreateTime;column:time" json:"time"`
}

func (Answer) TableName() string {
	return "answers"
}
