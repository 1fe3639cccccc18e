package types

import (
	"time"

	"gorm.io/datatypes"
)

// LearningReport is the narrative evaluation of one session. At most one row
// per learning log; regeneration replaces it in place. Raw keeps the generator
// response as returned, before field extraction.
type LearningReport struct {
	ID            uint           `gorm:"primaryKey;autoIncrement;column:id" json:"-"`
	LearningLogID uint           `gorm:"uniqueIndex;not null;column:learning_log_id" json:"learning_log_id"`
	LearningLog   *LearningLog   `gorm:"constraint:OnDelete:CASCADE;foreignKey:LearningLogID;references:LearningLogID" json:"-"`
	Completed     string         `gorm:"type:text;column:completed" json:"completed"`
	Agile         string         `gorm:"type:text;column:agile" json:"agile"`
	Accuracy      string         `gorm:"type:text;column:accuracy" json:"accuracy"`
	Context       string         `gorm:"type:text;column:context" json:"context"`
	Pronunciation string         `gorm:"type:text;column:pronunciation" json:"pronunciation"`
	Review        string         `gorm:"type:text;column:review" json:"review"`
	Raw           datatypes.JSON `gorm:"column:raw" json:"-"`
	CreatedAt     time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (LearningReport) TableName() string {
	return "learning_report"
}
