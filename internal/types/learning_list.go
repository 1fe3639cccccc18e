package types

type LearningListEntry struct {
	UserID      string    `gorm:"primaryKey;column:user_id" json:"user_id"`
	ProfileName string    `gorm:"primaryKey;column:profile_name" json:"profile_name"`
	ScenarioID  uint      `gorm:"primaryKey;column:scenario_id" json:"scenario_id"`
	Scenario    *Scenario `gorm:"foreignKey:ScenarioID;references:ScenarioID" json:"-"`
}

func (LearningListEntry) TableName() string {
	return "learning_list"
}
