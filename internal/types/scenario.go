package types

// Scenario rows are reference data owned by scenario management; this service
// only ever reads them.
type Scenario struct {
	ScenarioID uint   `gorm:"primaryKey;autoIncrement;column:scenario_id" json:"scenario_id"`
	Title      string `gorm:"not null;index;column:title" json:"title"`
	SceneCnt   int    `gorm:"not null;column:scene_cnt" json:"scene_cnt"`
}

func (Scenario) TableName() string {
	return "scenario"
}
