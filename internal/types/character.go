package types

// Character holds the per-profile avatar customization sliders. One row per
// (user, profile), replaced wholesale on update.
type Character struct {
	UserID      string  `gorm:"primaryKey;column:user_id" json:"user_id"`
	ProfileName string  `gorm:"primaryKey;column:profile_name" json:"profile_name"`
	Toggle      float64 `gorm:"column:toggle" json:"toggle"`
	Prop        float64 `gorm:"column:prop" json:"prop"`
	EyeShape    float64 `gorm:"column:eye_shape" json:"eyeShape"`
	BodyShape   float64 `gorm:"column:body_shape" json:"bodyShape"`
	BodyColor   float64 `gorm:"column:body_color" json:"bodyColor"`
}

func (Character) TableName() string {
	return "character"
}
