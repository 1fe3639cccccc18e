package types

type Profile struct {
	UserID      string `gorm:"primaryKey;column:user_id" json:"user_id"`
	User        *User  `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:UserID" json:"-"`
	ProfileName string `gorm:"primaryKey;column:profile_name" json:"profile_name"`
	IconURL     string `gorm:"column:icon_url" json:"icon_url"`
}

func (Profile) TableName() string {
	return "profiles"
}
