package models

type User struct {
	BaseModel
	Username     string `json:"username" gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"type:text;not null"`
}

func (User) TableName() string {
	return "users"
}
