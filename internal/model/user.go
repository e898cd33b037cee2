package model

// User maps to users.
type User struct {
	ID           uint    `gorm:"primaryKey"                                json:"id"`
	Username     string  `gorm:"type:varchar(150);uniqueIndex;not null"    json:"username"`
	Email        string  `gorm:"type:varchar(254);index;not null"          json:"email"`
	PasswordHash string  `gorm:"type:varchar(255);not null"                json:"-"`
	FirstName    string  `gorm:"type:varchar(150);not null"                json:"first_name"`
	LastName     string  `gorm:"type:varchar(150);not null"                json:"last_name"`
	Role         Role    `gorm:"type:varchar(20);not null"                 json:"role"`
	Phone        *string `gorm:"type:varchar(50)"                          json:"phone"`
	Expertise    *string `gorm:"type:text"                                 json:"expertise"`
	Designation  *string `gorm:"type:varchar(255)"                         json:"designation"`
	IsActiveFlag bool    `gorm:"not null"                                  json:"is_active_flag"`
	IsStaff      bool    `gorm:"not null"                                  json:"is_staff"`
	IsSuperuser  bool    `gorm:"not null"                                  json:"is_superuser"`
	Timestamps
}

// TableName table name.
func (User) TableName() string { return "users" }
