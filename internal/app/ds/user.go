package ds

// 5. Таблица пользователей админки
type User struct {
	ID       uint   `gorm:"primaryKey"`
	Login    string `gorm:"type:varchar(50);unique;not null"`
	Password string `gorm:"type:varchar(255);not null"` // bcrypt
	Role     int    `gorm:"type:int;not null"`          // role.Role
	Email    string `gorm:"type:varchar(100)"`
	FullName string `gorm:"type:varchar(100)"`
}
