package models

// User represents a dashboard account: a system administrator who reviews
// visit requests, or a security officer who runs the gate desk
type User struct {
	BaseModel
	Username string `gorm:"type:varchar(50);unique;not null" json:"username"`
	Password string `gorm:"type:varchar(100);not null" json:"-"` // Password not exposed in JSON
	Name     string `gorm:"type:varchar(100)" json:"name"`
	Email    string `gorm:"type:varchar(100);unique" json:"email"`
	Role     string `gorm:"type:varchar(50);default:'security'" json:"role"` // Role: admin, security
	Status   string `gorm:"type:varchar(20);default:'active'" json:"status"` // Status: active, inactive, locked
}
