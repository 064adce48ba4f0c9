package entity

// User is a coordinator account used to authenticate against the API.
type User struct {
	ID           int    `gorm:"primaryKey"`
	Username     string `gorm:"not null"`
	Email        string `gorm:"not null;uniqueIndex"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    int64  `gorm:"not null;autoCreateTime:milli"`
	UpdatedAt    int64  `gorm:"not null;autoUpdateTime:milli"`
}
