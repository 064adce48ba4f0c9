package entity

type VolunteerStatus string

const (
	VolunteerActive   VolunteerStatus = "ACTIVE"
	VolunteerInactive VolunteerStatus = "INACTIVE"
	VolunteerPending  VolunteerStatus = "PENDING"
)

type Volunteer struct {
	ID           int             `gorm:"primaryKey"`
	Name         string          `gorm:"not null"`
	Email        string          `gorm:"not null;uniqueIndex"`
	Phone        string          `gorm:"not null"`
	Status       VolunteerStatus `gorm:"not null;default:PENDING"`
	Skills       *string
	Availability *string
	Bio          *string
	Preferences  *string
	CreatedAt    int64 `gorm:"not null;autoCreateTime:milli"`
	UpdatedAt    int64 `gorm:"not null;autoUpdateTime:milli"`

	// Relations
	Assignments []Assignment `gorm:"foreignKey:VolunteerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
