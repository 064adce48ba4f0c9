package entity

type EventStatus string

const (
	EventUpcoming  EventStatus = "UPCOMING"
	EventOngoing   EventStatus = "ONGOING"
	EventCompleted EventStatus = "COMPLETED"
	EventCancelled EventStatus = "CANCELLED"
)

type Event struct {
	ID          int         `gorm:"primaryKey"`
	Title       string      `gorm:"not null"`
	Description string      `gorm:"not null"`
	Date        int64       `gorm:"not null"`
	Location    string      `gorm:"not null"`
	Capacity    int         `gorm:"not null"`
	Status      EventStatus `gorm:"not null;default:UPCOMING"`
	CreatedAt   int64       `gorm:"not null;autoCreateTime:milli"`
	UpdatedAt   int64       `gorm:"not null;autoUpdateTime:milli"`

	// Relations
	Assignments []Assignment `gorm:"foreignKey:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
