package entity

// Assignment links one volunteer to one event with a role label.
// The (event, volunteer) pair is unique; the parent rows cascade
// their assignments on delete.
type Assignment struct {
	ID          int    `gorm:"primaryKey"`
	EventID     int    `gorm:"not null;uniqueIndex:idx_event_volunteer"` // References: events(id)
	VolunteerID int    `gorm:"not null;uniqueIndex:idx_event_volunteer"` // References: volunteers(id)
	Role        string `gorm:"not null"`

	// Relations
	Event     Event     `gorm:"foreignKey:EventID;references:ID"`
	Volunteer Volunteer `gorm:"foreignKey:VolunteerID;references:ID"`
}
