package entity

type QueryStatus string

const (
	QueryPending   QueryStatus = "PENDING"
	QueryResponded QueryStatus = "RESPONDED"
	QueryClosed    QueryStatus = "CLOSED"
)

// Query is a contact-form submission. It is a standalone record with
// no relation to events or volunteers.
type Query struct {
	ID        int         `gorm:"primaryKey"`
	Name      string      `gorm:"not null"`
	Email     string      `gorm:"not null"`
	Subject   string      `gorm:"not null"`
	Message   string      `gorm:"not null"`
	Response  *string
	Status    QueryStatus `gorm:"not null;default:PENDING"`
	CreatedAt int64       `gorm:"not null;autoCreateTime:milli"`
	UpdatedAt int64       `gorm:"not null;autoUpdateTime:milli"`
}
