package records

import (
	"time"

	"github.com/google/uuid"
)

// Owner is a pet owner registered with one clinic.
type Owner struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	PublicID  uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"id"`
	ClinicID  int64     `gorm:"index" json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Telephone string    `json:"telephone"`
	CreatedAt time.Time `json:"created_at"`
}

// Pet is an animal treated at one clinic.
type Pet struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	PublicID  uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"id"`
	ClinicID  int64     `gorm:"index" json:"-"`
	OwnerID   uint      `json:"-"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	BirthDate time.Time `json:"birth_date"`
	CreatedAt time.Time `json:"created_at"`
}

// Visit is a single consultation of a pet.
type Visit struct {
	ID          uint      `gorm:"primarykey" json:"-"`
	PublicID    uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"id"`
	ClinicID    int64     `gorm:"index" json:"-"`
	PetID       uint      `json:"-"`
	VisitDate   time.Time `json:"visit_date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
