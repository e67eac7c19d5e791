package records

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clinickit/clinickit/pkg/tenantdb"
)

// ErrNotFound is returned when a record does not exist within the
// caller's clinic. A record existing in another clinic is
// indistinguishable from one that does not exist at all.
var ErrNotFound = errors.New("records: not found")

// Store persists clinic records. It holds only a tenant-scoped database
// capability, so every operation below is filtered to the caller's
// clinic without any per-call site effort; there is no way to reach the
// tables unscoped from here.
type Store struct {
	db *tenantdb.DB
}

// NewStore creates a record store over the tenant-scoped database.
func NewStore(db *tenantdb.DB) *Store {
	return &Store{db: db}
}

// ListPets returns the clinic's pets, newest first.
func (s *Store) ListPets(ctx context.Context) ([]Pet, error) {
	var pets []Pet
	err := s.db.Transaction(ctx, func(tx *gorm.DB) error {
		return tx.Order("created_at DESC, id DESC").Find(&pets).Error
	})
	return pets, err
}

// GetPet returns one pet by its public id.
func (s *Store) GetPet(ctx context.Context, publicID uuid.UUID) (Pet, error) {
	var p Pet
	err := s.db.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("public_id = ?", publicID).First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return nil
	})
	return p, err
}

// CreatePet registers a pet with the caller's clinic. The clinic id is
// stamped by the persistence layer; callers cannot choose it.
func (s *Store) CreatePet(ctx context.Context, p Pet) (Pet, error) {
	p.PublicID = uuid.New()
	err := s.db.Transaction(ctx, func(tx *gorm.DB) error {
		return tx.Create(&p).Error
	})
	return p, err
}

// DeletePet removes a pet and its visits in one unit of work.
func (s *Store) DeletePet(ctx context.Context, publicID uuid.UUID) error {
	return s.db.Transaction(ctx, func(tx *gorm.DB) error {
		var p Pet
		if err := tx.Where("public_id = ?", publicID).First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Where("pet_id = ?", p.ID).Delete(&Visit{}).Error; err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})
}

// ListVisits returns a pet's visits, most recent first.
func (s *Store) ListVisits(ctx context.Context, petPublicID uuid.UUID) ([]Visit, error) {
	var visits []Visit
	err := s.db.Transaction(ctx, func(tx *gorm.DB) error {
		var p Pet
		if err := tx.Where("public_id = ?", petPublicID).First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return tx.Where("pet_id = ?", p.ID).Order("visit_date DESC").Find(&visits).Error
	})
	return visits, err
}

// AddVisit records a visit for a pet of the caller's clinic.
func (s *Store) AddVisit(ctx context.Context, petPublicID uuid.UUID, v Visit) (Visit, error) {
	err := s.db.Transaction(ctx, func(tx *gorm.DB) error {
		var p Pet
		if err := tx.Where("public_id = ?", petPublicID).First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		v.PetID = p.ID
		v.PublicID = uuid.New()
		if v.VisitDate.IsZero() {
			v.VisitDate = time.Now()
		}
		return tx.Create(&v).Error
	})
	return v, err
}
