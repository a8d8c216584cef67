package repository

import (
	"time"

	summarydomain "vidsum-backend/internal/summary/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// summaryRepository implements SummaryRepository using GORM
type summaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository creates a new instance of summaryRepository
func NewSummaryRepository(db *gorm.DB) SummaryRepository {
	return &summaryRepository{
		db: db,
	}
}

func (r *summaryRepository) Create(record *summarydomain.SummaryRecord) error {
	record.ID = uuid.New().String()
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	return r.db.Create(record).Error
}

// FindByOwner returns the owner's records ordered by created_at descending.
// id DESC is a deterministic tiebreak for rows sharing a timestamp.
func (r *summaryRepository) FindByOwner(ownerID string) ([]*summarydomain.SummaryRecord, error) {
	var records []*summarydomain.SummaryRecord
	err := r.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *summaryRepository) CountByOwner(ownerID string) (int64, error) {
	var count int64
	err := r.db.Model(&summarydomain.SummaryRecord{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	return count, err
}
