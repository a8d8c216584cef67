package repository

import summarydomain "vidsum-backend/internal/summary/domain"

// SummaryRepository defines the persistence operations for summary records
type SummaryRepository interface {
	// Create inserts a new record, assigning ID and timestamps
	Create(record *summarydomain.SummaryRecord) error
	// FindByOwner returns all records for an owner, newest first
	FindByOwner(ownerID string) ([]*summarydomain.SummaryRecord, error)
	// CountByOwner returns the number of records for an owner
	CountByOwner(ownerID string) (int64, error)
}
