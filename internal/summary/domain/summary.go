package domain

import "time"

// SummaryRecord stores one AI-generated video summary for a user.
// Records are write-once: there is no update path after creation.
type SummaryRecord struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	OwnerID   string    `json:"owner_id" gorm:"index;not null"`
	SourceURL string    `json:"source_url" gorm:"not null"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	Language  string    `json:"language" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (SummaryRecord) TableName() string {
	return "summaries"
}
