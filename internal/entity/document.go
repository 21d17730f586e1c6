package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/constants"
)

// Document represents an uploaded statement file for data transfer between layers.
type Document struct {
	ID          uuid.UUID           `json:"id"`
	CaseID      string              `json:"case_id"`
	FileName    string              `json:"file_name"`
	FilePath    string              `json:"file_path"`
	Format      constants.Format    `json:"format,omitempty"`
	OCRStatus   constants.OCRStatus `json:"ocr_status"`
	OCRProgress int                 `json:"ocr_progress"`
	OCRError    *string             `json:"ocr_error,omitempty"`
	TextPath    *string             `json:"text_path,omitempty"`
	UploadedAt  time.Time           `json:"uploaded_at"`
	ProcessedAt *time.Time          `json:"processed_at,omitempty"`
}
