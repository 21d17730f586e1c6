package constants

// OCRStatus is the canonical OCR state for rows in documents.
type OCRStatus string

// Stable values (store these exact strings in DB).
const (
	OCRNone     OCRStatus = "none"         // text layer present, no OCR needed
	OCRRequired OCRStatus = "ocr_required" // scanned PDF, OCR not yet started
	OCRRunning  OCRStatus = "ocr_running"  // background job in progress
	OCRDone     OCRStatus = "ocr_done"     // sidecar text written
	OCRFailed   OCRStatus = "ocr_failed"   // terminal per attempt, manually retriable
)

// OCRStatuses holds the allowed values for the ocr_status field.
var OCRStatuses = []string{
	string(OCRNone),
	string(OCRRequired),
	string(OCRRunning),
	string(OCRDone),
	string(OCRFailed),
}

// NoticeStatus is the canonical lifecycle state for rows in notices.
type NoticeStatus string

// Forward-only: GENERATED -> ACCEPTED -> SENT.
const (
	NoticeGenerated NoticeStatus = "GENERATED"
	NoticeAccepted  NoticeStatus = "ACCEPTED"
	NoticeSent      NoticeStatus = "SENT"
)

// NoticeStatuses holds the allowed values for the notice status field.
var NoticeStatuses = []string{
	string(NoticeGenerated),
	string(NoticeAccepted),
	string(NoticeSent),
}

// NoticeRank orders notice statuses for transition checks.
// Unknown statuses rank below GENERATED.
func NoticeRank(s NoticeStatus) int {
	switch s {
	case NoticeGenerated:
		return 1
	case NoticeAccepted:
		return 2
	case NoticeSent:
		return 3
	default:
		return 0
	}
}
