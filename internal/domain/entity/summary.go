package entity

import (
	"time"
)

// SummaryRecord captures one summarization request and its result.
type SummaryRecord struct {
	UserID            string    // Facebook id of the requesting user.
	OriginalContent   string    // Text submitted for summarization.
	SummarizedContent string    // Caption produced by the language model.
	OriginalChars     int       // Character count of the original text.
	SummarizedChars   int       // Character count of the produced caption.
	Timestamp         time.Time // When the summarization completed.
}
