package errors

import "fmt"

var (
	ErrEmptyContent       = fmt.Errorf("content is empty")
	ErrInvalidContentType = fmt.Errorf("unknown content type")
	ErrEmptyReason        = fmt.Errorf("report reason is required")
	ErrMissingReporter    = fmt.Errorf("reporter identity is required")
	ErrInvalidAction      = fmt.Errorf("resolution action must be approve or reject")
	ErrReportNotFound     = fmt.Errorf("report not found")
	ErrDocumentNotFound   = fmt.Errorf("document not found")
	ErrAllProvidersDown   = fmt.Errorf("all moderation providers unavailable")
	ErrProviderResponse   = fmt.Errorf("unexpected provider response")
	ErrInvalidToken       = fmt.Errorf("invalid or expired token")
)
