package domain

import "errors"

var (
	ErrMalformedField     = errors.New("malformed row field")
	ErrSourceUnavailable  = errors.New("order source unavailable")
	ErrRateUnavailable    = errors.New("currency rate unavailable")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrNotificationFailed = errors.New("expiration notification failed")
)
