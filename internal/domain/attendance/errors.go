package attendance

import "errors"

var (
	ErrNoCheckInRecord = errors.New("no check-in record found")
	ErrCheckOutTooSoon = errors.New("check-out attempted within one minute of check-in")
)
