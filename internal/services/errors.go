package services

import "errors"

// Sentinel errors the handlers map to HTTP statuses.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidID      = errors.New("invalid id")
	ErrCampaignPaused = errors.New("campaign is paused")
	ErrInvalidAmount  = errors.New("invalid donation amount")
)
