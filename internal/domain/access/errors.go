package access

import "errors"

var (
	ErrForbidden          = errors.New("forbidden")
	ErrMembershipNotFound = errors.New("membership not found")
	ErrPlotNotFound       = errors.New("plot not found")
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrRainfallNotFound   = errors.New("rainfall record not found")
	ErrHarvestNotFound    = errors.New("harvest record not found")
)
