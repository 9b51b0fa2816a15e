package plots

import (
	"regexp"
	"sort"
)

const noPeriod = "00/00"

var campaignPeriod = regexp.MustCompile(`(\d{2}/\d{2})$`)

// CampaignPeriod extracts the trailing "NN/NN" season of a campaign name, or
// "00/00" when there is none.
func CampaignPeriod(name string) string {
	match := campaignPeriod.FindStringSubmatch(name)
	if match == nil {
		return noPeriod
	}
	return match[1]
}

// SortCampaigns orders campaigns by season, newest first. Seasons compare as
// plain strings, so undated campaigns sink to the end. Ties keep their order.
func SortCampaigns(campaigns []Campaign) {
	sort.SliceStable(campaigns, func(i, j int) bool {
		return CampaignPeriod(campaigns[i].Name) > CampaignPeriod(campaigns[j].Name)
	})
}
