package repository

import "time"

// Install is one installed-agent row: a snapshot of the listing at install
// time plus when it was installed. Tags are stored comma-joined.
type Install struct {
	AgentID      string
	Name         string
	Description  string
	Tags         []string
	Category     string
	Rating       float64
	ReviewCount  int
	PricingModel string
	PriceAmount  float64
	PricePeriod  string
	LogoURL      string
	InstalledAt  time.Time
}
