package domain

import (
	"time"
)

type AdAccountStatus string

const (
	AdAccountStatusActive    AdAccountStatus = "ACTIVE"
	AdAccountStatusDisabled  AdAccountStatus = "DISABLED"
	AdAccountStatusUnsettled AdAccountStatus = "UNSETTLED"
	AdAccountStatusClosed    AdAccountStatus = "CLOSED"
	AdAccountStatusUnknown   AdAccountStatus = "UNKNOWN"
)

// AdAccount é o espelho local de uma conta de anúncios. Nunca é removida
// enquanto o usuário dono existir.
type AdAccount struct {
	ID           string          `json:"id"`
	UserID       int             `json:"user_id"`
	Name         string          `json:"name"`
	Currency     string          `json:"currency"`
	Status       AdAccountStatus `json:"status"`
	Timezone     string          `json:"timezone"`
	TotalAds     int             `json:"total_ads"`
	ActiveAds    int             `json:"active_ads"`
	PausedAds    int             `json:"paused_ads"`
	Spend        float64         `json:"spend"`
	Impressions  int64           `json:"impressions"`
	Reach        int64           `json:"reach"`
	Clicks       int64           `json:"clicks"`
	LastSyncedAt *time.Time      `json:"last_synced_at"`
}

// ApplyInsight copia os agregados do insight para a conta
func (a *AdAccount) ApplyInsight(insight *Insight) {
	if insight == nil {
		a.Spend, a.Impressions, a.Reach, a.Clicks = 0, 0, 0, 0
		return
	}

	a.Spend = insight.Spend
	a.Impressions = insight.Impressions
	a.Reach = insight.Reach
	a.Clicks = insight.Clicks
}

func (a *AdAccount) ApplyCounts(counts *AdCounts) {
	if counts == nil {
		a.TotalAds, a.ActiveAds, a.PausedAds = 0, 0, 0
		return
	}

	a.TotalAds = counts.Total
	a.ActiveAds = counts.Active
	a.PausedAds = counts.Paused
}

// MapAccountStatus converte o account_status numérico do Meta
func MapAccountStatus(code int) AdAccountStatus {
	switch code {
	case 1:
		return AdAccountStatusActive
	case 2:
		return AdAccountStatusDisabled
	case 3:
		return AdAccountStatusUnsettled
	case 101:
		return AdAccountStatusClosed
	default:
		return AdAccountStatusUnknown
	}
}
