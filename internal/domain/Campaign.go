package domain

import "time"

const (
	StatusActive   = "ACTIVE"
	StatusPaused   = "PAUSED"
	StatusDeleted  = "DELETED"
	StatusArchived = "ARCHIVED"
)

// InsightMetrics são as métricas do último período solicitado
type InsightMetrics struct {
	Impressions   int64   `json:"impressions"`
	Reach         int64   `json:"reach"`
	Spend         float64 `json:"spend"`
	Clicks        int64   `json:"clicks"`
	Results       int64   `json:"results"`
	CostPerResult float64 `json:"cost_per_result"`
}

type Campaign struct {
	ID              string     `json:"id"`
	AccountID       string     `json:"account_id"`
	Name            string     `json:"name"`
	Status          string     `json:"status"`
	EffectiveStatus string     `json:"effective_status"`
	Objective       string     `json:"objective"`
	DailyBudget     float64    `json:"daily_budget"`
	LifetimeBudget  float64    `json:"lifetime_budget"`
	RemainingBudget float64    `json:"remaining_budget"`
	StartTime       *time.Time `json:"start_time"`
	StopTime        *time.Time `json:"stop_time"`
	InsightMetrics
	UpdatedAt time.Time `json:"updated_at"`
}

// Budget retorna o orçamento diário, ou o vitalício quando não há diário
func (c *Campaign) Budget() float64 {
	if c.DailyBudget > 0 {
		return c.DailyBudget
	}
	return c.LifetimeBudget
}

type AdSet struct {
	ID               string  `json:"id"`
	CampaignID       string  `json:"campaign_id"`
	AccountID        string  `json:"account_id"`
	Name             string  `json:"name"`
	Status           string  `json:"status"`
	EffectiveStatus  string  `json:"effective_status"`
	DailyBudget      float64 `json:"daily_budget"`
	LifetimeBudget   float64 `json:"lifetime_budget"`
	BidAmount        float64 `json:"bid_amount"`
	OptimizationGoal string  `json:"optimization_goal"`
	BillingEvent     string  `json:"billing_event"`
	InsightMetrics
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *AdSet) Budget() float64 {
	if a.DailyBudget > 0 {
		return a.DailyBudget
	}
	return a.LifetimeBudget
}

type Ad struct {
	ID                      string  `json:"id"`
	AdSetID                 string  `json:"adset_id"`
	CampaignID              string  `json:"campaign_id"`
	AccountID               string  `json:"account_id"`
	Name                    string  `json:"name"`
	Status                  string  `json:"status"`
	EffectiveStatus         string  `json:"effective_status"`
	ThumbnailURL            string  `json:"thumbnail_url"`
	VideoP25Views           int64   `json:"video_p25_views"`
	VideoP50Views           int64   `json:"video_p50_views"`
	VideoP75Views           int64   `json:"video_p75_views"`
	VideoP100Views          int64   `json:"video_p100_views"`
	PostEngagements         int64   `json:"post_engagements"`
	MessagingContacts       int64   `json:"messaging_contacts"`
	CostPerMessagingContact float64 `json:"cost_per_messaging_contact"`
	InsightMetrics
	UpdatedAt time.Time `json:"updated_at"`
}

// Listing é o resultado de uma listagem remota. Complete só é verdadeiro quando
// todas as páginas foram lidas; sem isso a reconciliação não pode apagar nada.
type Listing[T any] struct {
	Items    []T
	Complete bool
}
