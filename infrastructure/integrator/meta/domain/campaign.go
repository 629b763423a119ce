package metadomain

type Campaign struct {
	ID              string       `json:"id"`
	AccountID       string       `json:"account_id"`
	Name            string       `json:"name"`
	Status          string       `json:"status"`
	EffectiveStatus string       `json:"effective_status"`
	Objective       string       `json:"objective"`
	DailyBudget     string       `json:"daily_budget"`
	LifetimeBudget  string       `json:"lifetime_budget"`
	BudgetRemaining string       `json:"budget_remaining"`
	StartTime       string       `json:"start_time"`
	StopTime        string       `json:"stop_time"`
	Insights        *InsightEdge `json:"insights"`
}

type AdSet struct {
	ID               string       `json:"id"`
	CampaignID       string       `json:"campaign_id"`
	AccountID        string       `json:"account_id"`
	Name             string       `json:"name"`
	Status           string       `json:"status"`
	EffectiveStatus  string       `json:"effective_status"`
	DailyBudget      string       `json:"daily_budget"`
	LifetimeBudget   string       `json:"lifetime_budget"`
	BidAmount        int64        `json:"bid_amount"`
	OptimizationGoal string       `json:"optimization_goal"`
	BillingEvent     string       `json:"billing_event"`
	Campaign         *ParentRef   `json:"campaign"`
	Insights         *InsightEdge `json:"insights"`
}

type Ad struct {
	ID              string       `json:"id"`
	AdSetID         string       `json:"adset_id"`
	CampaignID      string       `json:"campaign_id"`
	AccountID       string       `json:"account_id"`
	Name            string       `json:"name"`
	Status          string       `json:"status"`
	EffectiveStatus string       `json:"effective_status"`
	Creative        *Creative    `json:"creative"`
	Campaign        *ParentRef   `json:"campaign"`
	Insights        *InsightEdge `json:"insights"`
}

type Creative struct {
	ID           string `json:"id"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// ParentRef traz o objetivo da campanha junto do filho
type ParentRef struct {
	ID        string `json:"id"`
	Objective string `json:"objective"`
}

type Page struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next"`
}

// ListResponse é o envelope paginado do Graph API
type ListResponse[T any] struct {
	Data   []T    `json:"data"`
	Paging Paging `json:"paging"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}
