package metadomain

// AdAccount é a conta como retornada por /me/adaccounts
type AdAccount struct {
	ID            string `json:"id"`
	AccountID     string `json:"account_id"`
	Name          string `json:"name"`
	Currency      string `json:"currency"`
	AccountStatus int    `json:"account_status"`
	TimezoneName  string `json:"timezone_name"`
}

// AdStatus é o recorte mínimo usado na contagem de anúncios
type AdStatus struct {
	ID              string `json:"id"`
	EffectiveStatus string `json:"effective_status"`
}
