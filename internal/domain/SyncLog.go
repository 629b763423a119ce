package domain

import "time"

type SyncType string

const (
	SyncTypeFull        SyncType = "FULL"
	SyncTypeIncremental SyncType = "INCREMENTAL"
)

type SyncStatus string

const (
	SyncStatusInProgress SyncStatus = "IN_PROGRESS"
	SyncStatusSuccess    SyncStatus = "SUCCESS"
	SyncStatusFailed     SyncStatus = "FAILED"
)

// SyncLog é a trilha de auditoria de cada sincronização. Depois de concluído
// o registro não é mais alterado.
type SyncLog struct {
	ID            string     `json:"id"`
	UserID        int        `json:"user_id"`
	Type          SyncType   `json:"type"`
	Status        SyncStatus `json:"status"`
	AccountsCount int        `json:"accounts_count"`
	AdsCount      int        `json:"ads_count"`
	Error         string     `json:"error,omitempty"`
	StartedAt     time.Time  `json:"started_at"`
	CompletedAt   *time.Time `json:"completed_at"`
}

type SyncResult struct {
	Log            *SyncLog `json:"sync_log"`
	Accounts       int      `json:"accounts"`
	Campaigns      int      `json:"campaigns"`
	AdSets         int      `json:"adsets"`
	Ads            int      `json:"ads"`
	Deleted        int      `json:"deleted"`
	FailedAccounts []string `json:"failed_accounts,omitempty"`
}

// CachedRead é a resposta das leituras do espelho local
type CachedRead struct {
	Data           any        `json:"data"`
	Cached         bool       `json:"cached"`
	LastSyncedAt   *time.Time `json:"last_synced_at"`
	LastSyncStatus SyncStatus `json:"last_sync_status,omitempty"`
}
