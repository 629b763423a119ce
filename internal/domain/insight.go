package domain

import (
	"fmt"
	"time"
)

// InsightFilters é o intervalo de datas opcional das sincronizações.
// Sem datas vale o período total.
type InsightFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// IsAllTime indica que nenhum intervalo foi informado
func (f *InsightFilters) IsAllTime() bool {
	return f == nil || f.StartDate == nil || f.EndDate == nil
}

// CacheKey normaliza o intervalo para uso em chaves de cache
func (f *InsightFilters) CacheKey() string {
	if f.IsAllTime() {
		return "all"
	}
	return fmt.Sprintf("%s_%s", f.StartDate.Format(time.DateOnly), f.EndDate.Format(time.DateOnly))
}

func (f *InsightFilters) Validate() error {
	if f == nil {
		return nil
	}
	if (f.StartDate == nil) != (f.EndDate == nil) {
		return fmt.Errorf("start_date e end_date devem ser informados juntos")
	}
	if f.StartDate != nil && f.EndDate.Before(*f.StartDate) {
		return fmt.Errorf("end_date anterior a start_date")
	}
	return nil
}

type Insight struct {
	AccountID string `json:"account_id"`
	InsightMetrics
	DateStart string `json:"date_start"`
	DateStop  string `json:"date_stop"`
}

type AdCounts struct {
	Total  int `json:"total"`
	Active int `json:"active"`
	Paused int `json:"paused"`
}

// InsightCacheKey monta a chave do cache de insights
func InsightCacheKey(userID int, accountID string, filters *InsightFilters) string {
	return fmt.Sprintf("%d|%s|%s", userID, accountID, filters.CacheKey())
}
