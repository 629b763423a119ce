package meta

import (
	"strings"
	"time"

	metadomain "github.com/vfg2006/ads-mirror-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
	"github.com/vfg2006/ads-mirror-api/pkg/utils"
)

// NormalizeAccountID garante o prefixo act_ usado como chave local
func NormalizeAccountID(id string) string {
	if id == "" || strings.HasPrefix(id, "act_") {
		return id
	}
	return "act_" + id
}

// Orçamentos chegam em centavos como string
func budget(value string) float64 {
	return utils.RoundWithTwoDecimalPlace(utils.ParseFloat(value) / 100)
}

func FactoryAdAccount(remote *metadomain.AdAccount) *domain.AdAccount {
	id := remote.ID
	if id == "" {
		id = remote.AccountID
	}

	return &domain.AdAccount{
		ID:       NormalizeAccountID(id),
		Name:     remote.Name,
		Currency: remote.Currency,
		Status:   domain.MapAccountStatus(remote.AccountStatus),
		Timezone: remote.TimezoneName,
	}
}

func FactoryInsight(accountID string, remote *metadomain.Insight) *domain.Insight {
	return &domain.Insight{
		AccountID:      NormalizeAccountID(accountID),
		InsightMetrics: factoryMetrics(remote, ""),
		DateStart:      remote.DateStart,
		DateStop:       remote.DateStop,
	}
}

func factoryMetrics(remote *metadomain.Insight, objective string) domain.InsightMetrics {
	if remote == nil {
		return domain.InsightMetrics{}
	}

	return domain.InsightMetrics{
		Impressions:   utils.ParseInt(remote.Impressions),
		Reach:         utils.ParseInt(remote.Reach),
		Spend:         utils.RoundWithTwoDecimalPlace(utils.ParseFloat(remote.Spend)),
		Clicks:        utils.ParseInt(remote.Clicks),
		Results:       remote.GetResult(objective),
		CostPerResult: remote.GetCostPerResult(objective),
	}
}

func FactoryCampaign(remote *metadomain.Campaign) *domain.Campaign {
	return &domain.Campaign{
		ID:              remote.ID,
		AccountID:       NormalizeAccountID(remote.AccountID),
		Name:            remote.Name,
		Status:          remote.Status,
		EffectiveStatus: remote.EffectiveStatus,
		Objective:       remote.Objective,
		DailyBudget:     budget(remote.DailyBudget),
		LifetimeBudget:  budget(remote.LifetimeBudget),
		RemainingBudget: budget(remote.BudgetRemaining),
		StartTime:       utils.ParseMetaTime(remote.StartTime),
		StopTime:        utils.ParseMetaTime(remote.StopTime),
		InsightMetrics:  factoryMetrics(remote.Insights.First(), remote.Objective),
		UpdatedAt:       time.Now().UTC(),
	}
}

func FactoryAdSet(remote *metadomain.AdSet) *domain.AdSet {
	objective := ""
	if remote.Campaign != nil {
		objective = remote.Campaign.Objective
	}

	return &domain.AdSet{
		ID:               remote.ID,
		CampaignID:       remote.CampaignID,
		AccountID:        NormalizeAccountID(remote.AccountID),
		Name:             remote.Name,
		Status:           remote.Status,
		EffectiveStatus:  remote.EffectiveStatus,
		DailyBudget:      budget(remote.DailyBudget),
		LifetimeBudget:   budget(remote.LifetimeBudget),
		BidAmount:        utils.RoundWithTwoDecimalPlace(float64(remote.BidAmount) / 100),
		OptimizationGoal: remote.OptimizationGoal,
		BillingEvent:     remote.BillingEvent,
		InsightMetrics:   factoryMetrics(remote.Insights.First(), objective),
		UpdatedAt:        time.Now().UTC(),
	}
}

func FactoryAd(remote *metadomain.Ad) *domain.Ad {
	objective := ""
	if remote.Campaign != nil {
		objective = remote.Campaign.Objective
	}

	ad := &domain.Ad{
		ID:              remote.ID,
		AdSetID:         remote.AdSetID,
		CampaignID:      remote.CampaignID,
		AccountID:       NormalizeAccountID(remote.AccountID),
		Name:            remote.Name,
		Status:          remote.Status,
		EffectiveStatus: remote.EffectiveStatus,
		UpdatedAt:       time.Now().UTC(),
	}

	if remote.Creative != nil {
		ad.ThumbnailURL = remote.Creative.ThumbnailURL
	}

	insight := remote.Insights.First()
	ad.InsightMetrics = factoryMetrics(insight, objective)

	if insight != nil {
		ad.VideoP25Views = int64(metadomain.SumActions(insight.VideoP25WatchedActions))
		ad.VideoP50Views = int64(metadomain.SumActions(insight.VideoP50WatchedActions))
		ad.VideoP75Views = int64(metadomain.SumActions(insight.VideoP75WatchedActions))
		ad.VideoP100Views = int64(metadomain.SumActions(insight.VideoP100WatchedActions))
		ad.PostEngagements = int64(metadomain.ActionValue(insight.Actions, metadomain.ActionPostEngagement))
		ad.MessagingContacts = int64(metadomain.ActionValue(insight.Actions, metadomain.ActionMessagingContact))
		ad.CostPerMessagingContact = utils.RoundWithTwoDecimalPlace(metadomain.ActionValue(insight.CostPerActions, metadomain.ActionMessagingContact))
	}

	return ad
}
