package metadomain

import (
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-mirror-api/pkg/utils"
)

// Mapeamento de "objective" -> "cost_per_action_type"
var MetaObjectiveToActionType = map[string]string{
	"LINK_CLICKS":           "link_click",
	"POST_ENGAGEMENT":       "post_engagement",
	"PAGE_LIKES":            "like",
	"VIDEO_VIEWS":           "video_view",
	"LEAD_GENERATION":       "lead",
	"CONVERSIONS":           "offsite_conversion",
	"APP_INSTALLS":          "app_install",
	"PRODUCT_CATALOG_SALES": "offsite_conversion.fb_pixel_purchase",
	"MESSAGES":              "onsite_conversion.messaging_first_reply",
	"BRAND_AWARENESS":       "brand_awareness",
	"REACH":                 "reach",
	"STORE_TRAFFIC":         "store_visit",
	"EVENT_RESPONSES":       "rsvp",
	"ADD_TO_CART":           "offsite_conversion.fb_pixel_add_to_cart",
	"PURCHASE":              "offsite_conversion.fb_pixel_purchase",
	"OUTCOME_ENGAGEMENT":    "onsite_conversion.messaging_conversation_started_7d",
	"OUTCOME_TRAFFIC":       "link_click",
	"OUTCOME_LEADS":         "lead",
	"OUTCOME_SALES":         "offsite_conversion.fb_pixel_purchase",
	"OUTCOME_AWARENESS":     "reach",
}

const (
	ActionPostEngagement   = "post_engagement"
	ActionMessagingContact = "onsite_conversion.messaging_conversation_started_7d"
)

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// Insight é uma linha do edge insights
type Insight struct {
	AccountID               string   `json:"account_id"`
	Impressions             string   `json:"impressions"`
	Reach                   string   `json:"reach"`
	Spend                   string   `json:"spend"`
	Clicks                  string   `json:"clicks"`
	Objective               string   `json:"objective"`
	Actions                 []Action `json:"actions"`
	CostPerActions          []Action `json:"cost_per_action_type"`
	VideoP25WatchedActions  []Action `json:"video_p25_watched_actions"`
	VideoP50WatchedActions  []Action `json:"video_p50_watched_actions"`
	VideoP75WatchedActions  []Action `json:"video_p75_watched_actions"`
	VideoP100WatchedActions []Action `json:"video_p100_watched_actions"`
	DateStart               string   `json:"date_start"`
	DateStop                string   `json:"date_stop"`
}

// InsightEdge é o formato do campo insights expandido em campanhas, conjuntos e anúncios
type InsightEdge struct {
	Data []Insight `json:"data"`
}

// First retorna a primeira linha ou nil quando o período não tem dados
func (e *InsightEdge) First() *Insight {
	if e == nil || len(e.Data) == 0 {
		return nil
	}
	return &e.Data[0]
}

// GetResult soma a ação correspondente ao objetivo. objective tem precedência
// sobre o campo do próprio insight.
func (i *Insight) GetResult(objective string) int64 {
	if objective == "" {
		objective = i.Objective
	}

	actionType, ok := MetaObjectiveToActionType[objective]
	if !ok {
		logrus.WithField("objective", objective).Debug("Objective not mapped")
		return 0
	}

	return int64(ActionValue(i.Actions, actionType))
}

func (i *Insight) GetCostPerResult(objective string) float64 {
	if objective == "" {
		objective = i.Objective
	}

	actionType, ok := MetaObjectiveToActionType[objective]
	if !ok {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace(ActionValue(i.CostPerActions, actionType))
}

// ActionValue retorna o valor da ação ou zero quando ausente
func ActionValue(actions []Action, actionType string) float64 {
	for _, action := range actions {
		if action.ActionType != actionType {
			continue
		}

		value, err := strconv.ParseFloat(action.Value, 64)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"action_type":  action.ActionType,
				"action_value": action.Value,
				"error":        err.Error(),
			}).Warn("insights: error converting action value to float")
			return 0
		}

		return value
	}

	return 0
}

// SumActions soma todas as entradas de métricas de vídeo, que chegam sempre como video_view
func SumActions(actions []Action) float64 {
	total := 0.0
	for _, action := range actions {
		value, err := strconv.ParseFloat(action.Value, 64)
		if err != nil {
			continue
		}
		total += value
	}
	return total
}
