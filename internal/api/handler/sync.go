package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-mirror-api/pkg/apiErrors"
	"github.com/vfg2006/ads-mirror-api/pkg/log"
)

type SyncRequest struct {
	IDs       []string `json:"ids"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
}

type syncFunc func(ctx context.Context, userID int, ids []string, filters *domain.InsightFilters) (*domain.SyncResult, error)

// decodeSyncRequest aceita corpo vazio; as datas seguem o formato YYYY-MM-DD
func decodeSyncRequest(w http.ResponseWriter, r *http.Request) (*SyncRequest, *domain.InsightFilters, bool) {
	req := &SyncRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil && !errors.Is(err, io.EOF) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return nil, nil, false
	}

	filters, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return nil, nil, false
	}

	return req, filters, true
}

func FullSync(service syncing.Syncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		_, filters, ok := decodeSyncRequest(w, r)
		if !ok {
			return
		}

		log.ForContext(r.Context()).WithField("user_id", userClaims.UserID).Info("sync: full sync requested")

		result, err := service.FullSync(r.Context(), userClaims.UserID, filters)
		if err != nil {
			handleServiceError(w, r, err, "Erro ao sincronizar contas")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// IncrementalSync atende /v1/sync/campaigns, /adsets e /ads; sync define o nível
func IncrementalSync(level string, sync syncFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		req, filters, ok := decodeSyncRequest(w, r)
		if !ok {
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"user_id": userClaims.UserID,
			"level":   level,
			"ids":     len(req.IDs),
		}).Info("sync: incremental sync requested")

		result, err := sync(r.Context(), userClaims.UserID, req.IDs, filters)
		if err != nil {
			handleServiceError(w, r, err, "Erro ao sincronizar "+level)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func SyncStatus(service syncing.Syncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		syncLog, err := service.SyncStatus(r.Context(), userClaims.UserID)
		if err != nil {
			handleServiceError(w, r, err, "Erro ao consultar status da sincronização")
			return
		}

		writeJSON(w, http.StatusOK, syncLog)
	}
}
