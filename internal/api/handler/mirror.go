package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/mirroring"
	"github.com/vfg2006/ads-mirror-api/pkg/apiErrors"
	"github.com/vfg2006/ads-mirror-api/pkg/log"
)

type readFunc func(ctx context.Context, userID int, id string) (*domain.CachedRead, error)

func ListAccounts(service mirroring.Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		read, err := service.ListAccounts(r.Context(), userClaims.UserID)
		if err != nil {
			handleServiceError(w, r, err, "Erro ao listar contas de anúncio")
			return
		}

		writeJSON(w, http.StatusOK, read)
	}
}

// ListChildren serve as leituras hierárquicas: campanhas da conta, conjuntos
// da campanha e anúncios do conjunto
func ListChildren(entity string, read readFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID não fornecido", nil)
			return
		}

		result, err := read(r.Context(), userClaims.UserID, id)
		if err != nil {
			handleServiceError(w, r, err, "Erro ao listar "+entity)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func GetAccountInsights(service mirroring.Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		query := r.URL.Query()

		filters, err := parseDateRange(query.Get("start_date"), query.Get("end_date"))
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Warn("insights: invalid date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		read, err := service.GetInsights(r.Context(), userClaims.UserID, accountID, filters)
		if err != nil {
			handleServiceError(w, r, err, "Erro ao consultar insights")
			return
		}

		writeJSON(w, http.StatusOK, read)
	}
}

// GetAdThumbnail devolve os bytes da miniatura com o content type original
func GetAdThumbnail(service mirroring.Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		adID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		asset, err := service.GetThumbnail(r.Context(), userClaims.UserID, adID)
		if err != nil {
			handleServiceError(w, r, err, "Erro ao obter miniatura")
			return
		}

		contentType := asset.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Length", strconv.Itoa(len(asset.Data)))
		w.Header().Set("X-Cache", cacheHeader(asset.Cached))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(asset.Data)
	}
}

func cacheHeader(cached bool) string {
	if cached {
		return "HIT"
	}
	return "MISS"
}
