package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/messaging"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/mirroring"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-mirror-api/pkg/apiErrors"
	"github.com/vfg2006/ads-mirror-api/pkg/log"
	"github.com/vfg2006/ads-mirror-api/pkg/middleware"
	"github.com/vfg2006/ads-mirror-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Warn("erro ao escrever resposta")
	}
}

func claimsFromRequest(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}
	return userClaims, true
}

// parseDateRange lê start_date/end_date (YYYY-MM-DD). Sem datas o filtro é nil
// e a consulta cobre todo o período. A coerência do intervalo é validada
// pelos casos de uso.
func parseDateRange(start, end string) (*domain.InsightFilters, error) {
	startDate, err := utils.ParseDate(start)
	if err != nil {
		return nil, errors.Wrap(err, "start_date inválida")
	}

	endDate, err := utils.ParseDate(end)
	if err != nil {
		return nil, errors.Wrap(err, "end_date inválida")
	}

	if startDate == nil && endDate == nil {
		return nil, nil
	}

	return &domain.InsightFilters{StartDate: startDate, EndDate: endDate}, nil
}

// handleServiceError traduz os erros tipados dos casos de uso para a resposta
// padronizada. Erros sem código caem na taxonomia de domínio.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var (
		syncErr   *syncing.SyncError
		mirrorErr *mirroring.MirrorError
		msgErr    *messaging.MessagingError
		authErr   *authenticating.AuthError
	)

	code := ""
	switch {
	case errors.As(err, &syncErr):
		code = syncErr.Code
	case errors.As(err, &mirrorErr):
		code = mirrorErr.Code
	case errors.As(err, &msgErr):
		code = msgErr.Code
	case errors.As(err, &authErr):
		code = authErr.Code
	}
	if code == "" {
		code = apiErrors.CodeForDomainError(err)
	}

	if code == apiErrors.ErrInternalServer || code == apiErrors.ErrDatabaseOperation {
		logger.Error(message)
		apiErrors.WriteError(w, code, message, nil)
		return
	}

	logger.WithField("code", code).Warn(message)
	apiErrors.WriteError(w, code, err.Error(), nil)
}
