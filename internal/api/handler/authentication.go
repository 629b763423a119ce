package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-mirror-api/pkg/apiErrors"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LinkTokenRequest struct {
	AccessToken string `json:"access_token"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginUser(r.Context(), req.Email, req.Password)
		if err != nil {
			// mesma resposta para usuário inexistente, desativado ou senha errada
			if authenticating.IsCredentialsError(err) {
				logrus.WithFields(logrus.Fields{
					"email": req.Email,
					"error": err.Error(),
				}).Warn("auth: login recusado")
				apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Email ou senha inválidos", nil)
				return
			}
			handleServiceError(w, r, err, "Erro interno ao realizar login")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"token": token,
		})
	}
}

// LinkUpstreamToken troca o token curto da plataforma por um de longa duração
// e o vincula ao usuário logado
func LinkUpstreamToken(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		var req LinkTokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.LinkUpstreamToken(r.Context(), userClaims.UserID, req.AccessToken); err != nil {
			handleServiceError(w, r, err, "Erro ao vincular conta de anúncios")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func UnlinkUpstreamToken(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		if err := service.UnlinkUpstreamToken(r.Context(), userClaims.UserID); err != nil {
			handleServiceError(w, r, err, "Erro ao desvincular conta de anúncios")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
