package metaclient

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-mirror-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-mirror-api/internal/config"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	pageLimit       = "200"
	maxErrorBody    = 2048
	maxAssetBytes   = 10 << 20
	defaultMaxPages = 20
)

// Client fala com o Graph API. O token de acesso é sempre o do usuário dono da
// requisição; nenhuma credencial global é mantida aqui.
type Client interface {
	GetAdAccounts(ctx context.Context, token string) ([]metadomain.AdAccount, bool, error)
	GetAccountInsights(ctx context.Context, token, accountID string, filters *domain.InsightFilters) (*metadomain.Insight, error)
	GetAdStatuses(ctx context.Context, token, accountID string) ([]metadomain.AdStatus, bool, error)
	GetCampaigns(ctx context.Context, token, accountID string, filters *domain.InsightFilters) ([]metadomain.Campaign, bool, error)
	GetAdSetsByCampaign(ctx context.Context, token, campaignID string, filters *domain.InsightFilters) ([]metadomain.AdSet, bool, error)
	GetAdsByAdSet(ctx context.Context, token, adSetID string, filters *domain.InsightFilters) ([]metadomain.Ad, bool, error)
	GetAdsByAccount(ctx context.Context, token, accountID string, filters *domain.InsightFilters) ([]metadomain.Ad, bool, error)
	GetPage(ctx context.Context, token, pageID string) (*metadomain.Page, error)
	GetManagedPages(ctx context.Context, token string) ([]metadomain.Page, bool, error)
	ExchangeToken(ctx context.Context, shortLivedToken string) (*metadomain.TokenResponse, error)
	Download(ctx context.Context, rawURL string) ([]byte, string, error)
}

type MetaClient struct {
	cfg        config.Meta
	httpClient *http.Client
}

func NewClient(cfg config.Meta, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = defaultMaxPages
	}

	return &MetaClient{
		cfg:        cfg,
		httpClient: httpClient,
	}
}

func (c *MetaClient) endpoint(path string) string {
	return strings.TrimRight(c.cfg.URL, "/") + "/" + strings.TrimLeft(path, "/")
}

// get executa a requisição e converte respostas de erro nos erros de domínio
func (c *MetaClient) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(domain.ErrUpstream, "erro ao fazer a requisição: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(domain.ErrUpstream, "erro ao ler resposta: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"path":        req.URL.Path,
		"status":      resp.StatusCode,
		"duration_ms": time.Since(started).Milliseconds(),
	}).Debug("meta: request completed")

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	return nil, classifyError(resp.StatusCode, body)
}

// classifyError mapeia o corpo de erro do Meta para a taxonomia de domínio
func classifyError(status int, body []byte) error {
	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil || errorResp.Error.Code == 0 {
		if status == http.StatusTooManyRequests {
			return errors.Wrapf(domain.ErrUpstreamRateLimited, "status %d", status)
		}
		return errors.Wrapf(domain.ErrUpstream, "status %d: %s", status, truncate(body))
	}

	fields := logrus.Fields{
		"status":     status,
		"code":       errorResp.Error.Code,
		"subcode":    errorResp.Error.ErrorSubcode,
		"type":       errorResp.Error.Type,
		"fbtrace_id": errorResp.Error.FBTraceID,
	}

	switch {
	case errorResp.IsTokenExpired():
		logrus.WithFields(fields).Warn("meta: access token rejected")
		return errors.Wrapf(domain.ErrUnauthorized, "meta error %d: %s", errorResp.Error.Code, errorResp.Error.Message)
	case errorResp.IsRateLimited() || status == http.StatusTooManyRequests:
		logrus.WithFields(fields).Warn("meta: rate limited")
		return errors.Wrapf(domain.ErrUpstreamRateLimited, "meta error %d: %s", errorResp.Error.Code, errorResp.Error.Message)
	default:
		logrus.WithFields(fields).Error("meta: request failed")
		return errors.Wrapf(domain.ErrUpstream, "meta error %d: %s", errorResp.Error.Code, errorResp.Error.Message)
	}
}

func truncate(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody])
	}
	return string(body)
}

// getPaged segue paging.next até o fim ou até o limite de páginas. complete só
// é verdadeiro quando a última página foi lida.
func getPaged[T any](ctx context.Context, c *MetaClient, path string, params url.Values) ([]T, bool, error) {
	if params.Get("limit") == "" {
		params.Set("limit", pageLimit)
	}

	next := c.endpoint(path) + "?" + params.Encode()
	items := make([]T, 0)

	for page := 0; page < c.cfg.MaxPages; page++ {
		body, err := c.get(ctx, next)
		if err != nil {
			return nil, false, err
		}

		var response metadomain.ListResponse[T]
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, false, errors.Wrapf(domain.ErrUpstream, "erro ao decodificar JSON de %s: %v", path, err)
		}

		items = append(items, response.Data...)

		if response.Paging.Next == "" {
			return items, true, nil
		}
		next = response.Paging.Next
	}

	logrus.WithFields(logrus.Fields{
		"path":      path,
		"max_pages": c.cfg.MaxPages,
		"items":     len(items),
	}).Warn("meta: listing truncated at page limit")

	return items, false, nil
}

func tokenParams(token string) url.Values {
	params := url.Values{}
	params.Set("access_token", token)
	return params
}

func accountPath(accountID string) string {
	if strings.HasPrefix(accountID, "act_") {
		return accountID
	}
	return fmt.Sprintf("act_%s", accountID)
}
