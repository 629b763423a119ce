package metaclient

import (
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
)

// Download baixa um recurso binário (miniaturas do CDN). O content type vem do
// cabeçalho ou é detectado pelo conteúdo.
func (c *MetaClient) Download(ctx context.Context, rawURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", errors.Wrap(err, "erro ao criar a requisição")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", errors.Wrapf(domain.ErrUpstream, "erro ao baixar recurso: %v", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, "", errors.Wrap(domain.ErrNotFound, "recurso não encontrado")
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, "", errors.Wrap(domain.ErrUpstreamRateLimited, "download limitado")
	case resp.StatusCode != http.StatusOK:
		return nil, "", errors.Wrapf(domain.ErrUpstream, "status %d ao baixar recurso", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetBytes+1))
	if err != nil {
		return nil, "", errors.Wrapf(domain.ErrUpstream, "erro ao ler recurso: %v", err)
	}
	if len(body) > maxAssetBytes {
		return nil, "", errors.Wrap(domain.ErrUpstream, "recurso excede o tamanho máximo")
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(body)
	}

	return body, contentType, nil
}
