package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	opensearch "github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"
	requestsigner "github.com/opensearch-project/opensearch-go/v2/signer/awsv2"
	"github.com/samber/lo"

	"github.com/diillson/aws-cost-report/internal/domain/entity"
	"github.com/diillson/aws-cost-report/internal/domain/repository"
	"github.com/diillson/aws-cost-report/internal/shared/types"
)

const matchAllQuery = `{"query":{"match_all":{}}}`

type rawHit struct {
	ID     string                 `json:"_id"`
	Source map[string]interface{} `json:"_source"`
}

// SearchRepositoryImpl implementa o SearchRepository sobre o cliente OpenSearch.
type SearchRepositoryImpl struct {
	client *opensearch.Client
}

// NewSearchRepository wraps an existing client.
func NewSearchRepository(client *opensearch.Client) *SearchRepositoryImpl {
	return &SearchRepositoryImpl{client: client}
}

// Address builds the cluster URL. Hosts that already carry a scheme are used as is.
func Address(scheme, host string, port int) string {
	if strings.Contains(host, "://") {
		return host
	}
	if port == 0 {
		return fmt.Sprintf("%s://%s", scheme, host)
	}
	return fmt.Sprintf("%s://%s:%d", scheme, host, port)
}

// NewSignedClient creates a client whose requests are SigV4-signed with the
// given credentials for cfg.SearchService.
func NewSignedClient(awsCfg aws.Config, host string, cfg *types.Config) (*opensearch.Client, error) {
	signer, err := requestsigner.NewSignerWithService(awsCfg, cfg.SearchService)
	if err != nil {
		return nil, fmt.Errorf("error creating request signer: %w", err)
	}

	client, err := opensearch.NewClient(opensearch.Config{
		Addresses: []string{Address(cfg.SearchScheme, host, cfg.SearchPort)},
		Signer:    signer,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating search client: %w", err)
	}
	return client, nil
}

// NewSignedFactory returns a factory the report use case calls once the host is known.
func NewSignedFactory(
	loadConfig func(ctx context.Context) (aws.Config, error),
	cfg *types.Config,
) func(ctx context.Context, host string) (repository.SearchRepository, error) {
	return func(ctx context.Context, host string) (repository.SearchRepository, error) {
		awsCfg, err := loadConfig(ctx)
		if err != nil {
			return nil, err
		}
		client, err := NewSignedClient(awsCfg, host, cfg)
		if err != nil {
			return nil, err
		}
		return NewSearchRepository(client), nil
	}
}

func (r *SearchRepositoryImpl) IndexDocument(ctx context.Context, index, id string, doc interface{}) (string, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("error encoding document: %w", err)
	}

	res, err := opensearchapi.IndexRequest{
		Index:      index,
		DocumentID: id,
		Body:       bytes.NewReader(body),
	}.Do(ctx, r.client)
	if err != nil {
		return "", fmt.Errorf("error indexing %s/%s: %w", index, id, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return "", responseError("index", res)
	}

	var out struct {
		Result string `json:"result"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("error decoding index response: %w", err)
	}
	return out.Result, nil
}

func (r *SearchRepositoryImpl) GetDocument(ctx context.Context, index, id string) (map[string]interface{}, error) {
	res, err := opensearchapi.GetRequest{
		Index:      index,
		DocumentID: id,
	}.Do(ctx, r.client)
	if err != nil {
		return nil, fmt.Errorf("error fetching %s/%s: %w", index, id, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s/%s", types.ErrDocumentNotFound, index, id)
	}
	if res.IsError() {
		return nil, responseError("get", res)
	}

	var out struct {
		Found  bool                   `json:"found"`
		Source map[string]interface{} `json:"_source"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("error decoding get response: %w", err)
	}
	if !out.Found {
		return nil, fmt.Errorf("%w: %s/%s", types.ErrDocumentNotFound, index, id)
	}
	return out.Source, nil
}

func (r *SearchRepositoryImpl) Refresh(ctx context.Context, index string) error {
	res, err := opensearchapi.IndicesRefreshRequest{
		Index: []string{index},
	}.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("error refreshing %s: %w", index, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return responseError("refresh", res)
	}
	return nil
}

func (r *SearchRepositoryImpl) SearchAll(ctx context.Context, index string) (int, []entity.SearchHit, error) {
	res, err := opensearchapi.SearchRequest{
		Index: []string{index},
		Body:  strings.NewReader(matchAllQuery),
	}.Do(ctx, r.client)
	if err != nil {
		return 0, nil, fmt.Errorf("error searching %s: %w", index, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return 0, nil, responseError("search", res)
	}

	var out struct {
		Hits struct {
			Total json.RawMessage `json:"total"`
			Hits  []rawHit        `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return 0, nil, fmt.Errorf("error decoding search response: %w", err)
	}

	total, err := parseTotal(out.Hits.Total)
	if err != nil {
		return 0, nil, err
	}

	hits := lo.Map(out.Hits.Hits, func(h rawHit, _ int) entity.SearchHit {
		return entity.SearchHit{ID: h.ID, Source: h.Source}
	})
	return total, hits, nil
}

// parseTotal aceita tanto {"value": n} quanto o formato antigo de número puro.
func parseTotal(raw json.RawMessage) (int, error) {
	if len(raw) == 0 {
		return 0, nil
	}

	var obj struct {
		Value int `json:"value"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Value, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return 0, fmt.Errorf("unexpected hits.total %s", string(raw))
	}
	return n, nil
}

func responseError(op string, res *opensearchapi.Response) error {
	body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
	return fmt.Errorf("%s request failed with status %d: %s", op, res.StatusCode, strings.TrimSpace(string(body)))
}
