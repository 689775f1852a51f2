package aws

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	ceTypes "github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/diillson/aws-cost-report/internal/domain/entity"
)

// costExplorerRegion é a única região que atende a API do Cost Explorer.
const costExplorerRegion = "us-east-1"

// AWSRepositoryImpl implementa o AWSRepository com cache de clientes.
type AWSRepositoryImpl struct {
	region      string
	cfg         *aws.Config
	clientCache map[string]interface{}
	mu          sync.Mutex
}

// NewAWSRepository cria uma nova implementação do AWSRepository.
// Uma região vazia usa a cadeia padrão do SDK (AWS_REGION, perfil, IMDS).
func NewAWSRepository(region string) *AWSRepositoryImpl {
	return &AWSRepositoryImpl{
		region:      region,
		clientCache: make(map[string]interface{}),
	}
}

// Config returns the resolved SDK configuration, loading it on first use.
func (r *AWSRepositoryImpl) Config(ctx context.Context) (aws.Config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cfg != nil {
		return *r.cfg, nil
	}

	var opts []func(*config.LoadOptions) error
	if r.region != "" {
		opts = append(opts, config.WithRegion(r.region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}

	r.cfg = &cfg
	return cfg, nil
}

// GetRegion returns the region the session resolved to, or the requested one
// before the session is loaded.
func (r *AWSRepositoryImpl) GetRegion() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cfg != nil && r.cfg.Region != "" {
		return r.cfg.Region
	}
	return r.region
}

func (r *AWSRepositoryImpl) getServiceClient(ctx context.Context, service string) (interface{}, error) {
	r.mu.Lock()
	if client, ok := r.clientCache[service]; ok {
		r.mu.Unlock()
		return client, nil
	}
	r.mu.Unlock()

	cfg, err := r.Config(ctx)
	if err != nil {
		return nil, err
	}

	regionalCfg := cfg.Copy()

	var client interface{}
	switch service {
	case "sts":
		client = sts.NewFromConfig(regionalCfg)
	case "costexplorer":
		regionalCfg.Region = costExplorerRegion
		client = costexplorer.NewFromConfig(regionalCfg)
	case "ssm":
		client = ssm.NewFromConfig(regionalCfg)
	case "s3":
		client = s3.NewFromConfig(regionalCfg)
	default:
		return nil, fmt.Errorf("unsupported service: %s", service)
	}

	r.mu.Lock()
	r.clientCache[service] = client
	r.mu.Unlock()

	return client, nil
}

func (r *AWSRepositoryImpl) GetAccountID(ctx context.Context) (string, error) {
	client, err := r.getServiceClient(ctx, "sts")
	if err != nil {
		return "", err
	}
	stsClient := client.(*sts.Client)

	result, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("error getting account ID: %w", err)
	}
	return aws.ToString(result.Account), nil
}

func (r *AWSRepositoryImpl) GetParameter(ctx context.Context, name string, decrypt bool) (string, error) {
	client, err := r.getServiceClient(ctx, "ssm")
	if err != nil {
		return "", err
	}
	ssmClient := client.(*ssm.Client)

	out, err := ssmClient.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(decrypt),
	})
	if err != nil {
		return "", fmt.Errorf("error getting parameter %s: %w", name, err)
	}
	if out.Parameter == nil {
		return "", nil
	}
	return aws.ToString(out.Parameter.Value), nil
}

func (r *AWSRepositoryImpl) GetCostAndUsage(ctx context.Context, query entity.BillingQuery) (entity.BillingResponse, error) {
	client, err := r.getServiceClient(ctx, "costexplorer")
	if err != nil {
		return entity.BillingResponse{}, err
	}
	ceClient := client.(*costexplorer.Client)

	input := buildCostAndUsageInput(query)

	var resp entity.BillingResponse
	for {
		out, err := ceClient.GetCostAndUsage(ctx, input)
		if err != nil {
			return entity.BillingResponse{}, err
		}
		resp = mergeResults(resp, toBillingResponse(out))

		if out.NextPageToken == nil || *out.NextPageToken == "" {
			break
		}
		input.NextPageToken = out.NextPageToken
	}

	return resp, nil
}

// buildCostAndUsageInput monta a consulta agrupada por serviço e região,
// restrita à conta vinculada e sem créditos/reembolsos.
func buildCostAndUsageInput(query entity.BillingQuery) *costexplorer.GetCostAndUsageInput {
	groupBy := make([]ceTypes.GroupDefinition, 0, len(query.GroupBy))
	for _, key := range query.GroupBy {
		groupBy = append(groupBy, ceTypes.GroupDefinition{
			Type: ceTypes.GroupDefinitionTypeDimension,
			Key:  aws.String(key),
		})
	}

	filters := []ceTypes.Expression{{
		Dimensions: &ceTypes.DimensionValues{
			Key:    ceTypes.DimensionLinkedAccount,
			Values: []string{query.AccountID},
		},
	}}
	if len(query.ExcludedRecordTypes) > 0 {
		filters = append(filters, ceTypes.Expression{
			Not: &ceTypes.Expression{
				Dimensions: &ceTypes.DimensionValues{
					Key:    ceTypes.DimensionRecordType,
					Values: query.ExcludedRecordTypes,
				},
			},
		})
	}

	var filter *ceTypes.Expression
	if len(filters) == 1 {
		filter = &filters[0]
	} else {
		filter = &ceTypes.Expression{And: filters}
	}

	return &costexplorer.GetCostAndUsageInput{
		TimePeriod: &ceTypes.DateInterval{
			Start: aws.String(query.Window.Start),
			End:   aws.String(query.Window.End),
		},
		Granularity: ceTypes.GranularityMonthly,
		Metrics:     []string{query.Metric},
		GroupBy:     groupBy,
		Filter:      filter,
	}
}

func toBillingResponse(out *costexplorer.GetCostAndUsageOutput) entity.BillingResponse {
	var resp entity.BillingResponse
	if out == nil {
		return resp
	}

	for _, rbt := range out.ResultsByTime {
		bucket := entity.ResultByTime{
			Groups:    make([]entity.UsageGroup, 0, len(rbt.Groups)),
			Estimated: rbt.Estimated,
		}
		if rbt.TimePeriod != nil {
			bucket.TimePeriod = entity.TimePeriod{
				Start: aws.ToString(rbt.TimePeriod.Start),
				End:   aws.ToString(rbt.TimePeriod.End),
			}
		}

		for _, g := range rbt.Groups {
			group := entity.UsageGroup{
				Keys:    append([]string(nil), g.Keys...),
				Metrics: make(map[string]entity.MetricValue, len(g.Metrics)),
			}
			for name, mv := range g.Metrics {
				if mv.Amount == nil {
					continue
				}
				group.Metrics[name] = entity.MetricValue{
					Amount: aws.ToString(mv.Amount),
					Unit:   aws.ToString(mv.Unit),
				}
			}
			bucket.Groups = append(bucket.Groups, group)
		}

		resp.ResultsByTime = append(resp.ResultsByTime, bucket)
	}

	return resp
}

// mergeResults junta as páginas; grupos de um mesmo período vão para o mesmo bucket.
func mergeResults(acc, page entity.BillingResponse) entity.BillingResponse {
	for _, bucket := range page.ResultsByTime {
		merged := false
		for i := range acc.ResultsByTime {
			if acc.ResultsByTime[i].TimePeriod == bucket.TimePeriod {
				acc.ResultsByTime[i].Groups = append(acc.ResultsByTime[i].Groups, bucket.Groups...)
				merged = true
				break
			}
		}
		if !merged {
			acc.ResultsByTime = append(acc.ResultsByTime, bucket)
		}
	}
	return acc
}
