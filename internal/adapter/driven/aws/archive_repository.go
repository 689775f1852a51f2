package aws

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/diillson/aws-cost-report/internal/domain/entity"
)

// ArchiveRepositoryImpl grava o relatório mais recente em uma chave fixa do S3.
// Cada execução sobrescreve o objeto anterior.
type ArchiveRepositoryImpl struct {
	repo   *AWSRepositoryImpl
	bucket string
	key    string
}

// NewArchiveRepository creates an archive backed by the repository's S3 client.
func NewArchiveRepository(repo *AWSRepositoryImpl, bucket, key string) *ArchiveRepositoryImpl {
	return &ArchiveRepositoryImpl{repo: repo, bucket: bucket, key: key}
}

func (a *ArchiveRepositoryImpl) PutLatest(ctx context.Context, report entity.CostReport) (string, error) {
	client, err := a.repo.getServiceClient(ctx, "s3")
	if err != nil {
		return "", err
	}
	s3Client := client.(*s3.Client)

	body, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("error encoding report: %w", err)
	}

	_, err = s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(a.key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("error writing s3://%s/%s: %w", a.bucket, a.key, err)
	}

	return fmt.Sprintf("s3://%s/%s", a.bucket, a.key), nil
}
