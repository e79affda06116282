package filestorage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"hrms-backend/config"
	s3client "hrms-backend/s3"
)

// Архив исходных файлов загрузки зарплат в S3.
// При ненастроенном S3 операции тихо пропускаются.
type Provider interface {
	UploadPayrollSource(ctx context.Context, month string, file []byte, fileName string) error
	EnsureBucket(ctx context.Context) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		client: s3client.Client,
	}
}

type impl struct {
	client *minio.Client
}

func (i impl) UploadPayrollSource(ctx context.Context, month string, file []byte, fileName string) error {
	if i.client == nil {
		return nil
	}
	// uuid в имени объекта, чтобы повторная загрузка не затирала архив
	objectName := fmt.Sprintf("payroll/%s/%s_%s", month, uuid.NewString(), fileName)
	_, err := i.client.PutObject(ctx, config.Conf.S3.BucketName, objectName,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"})
	return err
}

func (i impl) EnsureBucket(ctx context.Context) error {
	if i.client == nil {
		return nil
	}
	bucketName := config.Conf.S3.BucketName
	exists, err := i.client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: "us-east-1"})
}
