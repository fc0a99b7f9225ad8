package services

import (
	"context"
	"fmt"
	"io"
	"sync"

	"socketBoard/configs"
	"socketBoard/internal/enums"
	"socketBoard/internal/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioService struct {
	minioClient *minio.Client
	config      *configs.Config
}

var (
	minioService *MinioService
	minioOnce    sync.Once
)

func NewMinioService(config *configs.Config, log *logger.Logger) (*MinioService, error) {
	var initErr error
	minioOnce.Do(func() {
		endpoint := config.Viper.GetString("minio.endpoint")
		accessKeyID := config.Viper.GetString("minio.access_key_id")
		secretAccessKey := config.Viper.GetString("minio.secret_access_key")
		useSSL := config.Viper.GetBool("minio.use_ssl")

		minioClient, err := minio.New(endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
			Secure: useSSL,
		})
		if err != nil {
			initErr = err
			return
		}

		bucketName := enums.FILE_BUCKET_DRAWINGS
		err = minioClient.MakeBucket(context.Background(), bucketName, minio.MakeBucketOptions{})
		if err != nil {
			exists, errBucketExists := minioClient.BucketExists(context.Background(), bucketName)
			if errBucketExists != nil || !exists {
				initErr = err
				return
			}
		} else {
			log.Infow("created bucket", "bucket", bucketName)
		}

		minioService = &MinioService{
			minioClient: minioClient,
			config:      config,
		}
	})

	if initErr != nil {
		return nil, initErr
	}
	return minioService, nil
}

func (ms *MinioService) UploadFile(fileName string, file io.Reader, fileSize int64, contentType string, bucketName string) (string, error) {
	info, err := ms.minioClient.PutObject(context.Background(), bucketName, fileName, file, fileSize, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	return ms.GetPublicFileUrl(bucketName, info.Key)
}

func (ms *MinioService) GetPublicFileUrl(bucketName, fileKey string) (string, error) {
	externalEndpoint := ms.config.Viper.GetString("minio.external_endpoint")
	return fmt.Sprintf("http://%s/%s/%s", externalEndpoint, bucketName, fileKey), nil
}
