package storage

import (
	"bytes"
	"context"
	"fmt"
	"medicare-portal/internal/app/contracts"
	"medicare-portal/internal/pkg/constvars"
	"medicare-portal/internal/pkg/dto/requests"
	"medicare-portal/internal/pkg/exceptions"
	"medicare-portal/internal/pkg/utils"
	"strings"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type minioStorage struct {
	MinioClient   *minio.Client
	PublicBaseUrl string
	Log           *zap.Logger
}

func NewMinioStorage(minioClient *minio.Client, publicBaseUrl string, logger *zap.Logger) contracts.Storage {
	return &minioStorage{
		MinioClient:   minioClient,
		PublicBaseUrl: strings.TrimRight(publicBaseUrl, "/"),
		Log:           logger,
	}
}

// UploadAvatar stores the image and returns the URL the page can render.
func (m *minioStorage) UploadAvatar(ctx context.Context, avatar *requests.Avatar, bucketName, objectName string) (string, error) {
	requestID := utils.GetRequestID(ctx)
	m.Log.Info("minioStorage.UploadAvatar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketKey, bucketName),
		zap.String(constvars.LoggingObjectKey, objectName),
	)

	_, err := m.MinioClient.PutObject(
		ctx,
		bucketName,
		objectName,
		bytes.NewReader(avatar.Data),
		int64(len(avatar.Data)),
		minio.PutObjectOptions{
			ContentType: avatar.ContentType,
		},
	)
	if err != nil {
		m.Log.Error("minioStorage.UploadAvatar error putting object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}

	url := fmt.Sprintf("%s/%s/%s", m.PublicBaseUrl, bucketName, objectName)
	m.Log.Info("minioStorage.UploadAvatar succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectKey, objectName),
	)
	return url, nil
}
