package contracts

import (
	"context"
	"medicare-portal/internal/pkg/dto/requests"
)

type Storage interface {
	UploadAvatar(ctx context.Context, avatar *requests.Avatar, bucketName, objectName string) (string, error)
}
