package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"time"

	"jcw/jcw/config"
	"jcw/jcw/utils/logging"
	"jcw/jcw/utils/types"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// SnapshotKey is where the content index keeps its last good population.
var SnapshotKey = path.Join("snapshots", "content-index.json")

type MinIOClient struct {
	client *minio.Client
	bucket string
}

type SnapshotObject struct {
	Pages     []types.PageContent `json:"pages"`
	Timestamp time.Time           `json:"timestamp"`
}

func NewMinIOClient(ctx context.Context, cfg config.Config) (*MinIOClient, error) {
	bucket := cfg.MinIOBucket
	client, err := minio.New(
		cfg.MinIOEndpoint,
		&minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
			Secure: cfg.MinIOUseSSL,
		},
	)
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
		logging.AppLogger.Info("created bucket", zap.String("bucket", bucket))
	}
	return &MinIOClient{client: client, bucket: bucket}, nil
}

func (m *MinIOClient) SaveSnapshot(ctx context.Context, pages []types.PageContent) error {
	data, err := EncodeSnapshot(pages, time.Now())
	if err != nil {
		return err
	}
	_, err = m.client.PutObject(ctx, m.bucket, SnapshotKey, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	return err
}

// LoadSnapshot returns nil pages, not an error, when no snapshot was saved yet.
func (m *MinIOClient) LoadSnapshot(ctx context.Context) ([]types.PageContent, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, SnapshotKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, nil
		}
		return nil, err
	}
	snap, err := DecodeSnapshot(data)
	if err != nil {
		return nil, err
	}
	return snap.Pages, nil
}

func EncodeSnapshot(pages []types.PageContent, at time.Time) ([]byte, error) {
	return json.Marshal(SnapshotObject{Pages: pages, Timestamp: at})
}

func DecodeSnapshot(data []byte) (SnapshotObject, error) {
	var snap SnapshotObject
	if err := json.Unmarshal(data, &snap); err != nil {
		return SnapshotObject{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}
