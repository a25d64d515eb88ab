package helper

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

type OSSClient struct {
	bucket    *oss.Bucket
	publicURL string
}

// NewOSSClientFromEnv builds a client from OSS_ENDPOINT / OSS_ACCESS_KEY_ID /
// OSS_ACCESS_KEY_SECRET / OSS_BUCKET (+ optional OSS_PUBLIC_BASE_URL).
func NewOSSClientFromEnv() (*OSSClient, error) {
	endpoint := getEnv("OSS_ENDPOINT")
	keyID := getEnv("OSS_ACCESS_KEY_ID")
	keySecret := getEnv("OSS_ACCESS_KEY_SECRET")
	bucketName := getEnv("OSS_BUCKET")
	if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
		return nil, fmt.Errorf("OSS env is not fully configured")
	}

	cli, err := oss.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, fmt.Errorf("oss client: %w", err)
	}
	bucket, err := cli.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("oss bucket: %w", err)
	}

	publicURL := getEnv("OSS_PUBLIC_BASE_URL")
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.%s", bucketName, endpoint)
	}

	return &OSSClient{bucket: bucket, publicURL: strings.TrimRight(publicURL, "/")}, nil
}

// UploadBytes stores blob under folder with a date+uuid key and returns the
// public URL.
func (c *OSSClient) UploadBytes(folder string, blob []byte, ext, contentType string) (string, error) {
	key := fmt.Sprintf("%s/%s-%s%s", strings.Trim(folder, "/"), time.Now().Format("20060102"), uuid.NewString(), ext)

	opts := []oss.Option{}
	if contentType != "" {
		opts = append(opts, oss.ContentType(contentType))
	}
	if err := c.bucket.PutObject(key, bytes.NewReader(blob), opts...); err != nil {
		return "", fmt.Errorf("oss put: %w", err)
	}
	return c.publicURL + "/" + key, nil
}

func (c *OSSClient) Delete(key string) error {
	return c.bucket.DeleteObject(key)
}
