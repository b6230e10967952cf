package utils

import (
	"bytes"
	"certhub/config"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// storageClient is the shared S3 client for the font and certificate buckets
var storageClient *s3.Client

// InitStorage connects to the configured S3-compatible object store
func InitStorage() {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(config.AppConfig.StorageRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			config.AppConfig.StorageAccessKey,
			config.AppConfig.StorageSecretKey,
			"",
		)),
	)
	if err != nil {
		log.Fatalf("Failed to configure object storage: %v", err)
	}

	storageClient = s3.NewFromConfig(cfg, func(o *s3.Options) {
		if config.AppConfig.StorageEndpoint != "" {
			o.BaseEndpoint = aws.String(config.AppConfig.StorageEndpoint)
			o.UsePathStyle = true // MinIO/Supabase style endpoints
		}
	})

	log.Println("Object storage client initialized")
}

// UploadObject writes bytes into a bucket
func UploadObject(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	if storageClient == nil {
		return fmt.Errorf("object storage is not initialized")
	}

	_, err := storageClient.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s/%s: %w", bucket, key, err)
	}
	return nil
}

// DownloadObject reads an object's bytes from a bucket
func DownloadObject(ctx context.Context, bucket, key string) ([]byte, error) {
	if storageClient == nil {
		return nil, fmt.Errorf("object storage is not initialized")
	}

	out, err := storageClient.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%s: %w", bucket, key, err)
	}
	return data, nil
}

// PublicURL builds the public access URL for an object
func PublicURL(bucket, key string) string {
	base := strings.TrimRight(config.AppConfig.PublicStorageURL, "/")
	if base == "" {
		base = strings.TrimRight(config.AppConfig.StorageEndpoint, "/")
	}
	return fmt.Sprintf("%s/%s/%s", base, bucket, key)
}
