// internal/services/storage_service.go
package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/sirupsen/logrus"

	"github.com/atelier-gestor/atelier/internal/artwork"
	"github.com/atelier-gestor/atelier/internal/config"
	"github.com/atelier-gestor/atelier/internal/i18n"
)

const artFolder = "artes"

// ArtStorage persists item artwork and returns the public path stored in
// the item row.
type ArtStorage interface {
	SaveArt(ctx context.Context, orderID, productID uint, file io.Reader) (string, error)
	DeleteArt(ctx context.Context, artPath string) error
}

type StorageService struct {
	s3Client s3iface.S3API
	config   *config.Config
}

func NewStorageService(config *config.Config) (*StorageService, error) {
	if config.AWS.AccessKeyID == "" {
		// Local disk served under /uploads
		if err := os.MkdirAll(filepath.Join(config.Storage.UploadDir, artFolder), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload dir: %w", err)
		}
		return &StorageService{config: config}, nil
	}

	// Create AWS session
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(config.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			config.AWS.AccessKeyID,
			config.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &StorageService{
		s3Client: s3.New(sess),
		config:   config,
	}, nil
}

// SaveArt validates size and format, then stores the file under artes/.
func (s *StorageService) SaveArt(ctx context.Context, orderID, productID uint, file io.Reader) (string, error) {
	maxMB := s.config.Storage.MaxArtSizeMB

	// Read one byte past the limit to detect oversized files
	content, err := io.ReadAll(io.LimitReader(file, int64(maxMB)<<20+1))
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	if err := artwork.CheckSize(int64(len(content)), maxMB); err != nil {
		return "", invalid(i18n.KeyFileTooLarge, maxMB)
	}

	format, err := artwork.Verify(content)
	if err != nil {
		if errors.Is(err, artwork.ErrUnsupportedType) {
			return "", invalid(i18n.KeyFileInvalidType)
		}
		return "", invalid(i18n.KeyFileCorrupted)
	}

	filename := artwork.FileName(orderID, productID, format.Ext)

	if s.s3Client != nil {
		return s.uploadToS3(ctx, content, path.Join(artFolder, filename), format.MIME)
	}

	return s.uploadToLocal(content, filename)
}

func (s *StorageService) uploadToS3(ctx context.Context, content []byte, key, contentType string) (string, error) {
	_, err := s.s3Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.config.AWS.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(content),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(content))),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return s.getS3URL(key), nil
}

func (s *StorageService) uploadToLocal(content []byte, filename string) (string, error) {
	target := filepath.Join(s.config.Storage.UploadDir, artFolder, filename)
	if err := os.WriteFile(target, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write artwork: %w", err)
	}

	return path.Join(s.config.Storage.PublicPrefix, artFolder, filename), nil
}

// DeleteArt removes a stored artwork. Only the base name of artPath is used
// so a crafted path cannot escape the artwork folder.
func (s *StorageService) DeleteArt(ctx context.Context, artPath string) error {
	name := path.Base(strings.TrimSpace(artPath))
	if name == "" || name == "." || name == "/" {
		return nil
	}

	if s.s3Client != nil {
		_, err := s.s3Client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(s.config.AWS.S3Bucket),
			Key:    aws.String(path.Join(artFolder, name)),
		})
		if err != nil {
			return fmt.Errorf("failed to delete file from S3: %w", err)
		}
		return nil
	}

	target := filepath.Join(s.config.Storage.UploadDir, artFolder, name)
	if err := os.Remove(target); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete artwork: %w", err)
	}
	return nil
}

func (s *StorageService) getS3URL(key string) string {
	if s.config.AWS.CloudFrontURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimRight(s.config.AWS.CloudFrontURL, "/"), key)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s",
		s.config.AWS.S3Bucket, s.config.AWS.Region, key)
}

// deleteArtQuietly is used after a commit; a leftover file is only logged.
func deleteArtQuietly(ctx context.Context, storage ArtStorage, artPath *string) {
	if storage == nil || artPath == nil || *artPath == "" {
		return
	}
	if err := storage.DeleteArt(ctx, *artPath); err != nil {
		logrus.WithError(err).WithField("art_path", *artPath).Warn("Could not delete artwork")
	}
}
