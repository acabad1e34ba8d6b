// Package backup uploads point-in-time copies of the data files to an
// S3-compatible bucket.
package backup

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrijs2005/newsboard/internal/config"
	"github.com/dmitrijs2005/newsboard/internal/cryptox"
	"github.com/dmitrijs2005/newsboard/internal/logging"
)

// Uploader is the subset of *s3.Client used for snapshots.
type Uploader interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) Uploader {
		return s3.NewFromConfig(cfg, optFns...)
	}

	now = time.Now
)

const (
	// KeyPrefix is the folder every snapshot is written under.
	KeyPrefix = "snapshots"
	// SealedSuffix is appended to keys of objects sealed with
	// cryptox.Seal.
	SealedSuffix = ".sealed"
)

type Service struct {
	cfg    *config.Config
	files  []string
	logger logging.Logger
}

// NewService prepares snapshots of files. Nothing is contacted until
// Snapshot is called.
func NewService(cfg *config.Config, files []string, logger logging.Logger) *Service {
	return &Service{
		cfg:    cfg,
		files:  append([]string(nil), files...),
		logger: logger.With("component", "backup"),
	}
}

func (s *Service) client(ctx context.Context) (Uploader, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(s.cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.S3RootUser,
			s.cfg.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.cfg.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

// Snapshot uploads every existing data file under
// snapshots/<UTC timestamp>/<file name> and returns the keys written.
// Files that do not exist yet are skipped. With a backup passphrase
// configured the objects are sealed and their keys end in SealedSuffix.
func (s *Service) Snapshot(ctx context.Context) ([]string, error) {
	c, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	stamp := now().UTC().Format("20060102T150405Z")
	keys := []string{}
	for _, path := range s.files {
		key := KeyPrefix + "/" + stamp + "/" + filepath.Base(path)
		if s.cfg.BackupPassphrase != "" {
			key += SealedSuffix
		}
		ok, err := s.upload(ctx, c, path, key)
		if err != nil {
			return keys, err
		}
		if ok {
			keys = append(keys, key)
		}
	}

	s.logger.Info(ctx, "snapshot uploaded",
		"bucket", s.cfg.S3Bucket, "objects", len(keys), "sealed", s.cfg.BackupPassphrase != "")
	return keys, nil
}

func (s *Service) upload(ctx context.Context, c Uploader, path, key string) (bool, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug(ctx, "skip missing file", "path", path)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var body io.Reader = f
	if s.cfg.BackupPassphrase != "" {
		plain, err := io.ReadAll(f)
		if err != nil {
			return false, fmt.Errorf("read %s: %w", path, err)
		}
		sealed, err := cryptox.Seal(plain, []byte(s.cfg.BackupPassphrase))
		if err != nil {
			return false, fmt.Errorf("seal %s: %w", path, err)
		}
		body = bytes.NewReader(sealed)
	}

	_, err = c.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.cfg.S3Bucket),
		Key:    aws.String(key),
		Body:   body,
	})
	if err != nil {
		return false, fmt.Errorf("upload %s: %w", key, err)
	}
	return true, nil
}
