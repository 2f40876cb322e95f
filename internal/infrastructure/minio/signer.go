package minio

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"

	"pixvault/internal/domain/dto"
	cacheRepository "pixvault/internal/domain/repository/cache"
	"pixvault/pkg/logger"
)

const (
	defaultURLExpiry      = 2 * time.Hour
	defaultStyleThreshold = 20 * 1024 * 1024

	// processParam asks the storage backend for a request-time transform.
	processParam = "x-amz-process"

	sizeUnknown = int64(-1)
)

// Signer produces presigned display/download URL pairs for stored objects.
// The display URL carries a style transform for objects below the size
// threshold; oversized objects skip it. The size probe is best effort.
type Signer struct {
	minioClient *minio.Client
	sizes       cacheRepository.SizeCache // optional, may be nil
	cfg         *SignerConfig
}

func NewSigner(minioClient *minio.Client, sizes cacheRepository.SizeCache, cfg *SignerConfig) *Signer {
	return &Signer{
		minioClient: minioClient,
		sizes:       sizes,
		cfg:         cfg,
	}
}

func (s *Signer) ResolveAccessURLs(ctx context.Context, storageKey string) (dto.AccessURLs, error) {
	filename := lastPathSegment(storageKey)
	if filename == "" {
		// Missing asset data must not break page listing.
		return dto.AccessURLs{}, nil
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(s.cfg.Timeout)*time.Millisecond)
		defer cancel()
	}

	expiry := defaultURLExpiry
	if s.cfg.URLExpiry > 0 {
		expiry = time.Duration(s.cfg.URLExpiry) * time.Second
	}
	threshold := int64(defaultStyleThreshold)
	if s.cfg.StyleThreshold > 0 {
		threshold = s.cfg.StyleThreshold
	}

	displayParams := make(url.Values)
	if s.cfg.DisplayStyle != "" {
		size := s.probeSize(ctx, storageKey)
		// An unknown size counts as oversized: signing still succeeds,
		// just without the transform.
		if size != sizeUnknown && size < threshold {
			displayParams.Set(processParam, s.cfg.DisplayStyle)
		}
	}

	displayURL, err := s.minioClient.PresignedGetObject(ctx, s.cfg.Bucket, storageKey, expiry, displayParams)
	if err != nil {
		return dto.AccessURLs{}, err
	}

	downloadParams := make(url.Values)
	downloadParams.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%s", filename))

	downloadURL, err := s.minioClient.PresignedGetObject(ctx, s.cfg.Bucket, storageKey, expiry, downloadParams)
	if err != nil {
		return dto.AccessURLs{}, err
	}

	return dto.AccessURLs{
		DisplayURL:  displayURL.String(),
		DownloadURL: downloadURL.String(),
	}, nil
}

// probeSize reports the object size, consulting the cache before issuing
// a HEAD request. Returns sizeUnknown on probe failure.
func (s *Signer) probeSize(ctx context.Context, storageKey string) int64 {
	if s.sizes != nil {
		if size, ok := s.sizes.GetSize(ctx, storageKey); ok {
			return size
		}
	}

	info, err := s.minioClient.StatObject(ctx, s.cfg.Bucket, storageKey, minio.StatObjectOptions{})
	if err != nil {
		logger.Warn("object size probe failed", "key", storageKey, "err", err)

		return sizeUnknown
	}

	if s.sizes != nil {
		s.sizes.SetSize(ctx, storageKey, info.Size)
	}

	return info.Size
}

func lastPathSegment(storageKey string) string {
	parts := strings.Split(storageKey, "/")

	return parts[len(parts)-1]
}
