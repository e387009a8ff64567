package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/merseybathrooms/jobtracker/internal/httperr"
)

// package-level logger; can be replaced by callers
var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// SetLogger sets the logger used by the uploader. Passing nil is a no-op.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

type Options struct {
	Concurrency int
	Retries     int
	Backoff     time.Duration
}

// Uploaded is the outcome of one photo upload. Fresh is false when the
// object was already present and this call did not create it.
type Uploaded struct {
	Key   string
	URL   string
	Fresh bool
}

type Uploader struct {
	store ObjectStore
	cache KeyCache
	proc  Processor
	opts  Options
}

func NewUploader(store ObjectStore, cache KeyCache, proc Processor, opts Options) *Uploader {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	if opts.Retries < 0 {
		opts.Retries = 0
	}
	if cache == nil {
		cache = NewMemoryCache()
	}
	return &Uploader{store: store, cache: cache, proc: proc, opts: opts}
}

// Upload pushes one photo under prefix and returns its public URL. The
// object key is derived from the content hash, so retrying the same bytes
// always targets the same object.
func (u *Uploader) Upload(ctx context.Context, prefix string, p Photo) (Uploaded, error) {
	if u.proc != nil {
		processed, err := u.proc.Process(p)
		if err != nil {
			return Uploaded{}, httperr.Wrap(httperr.CodeUploadFailed, fmt.Errorf("process %s: %w", p.Filename, err))
		}
		p = processed
	}
	if p.ContentType == "" {
		p.ContentType = "image/jpeg"
	}

	key := ObjectKey(prefix, p)

	if url, err := u.cache.Get(ctx, key); err == nil {
		return Uploaded{Key: key, URL: url}, nil
	} else if !errors.Is(err, ErrNotFound) {
		logger.Warn("upload cache lookup failed", slog.String("key", key), slog.Any("err", err))
	}

	var (
		url     string
		lastErr error
	)
	for attempt := 0; attempt <= u.opts.Retries; attempt++ {
		url, lastErr = u.store.Put(ctx, key, p.Content, p.ContentType)
		if lastErr == nil {
			break
		}
		logger.Warn("photo upload attempt failed",
			slog.String("key", key),
			slog.Int("attempt", attempt+1),
			slog.Any("err", lastErr),
		)
		if attempt == u.opts.Retries {
			break
		}
		select {
		case <-ctx.Done():
			return Uploaded{}, httperr.Wrap(httperr.CodeUploadFailed, ctx.Err())
		case <-time.After(u.opts.Backoff * time.Duration(attempt+1)):
		}
	}
	if lastErr != nil {
		return Uploaded{}, httperr.Wrap(httperr.CodeUploadFailed, lastErr)
	}

	if err := u.cache.Set(ctx, key, url); err != nil {
		logger.Warn("upload cache write failed", slog.String("key", key), slog.Any("err", err))
	}

	logger.Info("photo uploaded", slog.String("key", key), slog.Int("bytes", len(p.Content)))
	return Uploaded{Key: key, URL: url, Fresh: true}, nil
}

// UploadBatch uploads photos with bounded concurrency. Results line up
// with the input order. Either every photo is uploaded or none remain:
// on failure the objects created by this call are discarded.
func (u *Uploader) UploadBatch(ctx context.Context, prefix string, photos []Photo) ([]Uploaded, error) {
	results := make([]Uploaded, len(photos))
	if len(photos) == 0 {
		return results, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	indexes := make(chan int)
	workers := min(u.opts.Concurrency, len(photos))

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				res, err := u.Upload(ctx, prefix, photos[i])
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					cancel()
					continue
				}
				results[i] = res
			}
		}()
	}

feed:
	for i := range photos {
		select {
		case indexes <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(indexes)
	wg.Wait()

	if firstErr == nil && ctx.Err() != nil {
		firstErr = httperr.Wrap(httperr.CodeUploadFailed, ctx.Err())
	}
	if firstErr != nil {
		// ctx is cancelled by now; cleanup needs its own budget
		cleanupCtx, cleanupCancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
		defer cleanupCancel()
		if err := u.Discard(cleanupCtx, results); err != nil {
			return nil, httperr.Wrap(httperr.CodePartialWrite, errors.Join(firstErr, err))
		}
		return nil, firstErr
	}

	return results, nil
}

// Discard deletes the objects this process created. Objects that were
// already present (Fresh == false) are left alone.
func (u *Uploader) Discard(ctx context.Context, uploaded []Uploaded) error {
	var errs []error
	for _, up := range uploaded {
		if !up.Fresh || up.Key == "" {
			continue
		}
		if err := u.store.Delete(ctx, up.Key); err != nil {
			errs = append(errs, fmt.Errorf("delete %s: %w", up.Key, err))
			continue
		}
		if err := u.cache.Delete(ctx, up.Key); err != nil {
			logger.Warn("upload cache delete failed", slog.String("key", up.Key), slog.Any("err", err))
		}
	}
	return errors.Join(errs...)
}

// URLs returns the public URLs in order.
func URLs(uploaded []Uploaded) []string {
	out := make([]string, 0, len(uploaded))
	for _, up := range uploaded {
		out = append(out, up.URL)
	}
	return out
}

// ObjectKey is prefix/<sha256 of content><ext>.
func ObjectKey(prefix string, p Photo) string {
	sum := sha256.Sum256(p.Content)
	return path.Join(prefix, hex.EncodeToString(sum[:])+extension(p))
}

func extension(p Photo) string {
	if ext := strings.ToLower(path.Ext(p.Filename)); ext != "" && len(ext) <= 5 {
		if p.ContentType == "" || mime.TypeByExtension(ext) == p.ContentType {
			return ext
		}
	}
	switch p.ContentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	case "image/heic":
		return ".heic"
	}
	if exts, err := mime.ExtensionsByType(p.ContentType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ".bin"
}
