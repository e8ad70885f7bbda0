package publish

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"mime"
	"path"
	"path/filepath"
	"strings"
)

// Cache policies: pages revalidate so a publish shows up at once, assets may
// be cached briefly.
const (
	pageCacheControl  = "no-cache"
	assetCacheControl = "public, max-age=3600"
)

// ObjectKey returns the bucket key for rel under prefix.
func ObjectKey(prefix, rel string) string {
	rel = filepath.ToSlash(rel)
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return rel
	}
	return path.Join(prefix, rel)
}

// ContentType guesses the content type from the file extension.
func ContentType(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func cacheControl(name string) string {
	if strings.HasSuffix(name, ".html") {
		return pageCacheControl
	}
	return assetCacheControl
}

// PublishDir uploads every regular file under dir, keyed by its path
// relative to dir. It stops at the first failure and returns the number of
// files uploaded so far.
func PublishDir(ctx context.Context, up Uploader, dir, prefix string) (int, error) {
	uploaded := 0
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return fmt.Errorf("relative path of %q: %w", p, err)
		}
		obj := Object{
			Key:          ObjectKey(prefix, rel),
			Path:         p,
			ContentType:  ContentType(p),
			CacheControl: cacheControl(p),
		}
		if err := up.Upload(ctx, obj); err != nil {
			return err
		}
		slog.Debug("file published", "component", "publish", "key", obj.Key, "content_type", obj.ContentType)
		uploaded++
		return nil
	})
	if err != nil {
		return uploaded, fmt.Errorf("publishing %q: %w", dir, err)
	}

	slog.Info("site published", "component", "publish", "dir", dir, "files", uploaded)
	return uploaded, nil
}
