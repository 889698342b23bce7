package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"
)

const (
	layoutISO  = "2006-01-02"
	datePrefix = "mood_"
	dateBucket = "mood"
)

// Disk is a Medium backed by diskv. Dated keys (mood_YYYY-MM-DD) are bucketed
// into mood/YYYY/MM directories; every other key lives at the base path.
type Disk struct {
	d        *diskv.Diskv
	basePath string
}

// Load opens the on-disk medium described by cfg. A nil cfg is read from the
// environment and config file.
func Load(cfg Config) (*Disk, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	basePath := cfg.BasePath()
	if strings.TrimSpace(basePath) == "" {
		return nil, errors.New("store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &Disk{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		// Other processes write the same directory, so diskv must not
		// serve reads from its own cache.
		CacheSizeMax: 0,
	}), basePath: basePath}, nil
}

// BasePath is the directory holding the data files.
func (p *Disk) BasePath() string {
	return p.basePath
}

func (p *Disk) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", err
	}
	return string(val), nil
}

func (p *Disk) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.d.Write(key, []byte(value))
}

func (p *Disk) AllKeys(ctx context.Context) ([]string, error) {
	keys := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sort.Strings(keys)
	return keys, nil
}

func (p *Disk) MultiRemove(ctx context.Context, keys []string) error {
	var errs []error
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := p.d.Erase(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

func keyToPathTransform(key string) *diskv.PathKey {
	if date, ok := dateFromKey(key); ok {
		return &diskv.PathKey{
			Path:     []string{dateBucket, date.Format("2006"), date.Format("01")},
			FileName: key,
		}
	}
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}

func dateFromKey(key string) (time.Time, bool) {
	if !strings.HasPrefix(key, datePrefix) {
		return time.Time{}, false
	}
	t, err := time.Parse(layoutISO, strings.TrimPrefix(key, datePrefix))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
