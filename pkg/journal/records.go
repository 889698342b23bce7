// Package journal is the mood record store: it maps calendar dates to mood
// entries, persists them to a store.Medium and keeps an in-memory projection
// for calendar rendering.
package journal

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"tableflip.dev/moodbubbles/pkg/mood"
	"tableflip.dev/moodbubbles/pkg/store"
)

const (
	// KeyPrefix prefixes the per-date record keys: mood_<YYYY-MM-DD>.
	KeyPrefix = "mood_"
	// IndexKey holds the aggregate <YYYY-MM-DD> -> mood id index.
	IndexKey = "@MoodsByDate"
)

// Key returns the storage key for date.
func Key(date string) string {
	return KeyPrefix + date
}

// InNamespace reports whether key belongs to the journal.
func InNamespace(key string) bool {
	return strings.HasPrefix(key, KeyPrefix) || key == IndexKey
}

// Records is the mood record store.
//
// The lenient operations (SetMood, GetMood, ClearAll, Load,
// LoadMonthProjection) log storage failures and return safe defaults, so a
// failed read looks the same as a date that was never set. The strict
// operations (Put, Lookup, Clear, Reload) return *PersistenceError instead.
type Records struct {
	medium store.Medium
	log    logrus.FieldLogger

	// mu serializes writers so writes to a key land in call order.
	mu         sync.Mutex
	projection *cache.Cache
	loaded     atomic.Bool
	// unsaved holds entries whose per-date write failed. They are laid back
	// over the projection after every reload until a later write lands.
	unsaved map[string]mood.Entry
}

// Option configures Records.
type Option func(*Records)

// WithLogger sets the logger used for swallowed failures.
func WithLogger(l logrus.FieldLogger) Option {
	return func(r *Records) {
		if l != nil {
			r.log = l
		}
	}
}

// New returns a store over medium. The projection starts empty and is filled
// by Load or lazily by LoadMonthProjection.
func New(medium store.Medium, opts ...Option) *Records {
	r := &Records{
		medium:     medium,
		log:        logrus.StandardLogger(),
		projection: cache.New(cache.NoExpiration, 0),
		unsaved:    make(map[string]mood.Entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetMood records moodID for date. Storage failures are logged and the
// projection is updated anyway; only invalid input is returned as an error.
func (r *Records) SetMood(ctx context.Context, date, moodID string) (mood.Entry, error) {
	e, err := r.Put(ctx, date, moodID)
	if err != nil {
		var pe *PersistenceError
		if !errors.As(err, &pe) {
			return mood.Entry{}, err
		}
		r.log.WithFields(logrus.Fields{
			"op":    "set",
			"date":  e.Date,
			"fruit": e.MoodID,
		}).WithError(err).Error("failed to save mood")
	}
	return e, nil
}

// GetMood returns the entry for date. Invalid dates and storage failures are
// logged and reported as absent.
func (r *Records) GetMood(ctx context.Context, date string) (mood.Entry, bool) {
	e, ok, err := r.Lookup(ctx, date)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"op":   "get",
			"date": date,
		}).WithError(err).Error("failed to read mood")
		return mood.Entry{}, false
	}
	return e, ok
}

// ClearAll removes every journal key, best effort.
func (r *Records) ClearAll(ctx context.Context) {
	if err := r.Clear(ctx); err != nil {
		r.log.WithField("op", "clear").WithError(err).Error("failed to clear moods")
	}
}

// Load reads the full mapping from storage, replaces the projection and
// returns a snapshot. Unreadable records are logged and skipped.
func (r *Records) Load(ctx context.Context) Snapshot {
	snap, err := r.Reload(ctx)
	if err != nil {
		r.log.WithField("op", "load").WithError(err).Error("failed to load moods")
	}
	return snap
}

// LoadMonthProjection returns the entries of the month containing
// monthStart keyed by day. The projection is loaded from storage on first
// use; later calls filter the in-memory projection.
func (r *Records) LoadMonthProjection(ctx context.Context, monthStart time.Time) map[int]mood.Entry {
	if !r.loaded.Load() {
		r.Load(ctx)
	}
	return r.Projection().Month(monthStart)
}

// Projection returns a copy of the in-memory projection without touching
// storage.
func (r *Records) Projection() Snapshot {
	items := r.projection.Items()
	snap := make(Snapshot, len(items))
	for date, item := range items {
		if e, ok := item.Object.(mood.Entry); ok {
			snap[date] = e
		}
	}
	return snap
}

// Invalidate drops the projection so the next LoadMonthProjection rereads
// storage. Use it when another writer changed the medium.
func (r *Records) Invalidate() {
	r.loaded.Store(false)
}

// Put validates and writes the entry for date. The projection is updated
// even when the medium write fails. The aggregate index is updated by a
// separate write; its failure is joined into the returned error.
func (r *Records) Put(ctx context.Context, date, moodID string) (mood.Entry, error) {
	e, err := mood.New(date, moodID)
	if err != nil {
		return mood.Entry{}, err
	}
	value, err := e.Marshal()
	if err != nil {
		return e, persistErr("encode", Key(e.Date), err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := Key(e.Date)
	setErr := persistErr("set", key, r.medium.Set(ctx, key, value))
	if setErr != nil {
		r.unsaved[e.Date] = e
	} else {
		delete(r.unsaved, e.Date)
	}
	r.projection.Set(e.Date, e, cache.NoExpiration)
	indexErr := r.updateIndex(ctx, e)

	return e, errors.Join(setErr, indexErr)
}

// Lookup reads the entry for date. A date with no per-date record falls back
// to the aggregate index.
func (r *Records) Lookup(ctx context.Context, date string) (mood.Entry, bool, error) {
	d, err := mood.NormalizeDate(date)
	if err != nil {
		return mood.Entry{}, false, err
	}
	key := Key(d)
	value, err := r.medium.Get(ctx, key)
	switch {
	case err == nil:
		e, err := mood.Unmarshal(d, value)
		if err != nil {
			return mood.Entry{}, false, persistErr("decode", key, err)
		}
		return e, true, nil
	case errors.Is(err, store.ErrNotFound):
	default:
		return mood.Entry{}, false, persistErr("get", key, err)
	}

	index, err := r.readIndex(ctx)
	if err != nil {
		return mood.Entry{}, false, err
	}
	id, ok := index[d]
	if !ok {
		return mood.Entry{}, false, nil
	}
	return mood.Entry{Date: d, MoodID: id, Emotion: mood.TitleFor(id)}, true, nil
}

// Clear removes every key in the journal namespace. The projection is
// emptied and marked stale so survivors of a partial failure reappear on the
// next load.
func (r *Records) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	defer func() {
		r.projection.Flush()
		r.unsaved = make(map[string]mood.Entry)
		r.loaded.Store(false)
	}()

	keys, err := r.medium.AllKeys(ctx)
	if err != nil {
		return persistErr("keys", "", err)
	}
	owned := make([]string, 0, len(keys))
	for _, k := range keys {
		if InNamespace(k) {
			owned = append(owned, k)
		}
	}
	if len(owned) == 0 {
		return nil
	}
	return persistErr("remove", "", r.medium.MultiRemove(ctx, owned))
}

// Reload reads every record from storage and replaces the projection.
// Records that fail to read or decode are skipped and reported in the
// returned error; the snapshot holds everything that could be read.
// Entries whose write failed stay in the projection but not in the
// snapshot.
func (r *Records) Reload(ctx context.Context) (Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys, err := r.medium.AllKeys(ctx)
	if err != nil {
		return r.Projection(), persistErr("keys", "", err)
	}

	var errs []error
	snap := make(Snapshot)
	hasIndex := false
	for _, key := range keys {
		if key == IndexKey {
			hasIndex = true
			continue
		}
		if !strings.HasPrefix(key, KeyPrefix) {
			continue
		}
		date, err := mood.NormalizeDate(strings.TrimPrefix(key, KeyPrefix))
		if err != nil {
			errs = append(errs, persistErr("decode", key, err))
			continue
		}
		value, err := r.medium.Get(ctx, key)
		if err != nil {
			errs = append(errs, persistErr("get", key, err))
			continue
		}
		e, err := mood.Unmarshal(date, value)
		if err != nil {
			errs = append(errs, persistErr("decode", key, err))
			continue
		}
		snap[date] = e
	}

	if hasIndex {
		index, err := r.readIndex(ctx)
		if err != nil {
			errs = append(errs, err)
		}
		for date, id := range index {
			if _, ok := snap[date]; ok {
				continue
			}
			if _, err := mood.NormalizeDate(date); err != nil {
				continue
			}
			snap[date] = mood.Entry{Date: date, MoodID: id, Emotion: mood.TitleFor(id)}
		}
	}

	r.projection.Flush()
	for date, e := range snap {
		r.projection.Set(date, e, cache.NoExpiration)
	}
	for date, e := range r.unsaved {
		r.projection.Set(date, e, cache.NoExpiration)
	}
	r.loaded.Store(true)

	return snap, errors.Join(errs...)
}

func (r *Records) readIndex(ctx context.Context) (map[string]string, error) {
	value, err := r.medium.Get(ctx, IndexKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return map[string]string{}, nil
		}
		return nil, persistErr("get", IndexKey, err)
	}
	index := map[string]string{}
	if strings.TrimSpace(value) == "" {
		return index, nil
	}
	if err := json.Unmarshal([]byte(value), &index); err != nil {
		return nil, persistErr("decode", IndexKey, err)
	}
	return index, nil
}

// updateIndex records e in the aggregate index. An unreadable index is
// rebuilt from the projection rather than left stale.
func (r *Records) updateIndex(ctx context.Context, e mood.Entry) error {
	index, err := r.readIndex(ctx)
	if err != nil {
		var pe *PersistenceError
		if !errors.As(err, &pe) || pe.Op != "decode" {
			return err
		}
		index = make(map[string]string)
		for date, known := range r.Projection() {
			index[date] = known.MoodID
		}
	}
	index[e.Date] = e.MoodID
	b, err := json.Marshal(index)
	if err != nil {
		return persistErr("encode", IndexKey, err)
	}
	return persistErr("set", IndexKey, r.medium.Set(ctx, IndexKey, string(b)))
}
