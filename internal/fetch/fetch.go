package fetch

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/glanceworks/tododash/internal/account"
	"github.com/glanceworks/tododash/internal/agg"
	"github.com/glanceworks/tododash/internal/avatar"
	"github.com/glanceworks/tododash/internal/todoist"
)

// Source is the per-account API surface the fetcher needs. Satisfied by
// *todoist.Client; tests substitute fakes.
type Source interface {
	Tasks(ctx context.Context) ([]todoist.RawTask, error)
	Projects(ctx context.Context) ([]todoist.RawProject, error)
	User(ctx context.Context) (*todoist.RawProfile, error)
}

// Fetcher fans out one request cycle per account and joins the results
// into a single materialized collection. Per-account failures degrade to
// that account's last good snapshot (or empty lists) and never abort
// the cycle or surface to the aggregation core.
type Fetcher struct {
	cache   *Cache
	avatars *avatar.Cache
	source  func(token string) Source
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithSource overrides the per-token client factory (used by tests).
func WithSource(fn func(token string) Source) Option {
	return func(f *Fetcher) { f.source = fn }
}

// WithTimeout overrides the per-cycle deadline.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.timeout = d }
}

// WithAvatars enables on-disk caching of account avatar images.
func WithAvatars(c *avatar.Cache) Option {
	return func(f *Fetcher) { f.avatars = c }
}

const defaultTimeout = 30 * time.Second

// New creates a Fetcher backed by the given cache.
func New(cache *Cache, opts ...Option) *Fetcher {
	f := &Fetcher{
		cache:   cache,
		timeout: defaultTimeout,
		source: func(token string) Source {
			return todoist.NewClient(token)
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchAll fetches every account concurrently and returns one fully
// materialized input per account, in the order the accounts were given.
func (f *Fetcher) FetchAll(ctx context.Context, accounts []account.Account) []agg.Input {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	inputs := make([]agg.Input, len(accounts))
	var wg sync.WaitGroup
	for i, acct := range accounts {
		wg.Add(1)
		go func(i int, acct account.Account) {
			defer wg.Done()
			inputs[i] = f.fetchOne(ctx, acct)
		}(i, acct)
	}
	wg.Wait()

	return inputs
}

// fetchOne fetches a single account and updates its cache entry. Projects
// and the owner profile are fetched alongside the tasks; a missing profile
// is tolerated (tasks render without avatar data).
func (f *Fetcher) fetchOne(ctx context.Context, acct account.Account) agg.Input {
	src := f.source(acct.Token)

	projects, err := src.Projects(ctx)
	if err != nil {
		log.Printf("fetch: projects for %s (%s): %v, using last good snapshot", acct.DisplayName(), acct.Redacted(), err)
		return f.fallback(acct)
	}

	tasks, err := src.Tasks(ctx)
	if err != nil {
		log.Printf("fetch: tasks for %s (%s): %v, using last good snapshot", acct.DisplayName(), acct.Redacted(), err)
		return f.fallback(acct)
	}

	profile, err := src.User(ctx)
	if err != nil {
		log.Printf("fetch: profile for %s (%s): %v, continuing without it", acct.DisplayName(), acct.Redacted(), err)
		profile = nil
	}
	if f.avatars != nil && profile != nil && profile.AvatarURL != "" {
		if _, err := f.avatars.Fetch(profile.AvatarURL); err != nil {
			log.Printf("fetch: avatar for %s: %v", acct.DisplayName(), err)
		}
	}

	f.cache.Put(acct.Token, Snapshot{
		Tasks:    tasks,
		Projects: projects,
		Profile:  profile,
		Fetched:  time.Now(),
	})

	return agg.Input{Account: acct, Tasks: tasks, Projects: projects, Profile: profile}
}

// fallback returns the last good snapshot for an account, or empty lists
// if it has never fetched successfully.
func (f *Fetcher) fallback(acct account.Account) agg.Input {
	if snap, ok := f.cache.Get(acct.Token); ok {
		return agg.Input{Account: acct, Tasks: snap.Tasks, Projects: snap.Projects, Profile: snap.Profile}
	}
	return agg.Input{Account: acct}
}
