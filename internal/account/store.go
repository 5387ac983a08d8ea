package account

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glanceworks/tododash/internal/clierr"
	"github.com/glanceworks/tododash/internal/filelock"
)

const (
	fileMode = 0o600
	dirMode  = 0o750
)

// ErrNotFound marks a lookup for an account token that is not in the store.
var ErrNotFound = errors.New("account not found")

// Store persists the accounts of one dashboard instance as a JSON file
// (<instance>-accounts.json) inside the instance directory.
type Store struct {
	dir        string
	instanceID string
}

// NewStore creates a store for the given instance directory and id.
func NewStore(dir, instanceID string) *Store {
	return &Store{dir: dir, instanceID: instanceID}
}

// Path returns the absolute path of the accounts file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, s.instanceID+"-accounts.json")
}

// Dir returns the instance directory.
func (s *Store) Dir() string {
	return s.dir
}

// Load reads all accounts. A missing file yields an empty list.
func (s *Store) Load() ([]Account, error) {
	data, err := os.ReadFile(s.Path()) //nolint:gosec // store path from trusted dir
	if err != nil {
		if os.IsNotExist(err) {
			return []Account{}, nil
		}
		return nil, fmt.Errorf("reading accounts: %w", err)
	}

	var accounts []Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("parsing accounts: %w", err)
	}
	return accounts, nil
}

// Save writes the full account list, creating the instance directory if
// needed. Writes are serialized with an advisory lock.
func (s *Store) Save(accounts []Account) error {
	if err := os.MkdirAll(s.dir, dirMode); err != nil {
		return fmt.Errorf("creating instance directory: %w", err)
	}

	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling accounts: %w", err)
	}

	unlock, err := filelock.Lock(s.Path() + ".lock")
	if err != nil {
		return fmt.Errorf("locking accounts: %w", err)
	}
	defer unlock() //nolint:errcheck // release is best-effort

	return os.WriteFile(s.Path(), data, fileMode)
}

// Add appends a new account. Tokens are unique within a store.
func (s *Store) Add(a Account) error {
	if a.Token == "" || a.Name == "" {
		return clierr.New(clierr.InvalidInput, "account requires a name and a token")
	}

	accounts, err := s.Load()
	if err != nil {
		return err
	}
	for _, existing := range accounts {
		if existing.Token == a.Token {
			return clierr.Newf(clierr.AccountExists, "account with token %s already exists", a.Redacted())
		}
	}

	return s.Save(append(accounts, a))
}

// Update replaces the account with the same token.
func (s *Store) Update(a Account) error {
	if a.Token == "" || a.Name == "" {
		return clierr.New(clierr.InvalidInput, "account requires a name and a token")
	}

	accounts, err := s.Load()
	if err != nil {
		return err
	}
	for i, existing := range accounts {
		if existing.Token == a.Token {
			accounts[i] = a
			return s.Save(accounts)
		}
	}
	return clierr.Newf(clierr.AccountNotFound, "no account with token %s", a.Redacted())
}

// Remove deletes the account with the given token.
func (s *Store) Remove(token string) error {
	accounts, err := s.Load()
	if err != nil {
		return err
	}

	kept := accounts[:0]
	for _, existing := range accounts {
		if existing.Token != token {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(accounts) {
		return clierr.New(clierr.AccountNotFound, "no account with that token")
	}
	return s.Save(kept)
}
