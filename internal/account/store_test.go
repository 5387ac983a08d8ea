package account

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/glanceworks/tododash/internal/clierr"
)

func TestRedacted(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"abcdefgh-full-token", "abcde…"},
		{"abc", "…"},
		{"", "…"},
	}
	for _, tt := range tests {
		a := Account{Token: tt.token}
		if got := a.Redacted(); got != tt.want {
			t.Errorf("Redacted(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := (Account{Name: "Work"}).DisplayName(); got != "Work" {
		t.Errorf("got %q", got)
	}
	if got := (Account{}).DisplayName(); got != "Todoist" {
		t.Errorf("got %q, want Todoist", got)
	}
}

func TestStoreLoadMissing(t *testing.T) {
	store := NewStore(t.TempDir(), "default")
	accounts, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(accounts) != 0 {
		t.Errorf("got %d accounts, want 0", len(accounts))
	}
}

func TestStoreAdd(t *testing.T) {
	store := NewStore(t.TempDir(), "default")

	if err := store.Add(Account{Name: "Work", Token: "tok-1"}); err != nil {
		t.Fatal(err)
	}
	if err := store.Add(Account{Name: "Home", Token: "tok-2"}); err != nil {
		t.Fatal(err)
	}

	accounts, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(accounts) != 2 || accounts[0].Name != "Work" || accounts[1].Name != "Home" {
		t.Errorf("got %+v", accounts)
	}

	t.Run("duplicate token rejected", func(t *testing.T) {
		err := store.Add(Account{Name: "Other", Token: "tok-1"})
		var cliErr *clierr.Error
		if !errors.As(err, &cliErr) || cliErr.Code != clierr.AccountExists {
			t.Fatalf("got %v, want ACCOUNT_EXISTS", err)
		}
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		for _, a := range []Account{{Name: "NoToken"}, {Token: "no-name"}} {
			err := store.Add(a)
			var cliErr *clierr.Error
			if !errors.As(err, &cliErr) || cliErr.Code != clierr.InvalidInput {
				t.Errorf("Add(%+v) = %v, want INVALID_INPUT", a, err)
			}
		}
	})
}

func TestStoreUpdate(t *testing.T) {
	store := NewStore(t.TempDir(), "default")
	if err := store.Add(Account{Name: "Work", Token: "tok-1"}); err != nil {
		t.Fatal(err)
	}

	if err := store.Update(Account{Name: "Job", Token: "tok-1", Color: "#336699"}); err != nil {
		t.Fatal(err)
	}
	accounts, _ := store.Load()
	if accounts[0].Name != "Job" || accounts[0].Color != "#336699" {
		t.Errorf("got %+v", accounts[0])
	}

	t.Run("unknown token", func(t *testing.T) {
		err := store.Update(Account{Name: "Ghost", Token: "nope"})
		var cliErr *clierr.Error
		if !errors.As(err, &cliErr) || cliErr.Code != clierr.AccountNotFound {
			t.Fatalf("got %v, want ACCOUNT_NOT_FOUND", err)
		}
	})
}

func TestStoreRemove(t *testing.T) {
	store := NewStore(t.TempDir(), "default")
	if err := store.Add(Account{Name: "Work", Token: "tok-1"}); err != nil {
		t.Fatal(err)
	}
	if err := store.Add(Account{Name: "Home", Token: "tok-2"}); err != nil {
		t.Fatal(err)
	}

	if err := store.Remove("tok-1"); err != nil {
		t.Fatal(err)
	}
	accounts, _ := store.Load()
	if len(accounts) != 1 || accounts[0].Token != "tok-2" {
		t.Errorf("got %+v", accounts)
	}

	t.Run("unknown token", func(t *testing.T) {
		err := store.Remove("nope")
		var cliErr *clierr.Error
		if !errors.As(err, &cliErr) || cliErr.Code != clierr.AccountNotFound {
			t.Fatalf("got %v, want ACCOUNT_NOT_FOUND", err)
		}
	})
}

func TestStorePathPerInstance(t *testing.T) {
	dir := t.TempDir()
	a := NewStore(dir, "kitchen")
	b := NewStore(dir, "office")

	if err := a.Save([]Account{{Name: "Work", Token: "tok-1"}}); err != nil {
		t.Fatal(err)
	}

	if got := a.Path(); got != filepath.Join(dir, "kitchen-accounts.json") {
		t.Errorf("got path %q", got)
	}
	if _, err := os.Stat(b.Path()); !os.IsNotExist(err) {
		t.Error("office instance should have no accounts file")
	}

	accounts, err := b.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(accounts) != 0 {
		t.Errorf("office instance sees %d accounts, want 0", len(accounts))
	}
}
