package agg

import (
	"testing"

	"github.com/glanceworks/tododash/internal/config"
)

func TestSequence(t *testing.T) {
	groups := []Group{
		{
			Header: &Header{Kind: HeaderProject, Key: "p1", Title: "Work", Count: 2},
			Tasks:  []*Task{{ID: "1"}, {ID: "2"}},
		},
		{
			Header: &Header{Kind: HeaderProject, Key: "p2", Title: "Home", Count: 1},
			Tasks:  []*Task{{ID: "3"}},
		},
	}

	t.Run("headers interleave with tasks", func(t *testing.T) {
		items := Sequence(groups, config.NewDefault())
		wantKinds := []ItemKind{ItemHeader, ItemTask, ItemTask, ItemHeader, ItemTask}
		if len(items) != len(wantKinds) {
			t.Fatalf("got %d items, want %d", len(items), len(wantKinds))
		}
		for i, kind := range wantKinds {
			if items[i].Kind != kind {
				t.Errorf("item %d kind = %q, want %q", i, items[i].Kind, kind)
			}
		}
	})

	t.Run("dividers off drops headers", func(t *testing.T) {
		s := config.NewDefault()
		hide := false
		s.ShowDividers = &hide
		items := Sequence(groups, s)
		if len(items) != 3 {
			t.Fatalf("got %d items, want 3", len(items))
		}
		for _, item := range items {
			if item.Kind != ItemTask {
				t.Errorf("unexpected %q item with dividers off", item.Kind)
			}
		}
	})

	t.Run("headerless group emits tasks only", func(t *testing.T) {
		items := Sequence([]Group{{Tasks: []*Task{{ID: "1"}}}}, config.NewDefault())
		if len(items) != 1 || items[0].Kind != ItemTask {
			t.Fatalf("got %+v, want single task item", items)
		}
	})

	t.Run("global cap covers headers and tasks", func(t *testing.T) {
		s := config.NewDefault()
		s.MaximumEntries = 3
		items := Sequence(groups, s)
		if len(items) != 3 {
			t.Fatalf("got %d items, want 3", len(items))
		}
		// Truncation point lands mid-group: header, two tasks.
		if items[0].Kind != ItemHeader || items[2].Task.ID != "2" {
			t.Errorf("got unexpected truncation %+v", items)
		}
	})
}

func TestSequenceCapInvariant(t *testing.T) {
	for _, limit := range []int{1, 2, 5, 10, 100} {
		s := config.NewDefault()
		s.MaximumEntries = limit

		var groups []Group
		for g := 0; g < 6; g++ {
			groups = append(groups, Group{
				Header: &Header{Kind: HeaderPriority, Key: "k"},
				Tasks:  []*Task{{ID: "a"}, {ID: "b"}, {ID: "c"}},
			})
		}
		if items := Sequence(groups, s); len(items) > limit {
			t.Errorf("limit %d: got %d items", limit, len(items))
		}
	}
}
