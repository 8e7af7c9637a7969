package state

import "testing"

func TestTruncate(t *testing.T) {
	records := []string{"a", "b", "c", "d"}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero limit keeps nothing", 0, 0},
		{"negative limit keeps nothing", -1, 0},
		{"limit below length", 2, 2},
		{"limit at length", 4, 4},
		{"limit beyond length", 10, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(records, tt.limit)
			if len(got) != tt.want {
				t.Errorf("Truncate(limit=%d) kept %d records, want %d", tt.limit, len(got), tt.want)
			}
		})
	}
}

func TestPaginate(t *testing.T) {
	// Unsorted on purpose: truncation must happen after sorting.
	actors := []Actor{
		{ActorID: "a3", State: "ALIVE", ClassName: "Reader"},
		{ActorID: "a1", State: "ALIVE", ClassName: "Trainer"},
		{ActorID: "a4", State: "DEAD", ClassName: "Reader"},
		{ActorID: "a2", State: "ALIVE", ClassName: "Trainer"},
	}

	tests := []struct {
		name    string
		opts    ListOptions
		wantIDs []string
	}{
		{
			name:    "sorted and limited",
			opts:    ListOptions{Limit: 2},
			wantIDs: []string{"a1", "a2"},
		},
		{
			name:    "filter runs before limit",
			opts:    ListOptions{Filter: "state=ALIVE", Limit: 2},
			wantIDs: []string{"a1", "a2"},
		},
		{
			name:    "filter and generous limit",
			opts:    ListOptions{Filter: "class_name=Reader", Limit: 100},
			wantIDs: []string{"a3", "a4"},
		},
		{
			name:    "zero limit yields empty page",
			opts:    ListOptions{Limit: 0},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(actors, tt.opts)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Paginate() returned %d records, want %d", len(got), len(tt.wantIDs))
			}
			for _, id := range tt.wantIDs {
				rec, ok := got[id]
				if !ok {
					t.Errorf("Paginate() missing record %q", id)
					continue
				}
				if rec.ActorID != id {
					t.Errorf("Paginate()[%q].ActorID = %q, want %q", id, rec.ActorID, id)
				}
			}
		})
	}
}

func TestPaginateByRefCount(t *testing.T) {
	envs := []RuntimeEnv{
		{RuntimeEnv: map[string]any{"pip": []any{"torch"}}, RefCount: 5},
		{RuntimeEnv: map[string]any{"pip": []any{"scipy"}}, RefCount: 1},
		{RuntimeEnv: map[string]any{"pip": []any{"numpy"}}, RefCount: 5, FailureCount: 1},
		{RuntimeEnv: map[string]any{"pip": []any{"pandas"}}, RefCount: 2},
	}

	t.Run("ascending by reference count", func(t *testing.T) {
		got := PaginateByRefCount(envs, ListOptions{Limit: 10})
		wantCounts := []int64{1, 2, 5, 5}
		if len(got) != len(wantCounts) {
			t.Fatalf("PaginateByRefCount() returned %d records, want %d", len(got), len(wantCounts))
		}
		for i, want := range wantCounts {
			if got[i].RefCount != want {
				t.Errorf("PaginateByRefCount()[%d].RefCount = %d, want %d", i, got[i].RefCount, want)
			}
		}
	})

	t.Run("equal counts keep arrival order", func(t *testing.T) {
		got := PaginateByRefCount(envs, ListOptions{Limit: 10})
		// torch arrived before numpy; both have RefCount 5.
		if got[2].FailureCount != 0 || got[3].FailureCount != 1 {
			t.Errorf("PaginateByRefCount() reordered records with equal reference counts")
		}
	})

	t.Run("limit truncates after sorting", func(t *testing.T) {
		got := PaginateByRefCount(envs, ListOptions{Limit: 2})
		if len(got) != 2 {
			t.Fatalf("PaginateByRefCount() returned %d records, want 2", len(got))
		}
		if got[0].RefCount != 1 || got[1].RefCount != 2 {
			t.Errorf("PaginateByRefCount() kept counts %d,%d, want 1,2", got[0].RefCount, got[1].RefCount)
		}
	})

	t.Run("filter applies before sorting", func(t *testing.T) {
		got := PaginateByRefCount(envs, ListOptions{Filter: "ref_cnt=5", Limit: 10})
		if len(got) != 2 {
			t.Fatalf("PaginateByRefCount() returned %d records, want 2", len(got))
		}
	})
}
