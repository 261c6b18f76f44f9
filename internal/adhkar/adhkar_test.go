package adhkar

import "testing"

func TestOptionsWellFormed(t *testing.T) {
	if len(Options) == 0 {
		t.Fatal("no dhikr options")
	}

	seen := make(map[string]bool)
	for _, d := range Options {
		if d.ID == "" || d.Text == "" {
			t.Fatalf("option %+v missing id or text", d)
		}
		if d.Target <= 0 {
			t.Fatalf("option %s has target %d", d.ID, d.Target)
		}
		if seen[d.ID] {
			t.Fatalf("duplicate option id %s", d.ID)
		}
		seen[d.ID] = true
	}
}

func TestOptionByID(t *testing.T) {
	d, ok := OptionByID("subhanallah")
	if !ok {
		t.Fatal("subhanallah not found")
	}
	if d.Target != 33 {
		t.Fatalf("subhanallah target = %d, want 33", d.Target)
	}

	if _, ok := OptionByID("nope"); ok {
		t.Fatal("unknown id reported found")
	}
}

func TestCollectionsWellFormed(t *testing.T) {
	wantIDs := []string{"morning", "evening", "prayer", "sleep"}
	if len(Collections) != len(wantIDs) {
		t.Fatalf("have %d collections, want %d", len(Collections), len(wantIDs))
	}

	for i, c := range Collections {
		if c.ID != wantIDs[i] {
			t.Fatalf("collection[%d].ID = %s, want %s", i, c.ID, wantIDs[i])
		}
		if c.Title == "" || len(c.Items) == 0 {
			t.Fatalf("collection %s is empty", c.ID)
		}
		for _, item := range c.Items {
			if item.Text == "" || item.Repeats <= 0 {
				t.Fatalf("collection %s has malformed item %+v", c.ID, item)
			}
		}
		if c.TotalRepeats() <= 0 {
			t.Fatalf("collection %s TotalRepeats = %d", c.ID, c.TotalRepeats())
		}
	}
}

func TestCollectionByID(t *testing.T) {
	c, ok := CollectionByID("morning")
	if !ok || c.Title == "" {
		t.Fatal("morning collection not found")
	}
	if _, ok := CollectionByID("midnight"); ok {
		t.Fatal("unknown collection reported found")
	}
}
