package card

import "testing"

func TestRegistryStaleLoadDiscarded(t *testing.T) {
	r := NewRegistry()

	gen1 := r.BeginLoad("u1", "")
	gen2 := r.BeginLoad("u1", "")

	// The newer load resolves first.
	if !r.CompleteLoad("u1", gen2, Snapshot{ID: "c1", Title: "Newer"}, nil) {
		t.Fatal("latest load must apply")
	}
	// The superseded load resolves late and must be discarded.
	if r.CompleteLoad("u1", gen1, Snapshot{ID: "c1", Title: "Stale"}, nil) {
		t.Fatal("stale load must be discarded")
	}

	if got := r.View("u1", "").Title; got != "Newer" {
		t.Fatalf("expected last initiated load to win, got %q", got)
	}
}

func TestRegistryLoadedFlag(t *testing.T) {
	r := NewRegistry()

	if r.Loaded("u1") {
		t.Fatal("unknown user must not be loaded")
	}

	r.MarkLoaded("u1", "alice@example.com")
	if !r.Loaded("u1") {
		t.Fatal("expected user marked loaded")
	}
	if got := r.View("u1", "").Email; got != "alice@example.com" {
		t.Fatalf("expected default draft seeded with account email, got %q", got)
	}
}

func TestRegistrySaveGuard(t *testing.T) {
	r := NewRegistry()

	if !r.TrySave("u1", "") {
		t.Fatal("first save must be admitted")
	}
	if r.TrySave("u1", "") {
		t.Fatal("second save must be refused while one is outstanding")
	}

	r.EndSave("u1")
	if !r.TrySave("u1", "") {
		t.Fatal("save must be admitted again after the first completes")
	}
}

func TestRegistryViewIsACopy(t *testing.T) {
	r := NewRegistry()
	r.Mutate("u1", "", func(d *Draft) {
		d.AddLink(Link{ID: "l1"})
	})

	view := r.View("u1", "")
	view.SetTitle("mutated copy")
	view.Links[0].ID = "changed"

	fresh := r.View("u1", "")
	if fresh.Title != "" || fresh.Links[0].ID != "l1" {
		t.Fatalf("view mutation leaked into registry: %+v", fresh)
	}
}

func TestRegistryDrop(t *testing.T) {
	r := NewRegistry()
	r.Mutate("u1", "", func(d *Draft) { d.SetTitle("Alice") })

	r.Drop("u1")
	if got := r.View("u1", "").Title; got != "" {
		t.Fatalf("expected fresh draft after drop, got title %q", got)
	}
}
