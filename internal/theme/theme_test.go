package theme

import "testing"

func TestLookup(t *testing.T) {
	for _, id := range IDs() {
		p, ok := Lookup(id)
		if !ok {
			t.Fatalf("Expected theme %q to exist", id)
		}
		if p.ID != id {
			t.Errorf("Expected palette id %q, got %q", id, p.ID)
		}
		if p.Name == "" || p.Primary == "" || p.Background == "" || p.Info == "" {
			t.Errorf("Palette %q has empty colors: %+v", id, p)
		}
	}

	if _, ok := Lookup("solarized"); ok {
		t.Error("Expected unknown theme to be rejected")
	}
	if Valid("") {
		t.Error("Expected empty id to be invalid")
	}
}

func TestGet_FallsBackToDefault(t *testing.T) {
	if got := Get("nope").ID; got != DefaultID {
		t.Errorf("Expected fallback to %q, got %q", DefaultID, got)
	}
}

func TestApplyDefaults(t *testing.T) {
	p := Palette{ID: Dark, Accent: "#FF0000"}
	p.ApplyDefaults()

	if p.Accent != "#FF0000" {
		t.Errorf("Expected custom accent to survive, got %s", p.Accent)
	}
	if p.Background != darkPalette().Background {
		t.Errorf("Expected dark background, got %s", p.Background)
	}
	if p.Name != "Dark Mode" {
		t.Errorf("Expected name from preset, got %q", p.Name)
	}

	unknown := Palette{ID: "neon"}
	unknown.ApplyDefaults()
	if unknown.ID != DefaultID {
		t.Errorf("Expected unknown preset to become %q, got %q", DefaultID, unknown.ID)
	}
}

func TestMergeFrom(t *testing.T) {
	p := lightPalette()
	p.MergeFrom(Palette{Error: "#000001"})

	if p.Error != "#000001" {
		t.Errorf("Expected merged error color, got %s", p.Error)
	}
	if p.Info != lightPalette().Info {
		t.Errorf("Expected untouched info color, got %s", p.Info)
	}
}
