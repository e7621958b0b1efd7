package fragtools

import "testing"

func TestVersion(t *testing.T) {
	if Version() == "" {
		t.Error("Version() returned empty string")
	}
	if Version() != version {
		t.Errorf("Version() = %q, want %q", Version(), version)
	}
}
