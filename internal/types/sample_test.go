package types

import "testing"

func TestSample_Path(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		want string
	}{
		{"absolute", "/tmp/d", "/tmp/d/e7"},
		{"relative", "d", "d/e7"},
		{"trailing slash kept", "d/", "d//e7"},
		{"dot", ".", "./e7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Sample{Dir: tt.dir, Entry: "e7"}
			if got := s.Path(); got != tt.want {
				t.Errorf("Path() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilterConfig_HasPattern(t *testing.T) {
	if (FilterConfig{}).HasPattern() {
		t.Error("HasPattern() = true for zero config, want false")
	}
	if !(FilterConfig{Pattern: "ab"}).HasPattern() {
		t.Error("HasPattern() = false with pattern set, want true")
	}
}
