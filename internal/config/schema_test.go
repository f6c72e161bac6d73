package config

import "testing"

func TestSchemaProperties(t *testing.T) {
	s := Schema()
	if s.Properties == nil {
		t.Fatalf("schema has no properties")
	}
	for _, key := range []string{"defaultTool", "defaultFlags"} {
		if _, ok := s.Properties.Get(key); !ok {
			t.Fatalf("schema missing property %q", key)
		}
	}
	if s.Title != FileName {
		t.Fatalf("unexpected schema title %q", s.Title)
	}
}
