package storage

import (
	"context"
	"strings"
	"testing"
)

func TestObjectName(t *testing.T) {
	tests := []struct {
		in      string
		wantExt string
	}{
		{in: "receipt.PNG", wantExt: ".png"},
		{in: "photo.jpeg", wantExt: ".jpeg"},
		{in: "noext", wantExt: ""},
		{in: "weird.extension-way-too-long", wantExt: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			name := ObjectName(tt.in)
			if tt.wantExt != "" && !strings.HasSuffix(name, tt.wantExt) {
				t.Errorf("ObjectName(%q) = %q, want suffix %q", tt.in, name, tt.wantExt)
			}
			if tt.wantExt == "" && strings.Contains(name, ".") {
				t.Errorf("ObjectName(%q) = %q, want no extension", tt.in, name)
			}
		})
	}

	if ObjectName("a.png") == ObjectName("a.png") {
		t.Error("expected unique names")
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore("receipts")

	ref, err := s.Store(context.Background(), "receipt.png", "image/png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(ref, "memory://receipts/") || !strings.HasSuffix(ref, ".png") {
		t.Errorf("unexpected reference %q", ref)
	}

	obj, ok := s.Get(ref)
	if !ok {
		t.Fatal("expected stored object")
	}
	if string(obj.Data) != "png-bytes" || obj.ContentType != "image/png" {
		t.Errorf("unexpected object %+v", obj)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Store(ctx, "late.png", "image/png", strings.NewReader("x")); err == nil {
		t.Error("expected error for cancelled context")
	}
}
