package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func testRoundTrip(t *testing.T, st Store) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := st.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}
	if err := st.Set(ctx, "k", `{"v":1}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := st.Get(ctx, "k")
	if err != nil || !ok || v != `{"v":1}` {
		t.Fatalf("get: v=%q ok=%v err=%v", v, ok, err)
	}
	if err := st.Set(ctx, "k", `{"v":2}`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, _, _ = st.Get(ctx, "k")
	if v != `{"v":2}` {
		t.Fatalf("overwrite not visible: %q", v)
	}
}

func TestMemoryStore(t *testing.T) {
	testRoundTrip(t, NewMemoryStore())
}

func TestSQLiteStore(t *testing.T) {
	st, err := OpenSQLite(filepath.Join(t.TempDir(), "records.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	testRoundTrip(t, st)
}

func TestSQLiteStoreCreatesParentDir(t *testing.T) {
	st, err := OpenSQLite(filepath.Join(t.TempDir(), "nested", "dir", "records.db"))
	if err != nil {
		t.Fatalf("OpenSQLite with nested path: %v", err)
	}
	if err := st.Set(context.Background(), "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
}
