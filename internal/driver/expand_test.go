package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fluo/internal/source"
)

const printProgram = `syntax print -> statement {
    parse { print $value ; }
    eval {
        if $value is int {
            ` + "`std::core::print($value);`" + `
        } else {
            comp::raise("Invalid print type " + $value.type);
        }
    }
}
print 10;
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testCache(t *testing.T) *DiskCache {
	t.Helper()
	return &DiskCache{dir: t.TempDir()}
}

func TestExpandFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "main.fl", printProgram)

	res, err := Expand(path, ExpandOptions{})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if res.Failed {
		for _, d := range res.Parse.Bag.Items() {
			t.Logf("diag: %s %s", d.Code.ID(), d.Message)
		}
		t.Fatal("Expand must succeed")
	}
	if res.Cached {
		t.Error("first run must not be cached")
	}
	if !strings.Contains(res.Output, "std::core::print(10);") {
		t.Errorf("output missing lowered call: %q", res.Output)
	}
	if strings.Contains(res.Output, "syntax") {
		t.Errorf("syntax declaration must not survive: %q", res.Output)
	}
}

func TestExpandCacheHit(t *testing.T) {
	path := writeFile(t, t.TempDir(), "main.fl", printProgram)
	cache := testCache(t)
	opts := ExpandOptions{Cache: cache}

	first, err := Expand(path, opts)
	if err != nil || first.Failed {
		t.Fatalf("first Expand: %v failed=%v", err, first != nil && first.Failed)
	}
	if first.Cached {
		t.Fatal("cold cache must miss")
	}

	second, err := Expand(path, opts)
	if err != nil {
		t.Fatalf("second Expand: %v", err)
	}
	if !second.Cached {
		t.Fatal("warm cache must hit")
	}
	if second.Output != first.Output {
		t.Errorf("cached output differs: %q vs %q", second.Output, first.Output)
	}
	if second.Parse != nil {
		t.Error("cache hit must skip parsing")
	}
}

func TestExpandCacheKeyedByOptions(t *testing.T) {
	path := writeFile(t, t.TempDir(), "main.fl", "let x: int = 1;\n")
	cache := testCache(t)

	if _, err := Expand(path, ExpandOptions{Cache: cache}); err != nil {
		t.Fatal(err)
	}
	res, err := Expand(path, ExpandOptions{Cache: cache, AllowKeywordNames: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.Cached {
		t.Fatal("option mismatch must be a cache miss")
	}
}

func TestExpandFailedUnit(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.fl", "let x: int = ;\n")

	res, err := Expand(path, ExpandOptions{})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if !res.Failed {
		t.Fatal("bad input must fail")
	}
	if !res.Parse.Bag.HasErrors() {
		t.Fatal("failure must carry diagnostics")
	}
	if res.Output != "" {
		t.Errorf("failed unit must not produce output: %q", res.Output)
	}
}

func TestExpandMissingFile(t *testing.T) {
	if _, err := Expand(filepath.Join(t.TempDir(), "nope.fl"), ExpandOptions{}); err == nil {
		t.Fatal("missing file must surface an I/O error")
	}
}

func TestExpandDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.fl", "let b: int = 2;\n")
	writeFile(t, dir, "a.fl", "let a: int = 1;\n")
	writeFile(t, dir, "notes.txt", "ignored")

	results, err := ExpandDir(context.Background(), dir, ExpandOptions{}, 2)
	if err != nil {
		t.Fatalf("ExpandDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if filepath.Base(results[0].Path) != "a.fl" || filepath.Base(results[1].Path) != "b.fl" {
		t.Errorf("results must be path-sorted: %s, %s", results[0].Path, results[1].Path)
	}
	for _, r := range results {
		if r.Err != nil || r.Result.Failed {
			t.Errorf("%s: err=%v failed=%v", r.Path, r.Err, r.Result != nil && r.Result.Failed)
		}
	}
}

func TestExpandDirEmpty(t *testing.T) {
	results, err := ExpandDir(context.Background(), t.TempDir(), ExpandOptions{}, 0)
	if err != nil {
		t.Fatalf("ExpandDir: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("got %d results, want 0", len(results))
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache := testCache(t)
	var key source.Digest
	copy(key[:], "0123456789abcdef0123456789abcdef")

	payload := &DiskPayload{
		Schema:            diskCacheSchemaVersion,
		AllowKeywordNames: true,
		Output:            "let x: int = 1;\n",
	}
	if err := cache.Put(key, payload); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var got DiskPayload
	hit, err := cache.Get(key, &got)
	if err != nil || !hit {
		t.Fatalf("Get: hit=%v err=%v", hit, err)
	}
	if got.Output != payload.Output || !got.AllowKeywordNames {
		t.Errorf("payload mismatch: %+v", got)
	}

	var other source.Digest
	if hit, err := cache.Get(other, &got); err != nil || hit {
		t.Errorf("unknown key must miss: hit=%v err=%v", hit, err)
	}
}

func TestDiskCacheSchemaMismatch(t *testing.T) {
	cache := testCache(t)
	var key source.Digest

	if err := cache.Put(key, &DiskPayload{Schema: 999, Output: "x"}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	var got DiskPayload
	if hit, err := cache.Get(key, &got); err != nil || hit {
		t.Fatalf("stale schema must be a miss: hit=%v err=%v", hit, err)
	}
}
