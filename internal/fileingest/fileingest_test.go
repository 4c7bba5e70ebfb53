package fileingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiscoverPostFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "plain text")
	writeFile(t, dir, "b.md", "# markdown")
	writeFile(t, dir, "c.html", "<p>html</p>")
	writeFile(t, dir, "d.jpg", "not a post")
	writeFile(t, dir, ".hidden.txt", "skipped")
	writeFile(t, dir, "nested/e.TXT", "case-insensitive extension")
	writeFile(t, dir, ".git/f.txt", "inside hidden dir")

	files, err := DiscoverPostFiles(context.Background(), dir)
	require.NoError(t, err)

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	assert.ElementsMatch(t, []string{"a.txt", "b.md", "c.html", "e.TXT"}, names)
}

func TestExtractFileMeta(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "12345")

	meta, err := ExtractFileMeta(path)
	require.NoError(t, err)
	assert.Equal(t, "a.txt", meta.Name)
	assert.Equal(t, path, meta.Path)
	assert.Equal(t, int64(5), meta.Size)
	assert.False(t, meta.ModTime.IsZero())
}

func TestStripHTML(t *testing.T) {
	raw := `<html><head><style>body{color:red}</style></head>
<body><h1>Title</h1><p>Python <b>rocks</b>.</p><script>var x = 1;</script></body></html>`

	assert.Equal(t, "Title Python rocks .", StripHTML(raw))
}

func TestStripHTMLPlainText(t *testing.T) {
	assert.Equal(t, "just text", StripHTML("just text"))
	assert.Equal(t, "", StripHTML(""))
}
