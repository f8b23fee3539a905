package pathlocal

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTree creates files (with their parents) below root and returns root.
func buildTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range files {
		full := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte("content of "+name), 0644))
	}
	return root
}

func relAll(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	sort.Strings(out)
	return out
}

func TestListing(t *testing.T) {
	root := buildTree(t, "a/x.txt", "a/b/y.txt", "a/b/z.md", "top.txt")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0755))

	files, err := ListFiles(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"a/b/y.txt", "a/b/z.md", "a/x.txt", "top.txt"}, relAll(t, root, files))

	dirs, err := ListDirs(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a/b", "empty"}, relAll(t, root, dirs))

	subDirs, err := ListSubDirs(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "empty"}, relAll(t, root, subDirs))

	all, err := List(root, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestListing_Errors(t *testing.T) {
	root := buildTree(t, "file.txt")

	_, err := ListFiles(filepath.Join(root, "missing"))
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)

	_, err = ListDirs(filepath.Join(root, "file.txt"))
	assert.True(t, errors.Is(err, fs.ErrInvalid), "got %v", err)
}

func TestParent(t *testing.T) {
	root := string(os.PathSeparator)

	parent, ok := Parent(filepath.Join(root, "a", "b"))
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(root, "a"), parent)

	_, ok = Parent(root)
	assert.False(t, ok)
}

func TestMakeDir(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "one", "two")

	err := MakeDir(nested, false, false, 0755)
	assert.Error(t, err, "parents are required")

	require.NoError(t, MakeDir(nested, true, false, 0755))
	assert.DirExists(t, nested)

	assert.NoError(t, MakeDir(nested, true, true, 0755))
	err = MakeDir(nested, true, false, 0755)
	assert.True(t, errors.Is(err, fs.ErrExist), "got %v", err)
}

func TestTouch(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "deep", "er", "file.txt")

	require.NoError(t, Touch(target, 0644, 0755))
	assert.FileExists(t, target)

	require.NoError(t, os.WriteFile(target, []byte("keep"), 0644))
	require.NoError(t, Touch(target, 0644, 0755))

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(content))
}

func TestCopyFile(t *testing.T) {
	root := buildTree(t, "src.bin")
	src := filepath.Join(root, "src.bin")
	dest := filepath.Join(root, "dest.bin")

	var lastTotal, lastCopied int64
	opts := pathmodels.DefaultCopyOptions()
	opts.BufferSize = 4
	opts.ProgressFunc = func(total, copied int64) {
		lastTotal, lastCopied = total, copied
	}

	require.NoError(t, CopyFile(src, dest, opts))

	want, err := os.ReadFile(src)
	require.NoError(t, err)
	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, int64(len(want)), lastTotal)
	assert.Equal(t, lastTotal, lastCopied)

	err = CopyFile(root, filepath.Join(root, "dir-copy"))
	assert.True(t, errors.Is(err, pathmodels.ErrInvalid), "got %v", err)
}

func TestCopyFile_OntoItself(t *testing.T) {
	root := buildTree(t, "data.txt")
	src := filepath.Join(root, "data.txt")

	err := CopyFile(src, src)
	assert.True(t, errors.Is(err, pathmodels.ErrInvalid), "got %v", err)

	err = CopyFile(src, filepath.Join(root, ".", "data.txt"))
	assert.True(t, errors.Is(err, pathmodels.ErrInvalid), "got %v", err)

	content, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, "content of data.txt", string(content))
}

func TestCopyFile_Empty(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "empty")
	require.NoError(t, os.WriteFile(src, nil, 0644))

	require.NoError(t, CopyFile(src, filepath.Join(root, "empty-copy")))
	info, err := os.Stat(filepath.Join(root, "empty-copy"))
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestMoveAndRename(t *testing.T) {
	root := buildTree(t, "a/file.txt")

	require.NoError(t, Move(filepath.Join(root, "a"), filepath.Join(root, "b")))
	assert.NoDirExists(t, filepath.Join(root, "a"))
	assert.FileExists(t, filepath.Join(root, "b", "file.txt"))

	newPath, err := RenameFile(filepath.Join(root, "b", "file.txt"), "renamed.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "b", "renamed.txt"), newPath)
	assert.FileExists(t, newPath)

	_, err = RenameFile(newPath, filepath.Join("x", "y.txt"))
	assert.True(t, errors.Is(err, fs.ErrInvalid), "got %v", err)

	err = Move(filepath.Join(root, "missing"), filepath.Join(root, "c"))
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
}

func TestRemove(t *testing.T) {
	root := buildTree(t, "dir/file.txt")

	err := Remove(filepath.Join(root, "dir"), false)
	assert.True(t, errors.Is(err, fs.ErrInvalid), "not empty, got %v", err)

	assert.NoError(t, Remove(filepath.Join(root, "nope"), true))
	assert.Error(t, Remove(filepath.Join(root, "nope"), false))

	err = RemoveDir(filepath.Join(root, "dir", "file.txt"), false, true)
	assert.True(t, errors.Is(err, fs.ErrInvalid), "not a directory, got %v", err)

	require.NoError(t, RemoveDir(filepath.Join(root, "dir"), false, true))
	assert.NoDirExists(t, filepath.Join(root, "dir"))
	assert.NoError(t, RemoveDir(filepath.Join(root, "dir"), true, true))
}

func TestText(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "latin1.txt")

	require.NoError(t, WriteText(target, "café", "ISO-8859-1", 0644))

	raw, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, []byte{'c', 'a', 'f', 0xe9}, raw)

	got, err := ReadText(target, "ISO-8859-1")
	require.NoError(t, err)
	assert.Equal(t, "café", got)

	err = WriteText(target, "日本", "ISO-8859-1", 0644)
	assert.Error(t, err)

	_, err = ReadText(target, "no-such-encoding")
	assert.Error(t, err)

	require.NoError(t, WriteText(target, "plain", "", 0644))
	got, err = ReadText(target, "")
	require.NoError(t, err)
	assert.Equal(t, "plain", got)
}

func TestGlob(t *testing.T) {
	root := buildTree(t, "a/x.txt", "a/b/y.txt", "a/b/z.md")

	matches, err := Glob(root, "**/*.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"a/b/y.txt", "a/x.txt"}, relAll(t, root, matches))

	matches, err = Glob(root, "a/*.{txt,md}")
	require.NoError(t, err)
	assert.Equal(t, []string{"a/x.txt"}, relAll(t, root, matches))
}

func TestGlob_MetacharactersInDir(t *testing.T) {
	root := buildTree(t, "build[1]/a.txt", "build[1]/sub/b.txt", "build1/decoy.txt")
	dir := filepath.Join(root, "build[1]")

	matches, err := Glob(dir, "*")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "sub"}, relAll(t, dir, matches))

	matches, err = Glob(dir, "**/*.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "sub/b.txt"}, relAll(t, dir, matches))
}

func TestProvider(t *testing.T) {
	root := buildTree(t, "f.txt")
	p := New()

	assert.True(t, p.Exists(filepath.Join(root, "f.txt")))
	assert.True(t, p.IsFile(filepath.Join(root, "f.txt")))
	assert.False(t, p.IsDir(filepath.Join(root, "f.txt")))
	assert.True(t, p.IsDir(root))
	assert.False(t, p.Exists(filepath.Join(root, "nope")))
	assert.Equal(t, "f.txt", p.Base(p.Join(root, "f.txt")))

	info, err := p.Stat(filepath.Join(root, "f.txt"))
	require.NoError(t, err)
	assert.Equal(t, "f.txt", info.Name)
	assert.False(t, info.IsDir)

	require.NoError(t, p.WriteBytes(filepath.Join(root, "g.bin"), []byte{1, 2, 3}))
	data, err := p.ReadBytes(filepath.Join(root, "g.bin"))
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, data)

	_, err = p.ReadBytes(root)
	assert.True(t, errors.Is(err, fs.ErrInvalid), "got %v", err)
}
