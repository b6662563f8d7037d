package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocal_PutAndDelete(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir, "/uploads/")

	res, err := l.Put(context.Background(), strings.NewReader("png-bytes"), PutInput{
		Filename:    "cat.PNG",
		ContentType: "image/png",
		Size:        9,
	})
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(res.Key, ".png"))
	require.True(t, strings.HasPrefix(res.URL, "/uploads/"))

	data, err := os.ReadFile(filepath.Join(dir, res.Key))
	require.NoError(t, err)
	require.Equal(t, "png-bytes", string(data))

	require.NoError(t, l.Delete(context.Background(), res.Key))
	_, err = os.Stat(filepath.Join(dir, res.Key))
	require.True(t, os.IsNotExist(err))
}

func TestSafeExt(t *testing.T) {
	require.Equal(t, ".png", safeExt("image.PNG"))
	require.Equal(t, ".webp", safeExt("photo.webp"))
	require.Equal(t, "", safeExt("payload.exe"), "unknown extensions are stripped")
	require.Equal(t, "", safeExt("noext"))
}
