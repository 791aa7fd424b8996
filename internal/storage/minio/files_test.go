package minio

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fxlibrary/fxlibrary/internal/config"
)

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"setup.hiplc", "setup.hiplc"},
		{"  shockwave_v2.hip  ", "shockwave_v2.hip"},
		// Путь отрезается до имени файла.
		{"../../etc/passwd", "passwd"},
		{"dir/sub/file.hda", "file.hda"},
		// Спецсимволы и пустые имена отбрасываются.
		{"..", ""},
		{".", ""},
		{"file?.hip", ""},
		{"file%00.hip", ""},
		{"back\\slash.hip", ""},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, sanitizeFilename(tc.in), "sanitize %q", tc.in)
	}
}

func TestIsAllowedContentType(t *testing.T) {
	t.Parallel()

	allow := []string{"image/jpeg", "image/png", "video/mp4"}

	require.True(t, isAllowedContentType(allow, "image/png"))
	require.False(t, isAllowedContentType(allow, "image/svg+xml"))
	require.False(t, isAllowedContentType(allow, ""))
	require.False(t, isAllowedContentType(nil, "image/png"))
}

func TestPublicURL(t *testing.T) {
	t.Parallel()

	s := &FileStorage{cfg: &config.Config{}}
	// Без PublicBaseURL публичных ссылок нет.
	require.Empty(t, s.PublicURL("previews/a/p1.webp"))

	s.cfg.S3.PublicBaseURL = "https://cdn.example.com/"
	require.Equal(t, "https://cdn.example.com/previews/a/p1.webp", s.PublicURL("previews/a/p1.webp"))
}
