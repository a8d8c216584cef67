package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ"},
		{"https://m.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ?si=share", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/live/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"dQw4w9WgXcQ", "dQw4w9WgXcQ"},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, err := ExtractVideoID(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractVideoIDRejects(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"https://example.com/watch?v=dQw4w9WgXcQ",
		"https://youtube.com/watch",
		"https://youtu.be/",
		"https://youtube.com/watch?v=tooshort",
		"not a url at all",
	}
	for _, url := range tests {
		t.Run(url, func(t *testing.T) {
			_, err := ExtractVideoID(url)
			assert.Error(t, err)
		})
	}
}

func TestComposeVideoText(t *testing.T) {
	full := ComposeVideoText("https://youtu.be/dQw4w9WgXcQ", Metadata{
		Title:       "Never Gonna Give You Up",
		Channel:     "Rick Astley",
		Description: "The official video.",
	})
	assert.Contains(t, full, "URL: https://youtu.be/dQw4w9WgXcQ")
	assert.Contains(t, full, "Title: Never Gonna Give You Up")
	assert.Contains(t, full, "Channel: Rick Astley")
	assert.Contains(t, full, "Description:\nThe official video.")

	bare := ComposeVideoText("https://youtu.be/dQw4w9WgXcQ", Metadata{})
	assert.Equal(t, "URL: https://youtu.be/dQw4w9WgXcQ", bare)
}
