package music_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vstanisic/fitpal/internal/music"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_HandleGetLink(t *testing.T) {
	h := music.NewHandler()

	testCases := []struct {
		name         string
		platform     string
		expectedLink string
	}{
		{
			name:         "iOS",
			platform:     "ios",
			expectedLink: "youtube-music://",
		},
		{
			name:         "Android",
			platform:     "android",
			expectedLink: "vnd.youtube.music://",
		},
		{
			name:         "UnknownPlatform",
			platform:     "webos",
			expectedLink: "https://music.youtube.com",
		},
		{
			name:         "NoPlatform",
			platform:     "",
			expectedLink: "https://music.youtube.com",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			url := "/music/link"
			if tc.platform != "" {
				url += "?platform=" + tc.platform
			}
			req, err := http.NewRequest("GET", url, nil)
			require.NoError(t, err)

			rec := httptest.NewRecorder()
			h.HandleGetLink(rec, req)
			require.Equal(t, http.StatusOK, rec.Code)

			var resp music.LinkResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.expectedLink, resp.Link)
			assert.Equal(t, "https://music.youtube.com", resp.Fallback)
		})
	}
}
