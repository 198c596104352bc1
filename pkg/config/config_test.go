package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()

	assert.Equal(t, 8080, GetInt("server.port"))
	assert.Equal(t, "https://openlibrary.org", GetString("open_library.base_url"))
	assert.Equal(t, 100, GetInt("search.page_size"))
	assert.Equal(t, 100, GetInt("search.max_pages"))
	assert.Equal(t, time.Minute, GetDuration("history.dedup_window"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		setup   func()
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			setup:   func() {},
			wantErr: false,
		},
		{
			name: "invalid port",
			setup: func() {
				viper.Set("server.port", -1)
			},
			wantErr: true,
		},
		{
			name: "empty base url",
			setup: func() {
				viper.Set("open_library.base_url", "")
			},
			wantErr: true,
		},
		{
			name: "page cap above 100 is corrected",
			setup: func() {
				viper.Set("search.max_pages", 5000)
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			defer viper.Reset()
			setDefaults()
			tt.setup()

			err := validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.LessOrEqual(t, GetInt("search.max_pages"), 100)
		})
	}
}

func TestConfigStructValidate(t *testing.T) {
	cfg := &Config{
		Server:      ServerConfig{Port: 8080},
		OpenLibrary: OpenLibraryConfig{BaseURL: "https://openlibrary.org"},
	}

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 100, cfg.Search.PageSize)
	assert.Equal(t, 100, cfg.Search.MaxPages)

	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())
}
