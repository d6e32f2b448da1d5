package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAPIBase(t *testing.T) {
	tests := []struct {
		accountsServer string
		want           string
	}{
		{"", "https://www.zohoapis.com/books/v3"},
		{"https://accounts.zoho.com", "https://www.zohoapis.com/books/v3"},
		{"https://accounts.zoho.eu", "https://www.zohoapis.eu/books/v3"},
		{"https://accounts.zoho.in", "https://www.zohoapis.in/books/v3"},
		// .com.au must not be shadowed by the .com suffix
		{"https://accounts.zoho.com.au", "https://www.zohoapis.com.au/books/v3"},
		{"https://accounts.zoho.com.cn", "https://www.zohoapis.com.cn/books/v3"},
		{"https://accounts.zoho.jp/", "https://www.zohoapis.jp/books/v3"},
		{"https://accounts.zoho.sa", "https://www.zohoapis.sa/books/v3"},
		{"https://accounts.example.org", "https://www.zohoapis.com/books/v3"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, resolveAPIBase(tt.accountsServer), tt.accountsServer)
	}
}

func TestConfigDefaults(t *testing.T) {
	config := &Config{
		ClientID:     "id",
		ClientSecret: "secret",
		RefreshToken: "token",
		StartDate:    "2020-01-01",
	}
	assert.NoError(t, config.Validate())
	assert.Equal(t, 10, config.MaxRetries)
	assert.Equal(t, "booksync/1.0", config.UserAgent)
}

func TestConfigValidation(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		config := &Config{StartDate: "2020-01-01"}
		assert.Error(t, config.Validate())
	})

	t.Run("bad start date", func(t *testing.T) {
		config := &Config{
			ClientID:     "id",
			ClientSecret: "secret",
			RefreshToken: "token",
			StartDate:    "yesterday",
		}
		assert.ErrorContains(t, config.Validate(), "start_date")
	})
}
