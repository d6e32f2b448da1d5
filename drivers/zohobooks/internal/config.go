package driver

import (
	"fmt"
	"time"

	"github.com/openledgerio/booksync/constants"
	"github.com/openledgerio/booksync/utils"
	"github.com/openledgerio/booksync/utils/typeutils"
)

// Config is the source configuration supplied via --config.
type Config struct {
	ClientID     string `json:"client_id" validate:"required"`
	ClientSecret string `json:"client_secret" validate:"required"`
	RefreshToken string `json:"refresh_token" validate:"required"`
	// AccountsServer is the regional accounts host the refresh token was
	// issued by, e.g. "https://accounts.zoho.eu". It selects the API
	// data-center host.
	AccountsServer string `json:"accounts_server,omitempty"`
	StartDate      string `json:"start_date" validate:"required"`
	// ReportsStartDate overrides the report window origin; reports re-read
	// whole months, so a later origin keeps the window small.
	ReportsStartDate string `json:"reports_start_date,omitempty"`
	// OrganizationID pins extraction to a single tenant; empty syncs every
	// organization the token can see.
	OrganizationID string `json:"organization_id,omitempty"`

	UseItemDetails  bool   `json:"use_item_details,omitempty"`
	UseSalesDetails bool   `json:"use_sales_details,omitempty"`
	UserAgent       string `json:"user_agent,omitempty"`

	MaxRetries      int `json:"max_retries,omitempty"`
	CooldownSeconds int `json:"cooldown_seconds,omitempty"`
}

func (c *Config) Validate() error {
	if c.MaxRetries <= 0 {
		c.MaxRetries = constants.DefaultRetryMaxAttempts
	}
	if c.CooldownSeconds < 0 {
		c.CooldownSeconds = 0
	}
	if c.UserAgent == "" {
		c.UserAgent = "booksync/1.0"
	}
	if c.StartDate != "" {
		if _, err := typeutils.ParseTimestamp(c.StartDate); err != nil {
			return fmt.Errorf("invalid start_date: %s", err)
		}
	}
	if c.ReportsStartDate != "" {
		if _, err := typeutils.ParseTimestamp(c.ReportsStartDate); err != nil {
			return fmt.Errorf("invalid reports_start_date: %s", err)
		}
	}
	return utils.Validate(c)
}

func (c *Config) Cooldown() time.Duration {
	if c.CooldownSeconds > 0 {
		return time.Duration(c.CooldownSeconds) * time.Second
	}
	return constants.DefaultCooldown
}
