package config

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

type ChatId []string

func (c *ChatId) Set(value string) error {
	*c = append(*c, value)
	return nil
}

func (c *ChatId) String() string {
	return strings.Join(*c, ",")
}

func (c *ChatId) ToInt64() []int64 {
	var ids []int64
	for _, entry := range *c {
		for _, id := range strings.Split(entry, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
			if err != nil {
				continue
			}
			ids = append(ids, id)
		}
	}
	return ids
}

const (
	SourceFiles = "files"
	SourceModem = "modem"
)

type Config struct {
	BotToken        string
	AdminId         ChatId
	Endpoint        string
	PreferencesDir  string
	PlatformVersion string
	Tablet          bool
	Source          string
	EUICC           bool
	Timeout         time.Duration
	Verbose         bool
}

var C = new(Config)

var (
	ErrBotTokenRequired = errors.New("bot token is required")
	ErrAdminIdRequired  = errors.New("admin id is required")
	ErrEndpointRequired = errors.New("profile endpoint is required")
	ErrUnknownSource    = errors.New("source must be files or modem")
)

// IsValid checks the settings every command needs.
func (c *Config) IsValid() error {
	if c.Endpoint == "" {
		return ErrEndpointRequired
	}
	if c.Source != SourceFiles && c.Source != SourceModem {
		return ErrUnknownSource
	}
	return nil
}

// IsBotValid checks the settings of the Telegram bot.
func (c *Config) IsBotValid() error {
	if err := c.IsValid(); err != nil {
		return err
	}
	if c.BotToken == "" {
		return ErrBotTokenRequired
	}
	if len(c.AdminId.ToInt64()) == 0 {
		return ErrAdminIdRequired
	}
	return nil
}
