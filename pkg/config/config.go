// Package config loads minutes-pilot settings from minutes.yaml, the
// environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "minutes"

// EnvPrefix prefixes environment overrides: server.port is MINUTES_SERVER_PORT.
const EnvPrefix = "MINUTES"

// Config holds every setting. Integrations with an empty target are disabled.
type Config struct {
	Port     string
	DBPath   string
	Timezone string

	ArchiveDir  string
	TemplateDir string
	GitSSHKey   string

	AIProvider string
	AIModel    string

	GmailCredentials string
	GmailFrom        string
	TelegramChatID   int64
	DiscordChannelID string

	CalendarCredentials string
	CalendarID          string

	DriveCredentials string
	DriveFolderID    string
}

// Defaults returns the configuration used when nothing is set.
func Defaults() *Config {
	return &Config{
		Port:       "8080",
		DBPath:     "minutes.db",
		Timezone:   "Asia/Tehran",
		AIProvider: "gemini",
	}
}

// New returns a viper instance with defaults and environment overrides set
// up. Callers may bind flags to it before calling Load.
func New() *viper.Viper {
	d := Defaults()
	v := viper.New()
	v.SetDefault("server.port", d.Port)
	v.SetDefault("db.path", d.DBPath)
	v.SetDefault("timezone", d.Timezone)
	v.SetDefault("archive.dir", d.ArchiveDir)
	v.SetDefault("archive.template_dir", d.TemplateDir)
	v.SetDefault("archive.ssh_key", d.GitSSHKey)
	v.SetDefault("ai.provider", d.AIProvider)
	v.SetDefault("ai.model", d.AIModel)
	v.SetDefault("gmail.credentials", "")
	v.SetDefault("gmail.from", "")
	v.SetDefault("telegram.chat_id", 0)
	v.SetDefault("discord.channel_id", "")
	v.SetDefault("calendar.credentials", "")
	v.SetDefault("calendar.id", "")
	v.SetDefault("drive.credentials", "")
	v.SetDefault("drive.folder_id", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration file into v and maps it onto a Config. An
// empty path looks for minutes.yaml in the working directory; a missing file
// there is not an error. An explicit path must exist.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Port:     v.GetString("server.port"),
		DBPath:   v.GetString("db.path"),
		Timezone: v.GetString("timezone"),

		ArchiveDir:  v.GetString("archive.dir"),
		TemplateDir: v.GetString("archive.template_dir"),
		GitSSHKey:   v.GetString("archive.ssh_key"),

		AIProvider: v.GetString("ai.provider"),
		AIModel:    v.GetString("ai.model"),

		GmailCredentials: v.GetString("gmail.credentials"),
		GmailFrom:        v.GetString("gmail.from"),
		TelegramChatID:   v.GetInt64("telegram.chat_id"),
		DiscordChannelID: v.GetString("discord.channel_id"),

		CalendarCredentials: v.GetString("calendar.credentials"),
		CalendarID:          v.GetString("calendar.id"),

		DriveCredentials: v.GetString("drive.credentials"),
		DriveFolderID:    v.GetString("drive.folder_id"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports settings that cannot work.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("config: server.port must not be empty")
	}
	if c.DBPath == "" {
		return errors.New("config: db.path must not be empty")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("config: invalid timezone %q: %w", c.Timezone, err)
	}
	switch c.AIProvider {
	case "gemini", "openai", "moonshot", "anthropic", "":
	default:
		return fmt.Errorf("config: unknown ai.provider %q", c.AIProvider)
	}
	if c.GmailCredentials != "" && c.GmailFrom == "" {
		return errors.New("config: gmail.from is required with gmail.credentials")
	}
	if c.CalendarCredentials != "" && c.CalendarID == "" {
		return errors.New("config: calendar.id is required with calendar.credentials")
	}
	if c.DriveCredentials != "" && c.DriveFolderID == "" {
		return errors.New("config: drive.folder_id is required with drive.credentials")
	}
	return nil
}

// Location returns the time zone used to compute today's Shamsi date.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// AIKey returns the API key for the configured provider from the environment.
func (c *Config) AIKey() string {
	switch c.AIProvider {
	case "openai":
		return os.Getenv("OPENAI_API_KEY")
	case "moonshot":
		return os.Getenv("MOONSHOT_API_KEY")
	case "anthropic":
		return os.Getenv("ANTHROPIC_API_KEY")
	default:
		return os.Getenv("GEMINI_API_KEY")
	}
}

// TelegramToken returns the bot token from the environment.
func TelegramToken() string { return os.Getenv("TELEGRAM_TOKEN") }

// DiscordToken returns the bot token from the environment.
func DiscordToken() string { return os.Getenv("DISCORD_TOKEN") }
