package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Configuration struct {
	Port uint16
	// Debug, if true, will make the application log all HTTP requests and other events.
	Debug bool
	// DbUrl is the path to the database file.
	DbUrl string
	// QueueDbUrl is the path to the task queue database. Kept separate from the main
	// database so queue polling never contends with request transactions.
	QueueDbUrl       string
	MigrationsFolder string
	// FsRoot is the root of the directory on which uploaded files, such as avatar
	// images, are stored.
	FsRoot string
	// BaseURL is the public URL of the instance, used to build avatar references.
	BaseURL string
	// RequireConfirmedEmail gates reconciliation on the provider having verified
	// the principal's email address.
	RequireConfirmedEmail bool
	// HandleMaxLen is the maximum length of a sanitized handle, before suffixes.
	HandleMaxLen int
	// ServiceToken authorizes calls to the service-level user endpoint.
	ServiceToken string
	// SessionKey is the secret for the cookie session manager.
	SessionKey string

	Jwt   JwtConfig
	OAuth OAuthConfig
}

// JwtConfig describes how to verify access tokens issued by the auth provider.
type JwtConfig struct {
	Secret string
	Issuer string
}

// OAuthConfig holds the authorization-code flow settings for the auth provider.
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	AuthURL      string
	TokenURL     string
	// UserInfoURL is the provider endpoint that returns the authenticated
	// principal for a bearer token.
	UserInfoURL string
}

const DefaultHandleMaxLen = 20

func ReadConfig() (Configuration, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/thoughts")

	v.SetEnvPrefix("thoughts")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", 8080)
	v.SetDefault("dburl", "thoughts.db")
	v.SetDefault("queuedburl", "queue.db")
	v.SetDefault("migrationsfolder", "migrations")
	v.SetDefault("fsroot", "files")
	v.SetDefault("handlemaxlen", DefaultHandleMaxLen)
	v.SetDefault("requireconfirmedemail", false)

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; everything can come from the environment.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Configuration{}, err
		}
	}

	var cfg Configuration
	err := v.Unmarshal(&cfg)
	return cfg, err
}
