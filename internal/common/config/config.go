package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig          `mapstructure:"app"`
	Server        ServerConfig       `mapstructure:"server"`
	Intake        IntakeConfig       `mapstructure:"intake"`
	Render        RenderConfig       `mapstructure:"render"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Logging       LoggingConfig      `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
	CompanyName string `mapstructure:"company_name"`
}

type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
	RateLimit       int    `mapstructure:"rate_limit"`       // requests per minute per IP
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type IntakeConfig struct {
	MaxPhotoBytes  int64 `mapstructure:"max_photo_bytes"`
	MaxResumeBytes int64 `mapstructure:"max_resume_bytes"`
	MaxFormMemory  int64 `mapstructure:"max_form_memory"`
}

type RenderConfig struct {
	FontName string `mapstructure:"font_name"`
	FontPath string `mapstructure:"font_path"`
}

type NotificationConfig struct {
	Provider   string     `mapstructure:"provider"` // "smtp" or "ses"
	AdminEmail string     `mapstructure:"admin_email"`
	FromEmail  string     `mapstructure:"from_email"`
	SMTP       SMTPConfig `mapstructure:"smtp"`
	SES        SESConfig  `mapstructure:"ses"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	UseTLS   bool   `mapstructure:"use_tls"`
}

type SESConfig struct {
	Region string `mapstructure:"region"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
