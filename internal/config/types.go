package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	Turso         TursoConfig
	Slack         SlackConfig
	Access        AccessConfig
	ProjectID     string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

// AccessConfig carries the two static allow-lists gating privileged
// actions. ProfileEditEmails must be a subset of DataEntryEmails.
type AccessConfig struct {
	DataEntryEmails   []string
	ProfileEditEmails []string
}
