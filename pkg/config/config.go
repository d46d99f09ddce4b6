// Package config holds the teller's configuration, loaded from the
// environment (optionally seeded from a .env file) through envconfig tags.
package config

// Ledger locates the flat files the teller works against.
type Ledger struct {
	AccountsPath     string `envconfig:"ACCOUNTS_PATH" default:"accounts.csv"`
	TransactionsPath string `envconfig:"TRANSACTIONS_PATH" default:"transactions.csv"`
	FacesDir         string `envconfig:"FACES_DIR" default:"faces"`
}

// SMTP configures the outbound mail submission used for OTP delivery.
// STARTTLS on the submission port, authenticated with the sender credential.
type SMTP struct {
	Host     string `envconfig:"HOST" default:"smtp.gmail.com"`
	Port     int    `envconfig:"PORT" default:"587"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	From     string `envconfig:"FROM"`
}

// OTP configures the one-time-password mail message.
type OTP struct {
	Subject    string `envconfig:"SUBJECT" default:"GV Bank - OTP Verification"`
	BodyPrefix string `envconfig:"BODY_PREFIX" default:"Your GV Bank OTP is: "`
}

// Log configures the application logger.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"teller"`
}

// App is the root configuration.
type App struct {
	Env    string `envconfig:"ENV" default:"development"`
	Ledger Ledger `envconfig:"LEDGER"`
	SMTP   SMTP   `envconfig:"SMTP"`
	OTP    OTP    `envconfig:"OTP"`
	Log    Log    `envconfig:"LOG"`
}
