package run

import "time"

type config struct {
	SqlitePath      string        `env:"SQLITE_PATH" envDefault:"companion.sqlite3"`
	AccountBaseURL  string        `env:"ACCOUNT_BASE_URL"`
	AccountToken    string        `env:"ACCOUNT_TOKEN"`
	RescheduleEvery time.Duration `env:"RESCHEDULE_EVERY" envDefault:"30m"`
	TuneInEvery     time.Duration `env:"TUNE_IN_EVERY" envDefault:"1h"`
}
