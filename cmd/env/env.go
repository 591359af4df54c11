package env

const (
	// Prefix is the shared env-var prefix for all fxproxy settings
	Prefix = "FXPROXY"

	// DBURLSuffix holds the Postgres connection string
	DBURLSuffix = "_DB_URL"
)
