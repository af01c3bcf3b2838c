package config

// EnvPrefix namespaces every QuestLedger environment variable.
const EnvPrefix = "QUESTLEDGER"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names shared between Load, tests, and deploy tooling.
const (
	EnvAppEnv     = "QUESTLEDGER_APP_ENV"
	EnvPort       = "QUESTLEDGER_APP_PORT"
	EnvDBDSN      = "QUESTLEDGER_DB_DSN"
	EnvDBHost     = "QUESTLEDGER_DB_HOST"
	EnvDBUser     = "QUESTLEDGER_DB_USER"
	EnvDBName     = "QUESTLEDGER_DB_NAME"
	EnvRedisURL   = "QUESTLEDGER_REDIS_URL"
	EnvJWTSecret  = "QUESTLEDGER_JWT_SECRET"
	EnvJWTIssuer  = "QUESTLEDGER_JWT_ISSUER"
	EnvJWTExpMins = "QUESTLEDGER_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
