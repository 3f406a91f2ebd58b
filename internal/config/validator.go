package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists the environment variables every deployment must set
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"API_KEY",
	"STORAGE_DRIVER",
}

// DriverEnvVars lists the extra variables each storage driver needs
var DriverEnvVars = map[string][]string{
	StorageMemory:   nil,
	StorageSQLite:   {"SQLITE_PATH"},
	StoragePostgres: {"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME"},
}

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}
	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	required := append([]string(nil), RequiredEnvVars...)
	driver := strings.ToLower(os.Getenv("STORAGE_DRIVER"))
	if driver != "" {
		extra, ok := DriverEnvVars[driver]
		if !ok {
			return fmt.Errorf("unsupported STORAGE_DRIVER %q", driver)
		}
		required = append(required, extra...)
	}

	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	if os.Getenv("DB_PASSWORD") == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if os.Getenv("API_KEY") == "generate_with_openssl_rand_hex_32" {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if strings.EqualFold(os.Getenv("STORAGE_DRIVER"), StorageMemory) {
		warnings = append(warnings, "STORAGE_DRIVER is memory - matches are lost on restart")
	}
	if os.Getenv("S3_BUCKET") != "" && os.Getenv("S3_ENDPOINT") == "" && os.Getenv("S3_REGION") == "" {
		warnings = append(warnings, fmt.Sprintf("S3_BUCKET is set without S3_REGION - uploads default to %s", DefaultS3Region))
	}
	return warnings, nil
}
