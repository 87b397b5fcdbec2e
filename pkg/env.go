package pkg

import "os"

// Getenv returns value of environment variable by key, falling back to
// defaultValue only if the key is not present at all. An empty value that is
// explicitly set wins over the default.
func Getenv(key, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}

	return value
}
