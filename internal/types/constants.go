package types

import (
	"os"
	"strings"
)

const ContextUserKey = "user"

const APIBasePath = "/api/v1"

var (
	// Default allowed origins for development: the Vite dev server, the
	// go-app dev server and a local API instance.
	defaultOrigins = []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"http://localhost:8000",
	}

	AllowedOrigins = initAllowedOrigins()
)

func initAllowedOrigins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	if allowedOrigins := os.Getenv("ALLOWED_ORIGINS"); allowedOrigins != "" {
		envOrigins := strings.Split(allowedOrigins, ",")
		for _, origin := range envOrigins {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}
