package config

type Config struct {
	// origin of the remote serika backend, e.g. https://beta-api.serika.dev
	APIBaseURL string

	// name of the cookie carrying the session token (default "auth_token")
	AuthCookieName string

	// secret for the prefs session and sealed credential cookies
	SessionSecret string

	CORSAllowedOrigins []string
	Environment        string

	// encrypt credential cookies with keys derived from SessionSecret
	SealCredentialCookies bool

	// OTLP gRPC collector address, tracing is disabled when empty
	OTLPEndpoint string
}
