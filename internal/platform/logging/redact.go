package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	jwtPattern         = regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`)
	authHeaderPattern  = regexp.MustCompile(`(?i)^(bearer|basic)\s+.+$`)
	mysqlDSNPattern    = regexp.MustCompile(`^[^:@/\s]+:[^@\s]+@(tcp|unix)\(`)
	awsAccessKeyFormat = regexp.MustCompile(`^(AKIA|ASIA)[A-Z0-9]{16}$`)
)

// credentialFields are attribute and struct field names whose values never
// reach a log sink.
var credentialFields = []string{
	"password", "secret", "token", "apiKey", "api_key",
	"authorization", "Authorization", "cookie", "Cookie",
	"dsn", "DSN",
	"AccessKeyID", "access_key_id", "SecretAccessKey", "secret_access_key",
}

// DefaultRedactOptions covers the secrets this service handles: store
// credentials (MySQL DSN, AWS keys) and HTTP auth headers.
func DefaultRedactOptions() []masq.Option {
	opts := make([]masq.Option, 0, len(credentialFields)+6)
	for _, name := range credentialFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	return append(opts,
		masq.WithFieldPrefix("secret"),
		masq.WithFieldPrefix("private"),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(authHeaderPattern),
		masq.WithRegex(mysqlDSNPattern),
		masq.WithRegex(awsAccessKeyFormat),
	)
}

// NewReplaceAttr returns a slog ReplaceAttr func applying DefaultRedactOptions
// plus opts.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(DefaultRedactOptions(), opts...)...)
}
