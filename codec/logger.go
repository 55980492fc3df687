package codec

import "go.uber.org/zap"

// logger is the package-level structured logger for registration-time
// diagnostics. It never participates in the wire format and is never
// touched on the serialize/deserialize hot path — only Map() logs anything
// (including a program compile failure caused by codec resolution).
var logger = zap.NewNop()

// SetLogger installs a structured logger for registration diagnostics.
// Call before any Map calls; like the registry itself, it is not meant to
// be swapped concurrently with traffic.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
