package httpassert

import (
	"github.com/bsv-blockchain/go-http-assertions/pkg/config"
	"github.com/bsv-blockchain/go-http-assertions/pkg/internal/logging"
	"github.com/bsv-blockchain/go-http-assertions/pkg/serializer"
)

// Configure installs the process-wide serializer and library logger described by cfg,
// replacing what was read from the environment at startup. It is not safe to call while
// assertions run concurrently.
//
//	defer httpassert.Configure(cfg)()
func Configure(cfg config.Config) (restore func()) {
	restoreSerializer := serializer.Save()
	serializer.Use(serializer.FromConfig(cfg))
	restoreLogger := logging.Configure(cfg)

	return func() {
		restoreLogger()
		restoreSerializer()
	}
}
