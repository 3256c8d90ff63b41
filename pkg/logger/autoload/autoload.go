// Package autoload initializes the global logger from the LOG_* environment
// on import. Log output goes to stderr: stdout is reserved for the tool
// transport.
package autoload

import (
	configx "github.com/greennext/shopping-gateway/pkg/config"
	logx "github.com/greennext/shopping-gateway/pkg/logger"
)

func init() {
	logx.Init(*configx.MustNew[logx.Config]("LOG"))
}
