package handlers

import (
	"konsulta/utils"

	"go.uber.org/zap"
)

// getLogger returns the shared application logger.
func getLogger() *zap.Logger {
	return utils.GetLogger()
}
