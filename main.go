package main

import (
	"github.com/smartfinances/botops/cmd"
	"github.com/smartfinances/botops/pkg/logger"
	"github.com/smartfinances/botops/pkg/telemetry"
)

func main() {
	logger.InitializeWithFallback()
	if err := telemetry.Init("botops"); err != nil {
		logger.L().Warn("Telemetry disabled: " + err.Error())
	}

	cmd.Execute()
}
