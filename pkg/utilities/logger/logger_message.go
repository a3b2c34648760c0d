package logger_message

import (
	"github.com/zkproofport/proofport-app-demo/pkg/utilities"
	"github.com/zkproofport/proofport-app-demo/pkg/utilities/timeutil"
)

type LoggerMessage struct {
	Level     string           `json:"level"`
	Message   string           `json:"message"`
	Timestamp timeutil.TimeUTC `json:"timestamp"`
}

func (lm LoggerMessage) Serialize() ([]byte, error) {
	return utilities.Serialize[LoggerMessage](lm)
}
