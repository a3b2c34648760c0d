package logger

import "sync"

type LoggerArg struct {
	Key   string
	Value string
}

type GlobalLoggerConfig struct {
	Args []LoggerArg
}

var (
	defaultLogger *Logger
	once          sync.Once
)

func InitDefaultLogger(config GlobalLoggerConfig) {
	once.Do(func() {
		defaultLogger = New()
		for _, arg := range config.Args {
			defaultLogger.zl = defaultLogger.zl.With().Str(arg.Key, arg.Value).Logger()
		}
	})
}

func Default() *Logger {
	return defaultLogger
}
