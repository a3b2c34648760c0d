package main

import (
	"strconv"
	"time"

	"github.com/zkproofport/proofport-app-demo/pkg/logger"
	"github.com/zkproofport/proofport-app-demo/pkg/rabbitmq"
	"github.com/zkproofport/proofport-app-demo/pkg/utilities"
)

type ServerConfigJson struct {
	LoggerConf   logger.LoggerConfigJson     `json:"logger"`
	RabbitmqConf rabbitmq.RabbitmqConfigJson `json:"rabbitmq"`
	RestConf     RestConfigJson              `json:"rest"`
	UpstreamConf UpstreamConfigJson          `json:"upstreams"`
	ResultsConf  ResultsConfigJson           `json:"results"`
	CallbackConf CallbackConfigJson          `json:"callback"`
	ClientConf   ClientConfigJson            `json:"client"`
	BridgeConf   BridgeConfigJson            `json:"bridge"`
}

func (scj ServerConfigJson) ConvertToDomain() ServerConfig {
	return ServerConfig{
		LoggerConf:   scj.LoggerConf.ConvertToDomain(),
		RabbitmqConf: scj.RabbitmqConf.ConvertToDomain(),
		RestConf:     scj.RestConf.ConvertToDomain(),
		UpstreamConf: scj.UpstreamConf.ConvertToDomain(),
		ResultsConf:  scj.ResultsConf.ConvertToDomain(),
		CallbackConf: CallbackConfig{Secret: scj.CallbackConf.Secret},
		ClientConf: ClientConfig{
			DashboardURL: scj.ClientConf.DashboardURL,
			DemoUser:     scj.ClientConf.DemoUser,
			DemoPassword: scj.ClientConf.DemoPassword,
		},
		BridgeConf: BridgeConfig{Enabled: scj.BridgeConf.Enabled},
	}
}

type ServerConfig struct {
	LoggerConf   logger.LoggerConfig
	RabbitmqConf rabbitmq.RabbitmqConfig
	RestConf     RestConfig
	UpstreamConf UpstreamConfig
	ResultsConf  ResultsConfig
	CallbackConf CallbackConfig
	ClientConf   ClientConfig
	BridgeConf   BridgeConfig
}

func (sc ServerConfig) GetLoggerConfig() logger.LoggerConfig {
	return sc.LoggerConf
}

func (sc ServerConfig) GetRabbitmqConfig() rabbitmq.RabbitmqConfig {
	return sc.RabbitmqConf
}

func (sc ServerConfig) GetRestApiPort() uint16 {
	return sc.RestConf.Port
}

type RestConfigJson struct {
	Port uint16 `json:"port"`
}

type RestConfig struct {
	Port uint16
}

func (rcj RestConfigJson) ConvertToDomain() RestConfig {
	port := rcj.Port
	if env := utilities.EnvOrDefault("PORT", ""); env != "" {
		if parsed, err := strconv.ParseUint(env, 10, 16); err == nil {
			port = uint16(parsed)
		}
	}
	if port == 0 {
		port = 8090
	}
	return RestConfig{Port: port}
}

type UpstreamConfigJson struct {
	ApiURL      string `json:"api_url"`
	RelayURL    string `json:"relay_url"`
	RelayPrefix string `json:"relay_prefix"`
}

type UpstreamConfig struct {
	ApiURL      string
	RelayURL    string
	RelayPrefix string
}

func (ucj UpstreamConfigJson) ConvertToDomain() UpstreamConfig {
	return UpstreamConfig{
		ApiURL:      utilities.EnvOrDefault("API_URL", utilities.Ternary(ucj.ApiURL != "", ucj.ApiURL, "http://localhost:3000")),
		RelayURL:    utilities.EnvOrDefault("RELAY_URL", utilities.Ternary(ucj.RelayURL != "", ucj.RelayURL, "http://localhost:8080")),
		RelayPrefix: utilities.Ternary(ucj.RelayPrefix != "", ucj.RelayPrefix, "/v1"),
	}
}

type ResultsConfigJson struct {
	Backend       string `json:"backend"`
	TTLSeconds    int64  `json:"ttl_seconds"`
	MaxEntries    int    `json:"max_entries"`
	SweepSeconds  int64  `json:"sweep_seconds"`
	RedisAddr     string `json:"redis_addr"`
}

type ResultsConfig struct {
	Backend       string
	TTL           time.Duration
	MaxEntries    int
	SweepInterval time.Duration
	RedisAddr     string
}

func (rcj ResultsConfigJson) ConvertToDomain() ResultsConfig {
	return ResultsConfig{
		Backend:       utilities.Ternary(rcj.Backend != "", rcj.Backend, "memory"),
		TTL:           time.Duration(rcj.TTLSeconds) * time.Second,
		MaxEntries:    rcj.MaxEntries,
		SweepInterval: time.Duration(rcj.SweepSeconds) * time.Second,
		RedisAddr:     utilities.Ternary(rcj.RedisAddr != "", rcj.RedisAddr, "localhost:6379"),
	}
}

type CallbackConfigJson struct {
	Secret string `json:"secret"`
}

type CallbackConfig struct {
	Secret string
}

type ClientConfigJson struct {
	DashboardURL string `json:"dashboard_url"`
	DemoUser     string `json:"demo_user"`
	DemoPassword string `json:"demo_password"`
}

type ClientConfig struct {
	DashboardURL string
	DemoUser     string
	DemoPassword string
}

type BridgeConfigJson struct {
	Enabled bool `json:"enabled"`
}

type BridgeConfig struct {
	Enabled bool
}
