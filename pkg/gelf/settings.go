package gelf

import (
	"os"
)

// Settings configures a single transport. The zero value of VerifyCertificates
// keeps the permissive trust policy towards self-signed collector
// certificates; strict deployments enable it explicitly.
type Settings struct {
	Hostname           string `cfg:"hostname"`
	Host               string `cfg:"host" default:"127.0.0.1" validate:"required"`
	Port               int    `cfg:"port" default:"12201" validate:"gt=0,lte=65535"`
	Protocol           string `cfg:"protocol" default:"tcp" validate:"oneof=tcp tls http https"`
	Service            string `cfg:"service" default:"nodejs"`
	Level              string `cfg:"level" default:"info"`
	Silent             bool   `cfg:"silent"`
	Environment        string `cfg:"environment" default:"development"`
	Release            string `cfg:"release"`
	VerifyCertificates bool   `cfg:"verify_certificates"`
}

// DefaultSettings returns the settings an unconfigured transport runs with.
// The hostname falls back to "localhost" if the local machine name can not be
// resolved.
func DefaultSettings() *Settings {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}

	return &Settings{
		Hostname:    hostname,
		Host:        "127.0.0.1",
		Port:        12201,
		Protocol:    ProtocolTcp,
		Service:     "nodejs",
		Level:       "info",
		Environment: "development",
	}
}
