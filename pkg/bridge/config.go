package bridge

import (
	"flag"
	"os"

	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"
)

// DeviceRef identifies one bridged device on the broker.
type DeviceRef struct {
	// Type is the device type, used as the first topic segment.
	Type string
	// ID is the unique ID of the device.
	ID string
}

// Name retrieves the topic name from ref.
func (r DeviceRef) Name() string {
	return r.Type + "/" + r.ID
}

// IsValid indicates DeviceRef is valid.
func (r DeviceRef) IsValid() bool {
	return r.Type != "" && r.ID != ""
}

// DeviceMeta is the retained metadata announcing the device.
type DeviceMeta struct {
	Description string            `json:"description,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
}

// Config provides the options to run a Bridge.
type Config struct {
	Ref  DeviceRef
	Meta DeviceMeta

	// BrokerURL specifies the MQTT broker to use.
	// e.g. mqtt://host:port/topic-prefix
	BrokerURL string
}

var defaultConfig = Config{
	Ref:       DeviceRef{Type: "sabertooth"},
	BrokerURL: "mqtt://localhost:1883/saber/",
}

func init() {
	if val := os.Getenv("SABER_MQTT_URL"); val != "" {
		defaultConfig.BrokerURL = val
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	if defaultConfig.Ref.ID == "" {
		defaultConfig.Ref.ID = machineID()
	}
	flag.StringVar(&defaultConfig.Ref.Type, "type", defaultConfig.Ref.Type, "Device type")
	flag.StringVar(&defaultConfig.Ref.ID, "id", defaultConfig.Ref.ID, "Device ID")
	flag.StringVar(&defaultConfig.BrokerURL, "mqtt", defaultConfig.BrokerURL, "MQTT broker URL")
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// machineID retrieves the unique ID identifying the machine.
func machineID() string {
	id, err := machineid.ID()
	if err != nil {
		glog.Warningf("machine id unavailable: %v", err)
		return "local"
	}
	return id
}
