package bridge

import (
	"errors"

	"github.com/robotalks/saber.go/pkg/sabertooth"
)

// Command ops, mirroring the Controller surface plus "stop".
const (
	OpDriveM1       = "drive_m1"
	OpDriveM2       = "drive_m2"
	OpDrive         = "drive"
	OpTurn          = "turn"
	OpStop          = "stop"
	OpMinVoltage    = "min_voltage"
	OpMaxVoltage    = "max_voltage"
	OpSerialTimeout = "serial_timeout"
	OpBaudRate      = "baud_rate"
	OpRamping       = "ramping"
	OpDeadband      = "deadband"
)

// Command is a single request received on the cmd topic. Value carries
// the argument in the unit of the op (motor value, device units,
// milliseconds or baud). Motor ops may carry a normalized Ratio in
// [-1, 1] instead of Value.
type Command struct {
	Op    string   `json:"op"`
	Value int      `json:"value"`
	Ratio *float64 `json:"ratio,omitempty"`
}

// Reply is published on the msg topic for every received command.
type Reply struct {
	Op    string `json:"op"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
	Kind  string `json:"kind,omitempty"`
}

// NewReply builds the reply for a handled command. The driver error
// taxonomy name is carried in Kind so remote callers can tell invalid
// input from transport failures.
func NewReply(op string, err error) Reply {
	if err == nil {
		return Reply{Op: op, OK: true}
	}
	r := Reply{Op: op, Error: err.Error(), Kind: sabertooth.KindUnknown.String()}
	var e *sabertooth.Error
	if errors.As(err, &e) {
		r.Kind = e.Kind.String()
	}
	return r
}
