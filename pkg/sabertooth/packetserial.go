package sabertooth

import (
	"github.com/golang/glog"

	"github.com/robotalks/saber.go/pkg/sabertooth/port"
)

// DefaultAddress is the factory default packet serial address.
const DefaultAddress byte = 128

// MaxSerialTimeoutMS is the longest serial timeout accepted by
// SetSerialTimeout, in milliseconds.
const MaxSerialTimeoutMS = 12700

// Packet serial command codes.
const (
	cmdDriveM1Fwd    byte = 0
	cmdDriveM1Rev    byte = 1
	cmdMinVoltage    byte = 2
	cmdMaxVoltage    byte = 3
	cmdDriveM2Fwd    byte = 4
	cmdDriveM2Rev    byte = 5
	cmdDriveMixedFwd byte = 8
	cmdDriveMixedRev byte = 9
	cmdTurnMixedFwd  byte = 10
	cmdTurnMixedRev  byte = 11
	cmdSerialTimeout byte = 14
	cmdBaudRate      byte = 15
	cmdRamping       byte = 16
	cmdDeadband      byte = 17
)

// PacketSerial implements Controller using the packetized serial
// protocol. It exclusively owns its Transport for its lifetime; every
// operation performs exactly one blocking 4-byte write and returns once
// the write completes or fails.
type PacketSerial struct {
	dev     Transport
	address byte
}

// NewPacketSerial opens the named serial port at the factory default
// baud rate and returns a PacketSerial with the default address.
func NewPacketSerial(portName string) (*PacketSerial, error) {
	dev, err := port.Open(portName, port.DefaultBaudRate)
	if err != nil {
		return nil, wrapTransport(err)
	}
	return FromTransport(dev), nil
}

// FromTransport wraps an already-open transport.
func FromTransport(dev Transport) *PacketSerial {
	return &PacketSerial{dev: dev, address: DefaultAddress}
}

// WithAddress sets a custom device address without reopening the
// transport. Addresses are not validated; callers are trusted to pick
// one matching the controller's DIP switches.
func (p *PacketSerial) WithAddress(address byte) *PacketSerial {
	p.address = address
	return p
}

// Address returns the configured device address.
func (p *PacketSerial) Address() byte {
	return p.address
}

func (p *PacketSerial) write(command, data byte) error {
	frame := [4]byte{p.address, command, data}
	frame[3] = Checksum(frame[:3])
	glog.V(4).Infof("tx frame % x", frame[:])
	if _, err := p.dev.Write(frame[:]); err != nil {
		return wrapTransport(err)
	}
	return nil
}

// writeMotorCommand splits a signed motor value by sign: the magnitude
// goes out as the data byte under the forward or backward command code.
// The asymmetric clamp to -127 keeps -128 from escaping as a data byte
// of 128.
func (p *PacketSerial) writeMotorCommand(forward, backward byte, value int8) error {
	if value >= 0 {
		return p.write(forward, byte(value))
	}
	if value < -127 {
		value = -127
	}
	return p.write(backward, byte(-value))
}

// SetMinVoltage implements Controller.
func (p *PacketSerial) SetMinVoltage(units uint8) error {
	return p.write(cmdMinVoltage, units)
}

// SetMaxVoltage implements Controller.
func (p *PacketSerial) SetMaxVoltage(units uint8) error {
	return p.write(cmdMaxVoltage, units)
}

// SetSerialTimeout implements Controller.
func (p *PacketSerial) SetSerialTimeout(ms uint16) error {
	if ms > MaxSerialTimeoutMS {
		return invalidInputf("timeout %dms exceeds %dms", ms, MaxSerialTimeoutMS)
	}
	units := int(ms) / 100
	if ms > 0 && ms < 100 {
		units = 1
	}
	data := MapRange(Range[int]{0, MaxSerialTimeoutMS}, Range[int]{0, 127}, units)
	return p.write(cmdSerialTimeout, byte(data))
}

// SetBaudRate implements Controller. The transport baud rate is only
// reconfigured after the device write succeeds, so a failed write leaves
// the line untouched.
func (p *PacketSerial) SetBaudRate(baudRate int) error {
	var data byte
	switch baudRate {
	case 2400:
		data = 1
	case 9600:
		data = 2
	case 19200:
		data = 3
	case 38400:
		data = 4
	case 115200:
		data = 5
	default:
		return invalidInputf("invalid baud rate %d", baudRate)
	}
	if err := p.write(cmdBaudRate, data); err != nil {
		return err
	}
	return wrapTransport(p.dev.SetBaudRate(baudRate))
}

// SetRamping implements Controller.
func (p *PacketSerial) SetRamping(rate uint8) error {
	data := MapRange(Range[int]{0, 255}, Range[int]{0, 80}, int(rate))
	return p.write(cmdRamping, byte(data))
}

// SetDeadband implements Controller.
func (p *PacketSerial) SetDeadband(deadband uint8) error {
	data := MapRange(Range[int]{0, 255}, Range[int]{0, 127}, int(deadband))
	return p.write(cmdDeadband, byte(data))
}

// DriveM1 implements Controller.
func (p *PacketSerial) DriveM1(value int8) error {
	return p.writeMotorCommand(cmdDriveM1Fwd, cmdDriveM1Rev, value)
}

// DriveM2 implements Controller.
func (p *PacketSerial) DriveM2(value int8) error {
	return p.writeMotorCommand(cmdDriveM2Fwd, cmdDriveM2Rev, value)
}

// DriveMixed implements Controller.
func (p *PacketSerial) DriveMixed(value int8) error {
	return p.writeMotorCommand(cmdDriveMixedFwd, cmdDriveMixedRev, value)
}

// TurnMixed implements Controller.
func (p *PacketSerial) TurnMixed(value int8) error {
	return p.writeMotorCommand(cmdTurnMixedFwd, cmdTurnMixedRev, value)
}
