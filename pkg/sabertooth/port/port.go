// Package port provides the real serial transport for the sabertooth
// driver, backed by go.bug.st/serial.
package port

import (
	"go.bug.st/serial"
)

// DefaultBaudRate is the Sabertooth factory default line speed.
const DefaultBaudRate = 9600

// Port is an open serial line. It satisfies the driver's Transport
// capability and io.Closer.
type Port struct {
	serial.Port
	mode serial.Mode
}

// Open opens the named serial port in 8N1 mode at the given baud rate.
func Open(name string, baudRate int) (*Port, error) {
	mode := serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	p, err := serial.Open(name, &mode)
	if err != nil {
		return nil, err
	}
	return &Port{Port: p, mode: mode}, nil
}

// SetBaudRate reconfigures the line speed without reopening the port.
func (p *Port) SetBaudRate(baudRate int) error {
	mode := p.mode
	mode.BaudRate = baudRate
	if err := p.Port.SetMode(&mode); err != nil {
		return err
	}
	p.mode = mode
	return nil
}
