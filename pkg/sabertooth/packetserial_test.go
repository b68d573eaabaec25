package sabertooth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// mockTransport records frames instead of touching a device.
type mockTransport struct {
	written  []byte
	writeErr error
	baudRate int
	baudErr  error
}

func (m *mockTransport) Write(p []byte) (int, error) {
	if m.writeErr != nil {
		return 0, m.writeErr
	}
	m.written = append(m.written, p...)
	return len(p), nil
}

func (m *mockTransport) SetBaudRate(baudRate int) error {
	if m.baudErr != nil {
		return m.baudErr
	}
	m.baudRate = baudRate
	return nil
}

var _ Controller = (*PacketSerial)(nil)

func TestPacketSerialFrames(t *testing.T) {
	testCases := []struct {
		name   string
		send   func(*PacketSerial) error
		expect []byte
	}{
		{"min voltage", func(p *PacketSerial) error { return p.SetMinVoltage(50) }, []byte{128, 2, 50, 52}},
		{"max voltage", func(p *PacketSerial) error { return p.SetMaxVoltage(255) }, []byte{128, 3, 255, 2}},
		{"m1 forward", func(p *PacketSerial) error { return p.DriveM1(100) }, []byte{128, 0, 100, 100}},
		{"m1 stop", func(p *PacketSerial) error { return p.DriveM1(0) }, []byte{128, 0, 0, 0}},
		{"m1 reverse", func(p *PacketSerial) error { return p.DriveM1(-1) }, []byte{128, 1, 1, 2}},
		{"m1 full reverse clamps -128", func(p *PacketSerial) error { return p.DriveM1(-128) }, []byte{128, 1, 127, 0}},
		{"m2 forward", func(p *PacketSerial) error { return p.DriveM2(127) }, []byte{128, 4, 127, 3}},
		{"m2 reverse", func(p *PacketSerial) error { return p.DriveM2(-50) }, []byte{128, 5, 50, 55}},
		{"mixed drive forward", func(p *PacketSerial) error { return p.DriveMixed(127) }, []byte{128, 8, 127, 7}},
		{"mixed drive reverse", func(p *PacketSerial) error { return p.DriveMixed(-128) }, []byte{128, 9, 127, 8}},
		{"mixed turn right", func(p *PacketSerial) error { return p.TurnMixed(64) }, []byte{128, 10, 64, 74}},
		{"mixed turn full left clamps -128", func(p *PacketSerial) error { return p.TurnMixed(-128) }, []byte{128, 11, 127, 10}},
		{"timeout off", func(p *PacketSerial) error { return p.SetSerialTimeout(0) }, []byte{128, 14, 0, 14}},
		{"timeout sub-unit rounds up", func(p *PacketSerial) error { return p.SetSerialTimeout(50) }, []byte{128, 14, 0, 14}},
		{"timeout max", func(p *PacketSerial) error { return p.SetSerialTimeout(12700) }, []byte{128, 14, 1, 15}},
		{"ramping full scale", func(p *PacketSerial) error { return p.SetRamping(255) }, []byte{128, 16, 80, 96}},
		{"ramping mid scale", func(p *PacketSerial) error { return p.SetRamping(100) }, []byte{128, 16, 31, 47}},
		{"deadband full scale", func(p *PacketSerial) error { return p.SetDeadband(255) }, []byte{128, 17, 127, 16}},
		{"deadband zero", func(p *PacketSerial) error { return p.SetDeadband(0) }, []byte{128, 17, 0, 17}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dev := &mockTransport{}
			require.NoError(t, tc.send(FromTransport(dev)))
			require.Equal(t, tc.expect, dev.written)
		})
	}
}

func TestPacketSerialChecksum(t *testing.T) {
	dev := &mockTransport{}
	require.NoError(t, FromTransport(dev).DriveM1(100))
	require.Len(t, dev.written, 4)
	require.Equal(t, Checksum(dev.written[:3]), dev.written[3])
	require.Equal(t, (byte(128)+0+100)&0x7f, dev.written[3])
}

func TestPacketSerialAddress(t *testing.T) {
	dev := &mockTransport{}
	p := FromTransport(dev).WithAddress(129)
	require.Equal(t, byte(129), p.Address())
	require.NoError(t, p.DriveM1(10))
	require.Equal(t, []byte{129, 0, 10, 11}, dev.written)
}

func TestPacketSerialIdempotentWrites(t *testing.T) {
	dev := &mockTransport{}
	p := FromTransport(dev)
	require.NoError(t, p.SetRamping(10))
	require.NoError(t, p.SetRamping(10))
	require.Len(t, dev.written, 8)
	require.Equal(t, dev.written[:4], dev.written[4:])
}

func TestPacketSerialTimeoutTooLong(t *testing.T) {
	dev := &mockTransport{}
	err := FromTransport(dev).SetSerialTimeout(13000)
	require.Error(t, err)
	require.True(t, IsKind(err, KindInvalidInput))
	require.Empty(t, dev.written)
}

func TestPacketSerialBaudRate(t *testing.T) {
	dev := &mockTransport{}
	p := FromTransport(dev)
	require.NoError(t, p.SetBaudRate(19200))
	require.Equal(t, []byte{128, 15, 3, 18}, dev.written)
	require.Equal(t, 19200, dev.baudRate)
}

func TestPacketSerialBaudRateInvalid(t *testing.T) {
	dev := &mockTransport{}
	err := FromTransport(dev).SetBaudRate(4800)
	require.Error(t, err)
	require.True(t, IsKind(err, KindInvalidInput))
	require.Empty(t, dev.written)
	require.Zero(t, dev.baudRate)
}

func TestPacketSerialBaudRateWriteFails(t *testing.T) {
	cause := errors.New("unplugged")
	dev := &mockTransport{writeErr: cause}
	err := FromTransport(dev).SetBaudRate(9600)
	require.Error(t, err)
	require.True(t, IsKind(err, KindTransport))
	require.True(t, errors.Is(err, cause))
	// The line keeps its old speed when the device write fails.
	require.Zero(t, dev.baudRate)
}

func TestPacketSerialWriteError(t *testing.T) {
	cause := errors.New("cable pulled")
	dev := &mockTransport{writeErr: cause}
	err := FromTransport(dev).DriveM2(5)
	require.Error(t, err)
	require.True(t, IsKind(err, KindTransport))
	require.True(t, errors.Is(err, cause))
}
