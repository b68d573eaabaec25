package setup

import (
	"fmt"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/saber.go/pkg/cli/sh"
)

var (
	// MinVoltageCmd sets the battery cutoff voltage.
	MinVoltageCmd = ishell.Cmd{
		Name: "minvolt",
		Help: "UNITS(0..255, ~0.094V from 6V)",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			val, err := sh.ByteArg(c, 0)
			if err != nil {
				c.Err(err)
				return
			}
			sh.Done(c, sh.ShellFrom(c).Saber.SetMinVoltage(val))
		}),
	}

	// MaxVoltageCmd sets the regeneration voltage ceiling.
	MaxVoltageCmd = ishell.Cmd{
		Name: "maxvolt",
		Help: "UNITS(0..255, ~0.1V from 0V)",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			val, err := sh.ByteArg(c, 0)
			if err != nil {
				c.Err(err)
				return
			}
			sh.Done(c, sh.ShellFrom(c).Saber.SetMaxVoltage(val))
		}),
	}

	// TimeoutCmd sets the serial timeout.
	TimeoutCmd = ishell.Cmd{
		Name: "timeout",
		Help: "MS(0..12700)",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("MS required"))
				return
			}
			val, err := strconv.ParseUint(c.Args[0], 10, 16)
			if err != nil {
				c.Err(fmt.Errorf("invalid MS: %v", err))
				return
			}
			sh.Done(c, sh.ShellFrom(c).Saber.SetSerialTimeout(uint16(val)))
		}),
	}

	// BaudCmd switches the controller and line baud rate.
	BaudCmd = ishell.Cmd{
		Name: "baud",
		Help: "RATE(2400|9600|19200|38400|115200)",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("RATE required"))
				return
			}
			val, err := strconv.Atoi(c.Args[0])
			if err != nil {
				c.Err(fmt.Errorf("invalid RATE: %v", err))
				return
			}
			sh.Done(c, sh.ShellFrom(c).Saber.SetBaudRate(val))
		}),
	}

	// RampingCmd adjusts the acceleration ramp.
	RampingCmd = ishell.Cmd{
		Name: "ramping",
		Help: "RATE(0..255)",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			val, err := sh.ByteArg(c, 0)
			if err != nil {
				c.Err(err)
				return
			}
			sh.Done(c, sh.ShellFrom(c).Saber.SetRamping(val))
		}),
	}

	// DeadbandCmd sets the stop deadband width.
	DeadbandCmd = ishell.Cmd{
		Name: "deadband",
		Help: "WIDTH(0..255)",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			val, err := sh.ByteArg(c, 0)
			if err != nil {
				c.Err(err)
				return
			}
			sh.Done(c, sh.ShellFrom(c).Saber.SetDeadband(val))
		}),
	}
)

func init() {
	sh.AddCmds(
		&MinVoltageCmd,
		&MaxVoltageCmd,
		&TimeoutCmd,
		&BaudCmd,
		&RampingCmd,
		&DeadbandCmd,
	)
}
