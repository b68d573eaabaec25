package motor

import (
	"github.com/abiosoft/ishell"

	"github.com/robotalks/saber.go/pkg/cli/sh"
)

var (
	// M1Cmd sets the motor 1 output.
	M1Cmd = ishell.Cmd{
		Name: "m1",
		Help: "VALUE(-128..127)",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			val, err := sh.MotorValueArg(c, 0)
			if err != nil {
				c.Err(err)
				return
			}
			sh.Done(c, sh.ShellFrom(c).Saber.DriveM1(val))
		}),
	}

	// M2Cmd sets the motor 2 output.
	M2Cmd = ishell.Cmd{
		Name: "m2",
		Help: "VALUE(-128..127)",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			val, err := sh.MotorValueArg(c, 0)
			if err != nil {
				c.Err(err)
				return
			}
			sh.Done(c, sh.ShellFrom(c).Saber.DriveM2(val))
		}),
	}

	// DriveCmd drives both motors in mixed mode.
	DriveCmd = ishell.Cmd{
		Name:    "drive",
		Aliases: []string{"d"},
		Help:    "VALUE(-128..127)",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			val, err := sh.MotorValueArg(c, 0)
			if err != nil {
				c.Err(err)
				return
			}
			sh.Done(c, sh.ShellFrom(c).Saber.DriveMixed(val))
		}),
	}

	// TurnCmd turns in mixed mode.
	TurnCmd = ishell.Cmd{
		Name:    "turn",
		Aliases: []string{"t"},
		Help:    "VALUE(-128..127)",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			val, err := sh.MotorValueArg(c, 0)
			if err != nil {
				c.Err(err)
				return
			}
			sh.Done(c, sh.ShellFrom(c).Saber.TurnMixed(val))
		}),
	}

	// StopCmd stops both motors.
	StopCmd = ishell.Cmd{
		Name: "stop",
		Help: "",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			saber := sh.ShellFrom(c).Saber
			if err := saber.DriveMixed(0); err != nil {
				c.Err(err)
				return
			}
			sh.Done(c, saber.TurnMixed(0))
		}),
	}
)

func init() {
	sh.AddCmds(
		&M1Cmd,
		&M2Cmd,
		&DriveCmd,
		&TurnCmd,
		&StopCmd,
	)
}
