// Package sh provides the ishell backed interactive shell for driving a
// Sabertooth over a serial port.
package sh

import (
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/saber.go/pkg/sabertooth"
	"github.com/robotalks/saber.go/pkg/sabertooth/port"
)

// Shell wraps ishell with an open controller connection.
type Shell struct {
	Interactive bool

	Shell *ishell.Shell
	Port  *port.Port
	Saber *sabertooth.PacketSerial
}

const (
	shellKey     = "$shell"
	closedPrompt = "[none] > "
)

var (
	// flags

	evalOnly bool

	// commands
	commands = []*ishell.Cmd{
		&OpenCmd,
		&CloseCmd,
		&AddressCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
}

// AddCmds is used by other command providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New() *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		Shell:       ishell.New(),
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(closedPrompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// MustBeOpen wraps command funcs requiring an open port.
func MustBeOpen(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if ShellFrom(c).Saber == nil {
			c.Err(fmt.Errorf("no port open"))
			return
		}
		fn(c)
	}
}

// Open opens the named serial port and binds a packet serial driver.
func (s *Shell) Open(portName string, baudRate int) error {
	dev, err := port.Open(portName, baudRate)
	if err != nil {
		return err
	}
	s.Close()
	s.Port, s.Saber = dev, sabertooth.FromTransport(dev)
	s.Shell.SetPrompt(portName + " > ")
	return nil
}

// Close closes the current port, if any.
func (s *Shell) Close() {
	if s.Port != nil {
		s.Port.Close()
		s.Port, s.Saber = nil, nil
		s.Shell.SetPrompt(closedPrompt)
	}
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	defer s.Close()
	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

// MotorValueArg parses a motor value argument in -128..127.
func MotorValueArg(c *ishell.Context, index int) (int8, error) {
	if len(c.Args) <= index {
		return 0, fmt.Errorf("VALUE required")
	}
	val, err := strconv.ParseInt(c.Args[index], 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid VALUE: %v", err)
	}
	return int8(val), nil
}

// ByteArg parses an argument in 0..255.
func ByteArg(c *ishell.Context, index int) (uint8, error) {
	if len(c.Args) <= index {
		return 0, fmt.Errorf("VALUE required")
	}
	val, err := strconv.ParseUint(c.Args[index], 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid VALUE: %v", err)
	}
	return uint8(val), nil
}

// Done reports a command result.
func Done(c *ishell.Context, err error) {
	if err != nil {
		c.Err(err)
		return
	}
	c.Println("OK")
}

var (
	// OpenCmd opens a serial port.
	OpenCmd = ishell.Cmd{
		Name:    "open",
		Aliases: []string{"o"},
		Help:    "PORT [BAUD]",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("PORT required"))
				return
			}
			baudRate := port.DefaultBaudRate
			if len(c.Args) > 1 {
				val, err := strconv.Atoi(c.Args[1])
				if err != nil {
					c.Err(fmt.Errorf("invalid BAUD: %v", err))
					return
				}
				baudRate = val
			}
			if err := ShellFrom(c).Open(c.Args[0], baudRate); err != nil {
				c.Err(err)
			}
		},
	}

	// CloseCmd closes the current port.
	CloseCmd = ishell.Cmd{
		Name: "close",
		Help: "",
		Func: func(c *ishell.Context) {
			ShellFrom(c).Close()
		},
	}

	// AddressCmd sets the packet serial address.
	AddressCmd = ishell.Cmd{
		Name: "address",
		Help: "ADDR",
		Func: MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("ADDR required"))
				return
			}
			val, err := strconv.ParseUint(c.Args[0], 10, 8)
			if err != nil {
				c.Err(fmt.Errorf("invalid ADDR: %v", err))
				return
			}
			s := ShellFrom(c)
			s.Saber = s.Saber.WithAddress(byte(val))
		}),
	}
)

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	New().Run(flag.Args()...)
}
