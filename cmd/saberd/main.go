package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"log"

	"github.com/robotalks/saber.go/pkg/bridge"
	"github.com/robotalks/saber.go/pkg/run"
	"github.com/robotalks/saber.go/pkg/sabertooth"
	"github.com/robotalks/saber.go/pkg/sabertooth/port"
)

var (
	portName = "/dev/ttyUSB0"
	baudRate = port.DefaultBaudRate
	address  = int(sabertooth.DefaultAddress)
)

func init() {
	bridge.SetupFlags()
	flag.StringVar(&portName, "port", portName, "Serial port of the Sabertooth.")
	flag.IntVar(&baudRate, "baud", baudRate, "Serial baud rate.")
	flag.IntVar(&address, "address", address, "Packet serial address.")
}

func main() {
	flag.Parse()

	dev, err := port.Open(portName, baudRate)
	if err != nil {
		log.Fatalf("open %q failed: %v", portName, err)
	}
	defer dev.Close()
	saber := sabertooth.FromTransport(dev).WithAddress(byte(address))

	conf := bridge.NewConfig()
	if conf.Meta.Description == "" {
		conf.Meta.Description = "Sabertooth 2x60 on " + portName
	}
	b, err := bridge.NewBridge(conf, saber)
	if err != nil {
		log.Fatalln(err)
	}
	if err := run.NewRunner().HandleSignals().Go(b).Wait(); err != nil {
		log.Fatalln(err)
	}
}
