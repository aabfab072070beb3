package radar

import (
	"fmt"
	"io"
	"time"

	tarmserial "github.com/tarm/serial"
	"go.bug.st/serial"
)

// SupportedBauds are the baud rates the LD2410 firmware is known to
// accept. DefaultBaud is used when NewSession is given 0.
var SupportedBauds = []int{9600, 19200, 38400, 57600, 115200, 230400, DefaultBaud, 460800}

const DefaultBaud = 256000

// readTimeout bounds a single blocking UART read so the poll worker
// can observe shutdown promptly; a timeout is not an error.
const readTimeout = 200 * time.Millisecond

// uartPort is the minimal surface Session needs from a serial
// connection. Production code gets it from go.bug.st/serial; tests
// substitute an in-memory pipe.
type uartPort interface {
	io.ReadWriteCloser
}

func validBaud(baud int) bool {
	for _, b := range SupportedBauds {
		if b == baud {
			return true
		}
	}
	return false
}

// openUART clears stale UART attributes with a brief low-baud
// open/close/sleep cycle before the real configuration takes effect,
// then opens the port for real at the target baud, 8N1.
func openUART(path string, baud int) (uartPort, error) {
	if baud == 0 {
		baud = DefaultBaud
	}
	if !validBaud(baud) {
		return nil, fmt.Errorf("%w: unsupported baud rate %d", ErrInvalidArgument, baud)
	}

	if err := clearUARTAttributes(path); err != nil {
		return nil, fmt.Errorf("%w: failed to clear UART attributes: %v", ErrIO, err)
	}

	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(path, mode)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open serial port: %v", ErrIO, err)
	}

	if err := port.SetReadTimeout(readTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("%w: failed to set read timeout: %v", ErrIO, err)
	}

	return port, nil
}

func clearUARTAttributes(path string) error {
	cfg := &tarmserial.Config{
		Name:        path,
		Baud:        9600,
		Size:        8,
		Parity:      tarmserial.ParityNone,
		StopBits:    tarmserial.Stop1,
		ReadTimeout: 0,
	}

	port, err := tarmserial.OpenPort(cfg)
	if err != nil {
		return fmt.Errorf("failed to open serial port for attribute clearing: %v", err)
	}

	if err := port.Close(); err != nil {
		return fmt.Errorf("failed to close serial port after attribute clearing: %v", err)
	}

	time.Sleep(100 * time.Millisecond)
	return nil
}
