package dispatch

import (
	"fmt"
	"net"
	"time"

	"github.com/google/uuid"

	"github.com/jonntd/anima/camera"
	"github.com/jonntd/anima/util/log"
)

// defaultTimeout bounds both the dial and the write of one dispatch.
const defaultTimeout = 5 * time.Second

// CommandPort sends assembled commands to the script command port of a
// running host session over TCP, one newline-terminated command per
// connection. Each dispatch is logged under a generated request id.
type CommandPort struct {
	addr    string
	timeout time.Duration
}

// NewCommandPort creates a dispatcher for the command port at addr.
func NewCommandPort(addr string) *CommandPort {
	return &CommandPort{addr: addr, timeout: defaultTimeout}
}

// SetTimeout overrides the dial/write deadline.
func (d *CommandPort) SetTimeout(timeout time.Duration) {
	d.timeout = timeout
}

// Execute sends the rendered command to the command port.
func (d *CommandPort) Execute(cmd camera.Command) error {
	id := uuid.NewString()

	conn, err := net.DialTimeout("tcp", d.addr, d.timeout)
	if err != nil {
		return fmt.Errorf("dial command port %s: %w", d.addr, err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(d.timeout)); err != nil {
		return fmt.Errorf("set command port deadline: %w", err)
	}

	if _, err := fmt.Fprintf(conn, "%s\n", cmd.String()); err != nil {
		return fmt.Errorf("send command %s to %s: %w", id, d.addr, err)
	}

	log.Printf("dispatched %s command %s to %s", cmd.Name, id, d.addr)
	return nil
}
