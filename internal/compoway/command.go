// internal/compoway/command.go
package compoway

import (
	"errors"
	"fmt"
)

// Fixed-width command fields for the K3HB monitor-value read.
// Values come from the K3HB communications manual; only the node
// number varies per installation.

const (
	// DefaultNode is the factory node number of a single K3HB.
	DefaultNode = "01"

	subAddress = "00" // not used on the K3HB, always "00"
	serviceID  = "0"  // not used, always "0"

	mrcRead = "01" // Main Request Code: variable area read
	srcRead = "01" // Sub Request Code: variable area read

	variableTypeMonitor = "C0"   // double-word variable area
	addressMonitorValue = "0002" // present/monitor value
	bitPosition         = "00"   // always 00 for the K3HB
	oneElement          = "0001" // read a single element
)

// commandTextLen is the exact length of the concatenated command text
// for this layout: Node(2) + SubAddress(2) + ServiceID(1) + MRC(2) +
// SRC(2) + VariableType(2) + Address(4) + BitPosition(2) + Elements(4).
const commandTextLen = 21

// Command is one fixed-width CompoWay/F command, field by field.
type Command struct {
	Node         string
	SubAddress   string
	ServiceID    string
	MRC          string
	SRC          string
	VariableType string
	Address      string
	BitPosition  string
	Elements     string
}

// MonitorValueCommand is the read of the display's monitor value from
// the given node. Every field except the node is device-fixed.
func MonitorValueCommand(node string) Command {
	if node == "" {
		node = DefaultNode
	}
	return Command{
		Node:         node,
		SubAddress:   subAddress,
		ServiceID:    serviceID,
		MRC:          mrcRead,
		SRC:          srcRead,
		VariableType: variableTypeMonitor,
		Address:      addressMonitorValue,
		BitPosition:  bitPosition,
		Elements:     oneElement,
	}
}

// Text concatenates the fields positionally and validates the result:
// pure ASCII, no embedded frame delimiters, exact layout width.
func (c Command) Text() (string, error) {
	text := c.Node + c.SubAddress + c.ServiceID + c.MRC + c.SRC +
		c.VariableType + c.Address + c.BitPosition + c.Elements

	if len(text) != commandTextLen {
		return "", fmt.Errorf("compoway: command text is %d chars, layout requires %d", len(text), commandTextLen)
	}
	for i := 0; i < len(text); i++ {
		b := text[i]
		if b > 0x7F {
			return "", errors.New("compoway: command text must be ASCII")
		}
		if b == STX || b == ETX {
			return "", errors.New("compoway: command text must not contain frame delimiters")
		}
	}
	return text, nil
}
