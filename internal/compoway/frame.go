// internal/compoway/frame.go
package compoway

// CompoWay/F frame delimiters.
// These values define the protocol and MUST NOT be configurable.

// STX marks the start of every frame.
const STX byte = 0x02

// ETX marks the end of the frame body; the BCC follows it.
const ETX byte = 0x03

// BCC computes the Block Check Character: a running XOR over data.
// For an outbound frame the input is every byte after STX through ETX
// inclusive.
func BCC(data []byte) byte {
	var bcc byte
	for _, b := range data {
		bcc ^= b
	}
	return bcc
}

// BuildRequest frames command text into a complete CompoWay/F request:
//
//	STX | command text (ASCII) | ETX | BCC
//
// The command text is caller-validated (see Command.Text); BuildRequest
// itself has no error path.
func BuildRequest(commandText string) []byte {
	frame := make([]byte, 0, len(commandText)+3)
	frame = append(frame, STX)
	frame = append(frame, commandText...)
	frame = append(frame, ETX)
	frame = append(frame, BCC(frame[1:]))
	return frame
}
