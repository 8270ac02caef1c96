package stream

import "fmt"

// Hook wraps a RawStream and records every consumed byte since the last
// checkpoint. The record lets the diagnostics reporter reconstruct a source
// snippet even when the underlying medium cannot seek (interactive input).
//
// The Hook borrows the wrapped stream; the stream must outlive the Hook.
type Hook struct {
	stream RawStream

	streamPos int64  // bytes consumed from the wrapped stream
	consumed  []byte // bytes consumed since the last checkpoint

	checkpointPos  int64 // stream position at the last checkpoint
	checkpointLine int64 // line number at the last checkpoint
	currentLine    int64
}

// NewHook wraps stream. Line numbering starts at 1.
func NewHook(stream RawStream) *Hook {
	return &Hook{
		stream:         stream,
		checkpointLine: 1,
		currentLine:    1,
	}
}

func (h *Hook) Peek() (byte, bool) {
	return h.stream.Peek()
}

func (h *Hook) Get() (byte, bool) {
	c, ok := h.stream.Get()
	if !ok {
		return 0, false
	}
	h.streamPos++
	h.consumed = append(h.consumed, c)
	if c == '\n' {
		h.currentLine++
	}
	return c, true
}

// Unget pushes the last consumed byte back. Only bytes consumed through the
// Hook may be ungotten; an empty record means the lexer pushed back a byte it
// never read, which is a bug, not bad input.
func (h *Hook) Unget() {
	if len(h.consumed) == 0 {
		panic(fmt.Sprintf("stream: unget with no consumed bytes (position %d)", h.streamPos))
	}
	h.stream.Unget()
	h.streamPos--
	last := len(h.consumed) - 1
	if h.consumed[last] == '\n' {
		h.currentLine--
	}
	h.consumed = h.consumed[:last]
}

func (h *Hook) Tell() int64 {
	return h.streamPos
}

// ClearConsumed drops the record and advances the checkpoint to the current
// stream position and line. Called once per fully parsed statement so that
// error snippets stay scoped to the statement being parsed.
func (h *Hook) ClearConsumed() {
	h.checkpointPos = h.streamPos
	h.checkpointLine = h.currentLine
	h.consumed = h.consumed[:0]
}

// Consumed returns the bytes recorded since the last checkpoint.
func (h *Hook) Consumed() string {
	return string(h.consumed)
}

// Position returns the stream position of the checkpoint. The first recorded
// byte corresponds to this offset.
func (h *Hook) Position() int64 {
	return h.checkpointPos
}

// LineNumber returns the line number of the checkpoint.
func (h *Hook) LineNumber() int64 {
	return h.checkpointLine
}
