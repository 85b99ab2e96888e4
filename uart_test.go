package main

import (
	"errors"
	"testing"
)

type recordingSink struct {
	got []byte
}

func (s *recordingSink) WriteByte(b byte) error {
	s.got = append(s.got, b)
	return nil
}

func TestUARTFlushDrainsInOrder(t *testing.T) {
	sink := &recordingSink{}
	u := NewUART(sink)

	u.Write('h')
	u.Write('i')
	if err := u.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if string(sink.got) != "hi" {
		t.Fatalf("sink got %q, want %q", sink.got, "hi")
	}
}

func TestUARTFlushEmptiesTheBuffer(t *testing.T) {
	sink := &recordingSink{}
	u := NewUART(sink)

	u.Write('x')
	u.Flush()
	u.Flush()

	if len(sink.got) != 1 {
		t.Fatalf("second Flush re-sent buffered bytes: got %q", sink.got)
	}
}

type failingSink struct{}

func (failingSink) WriteByte(b byte) error { return errors.New("boom") }

func TestUARTFlushPropagatesSinkError(t *testing.T) {
	u := NewUART(failingSink{})
	u.Write('z')

	if err := u.Flush(); err == nil {
		t.Fatalf("Flush did not propagate the sink error")
	}
}
