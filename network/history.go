package network

import (
	"time"

	"github.com/automoto/doomerang-arena/shared/messages"
)

const historySize = 64

// InputRecord is an input the client sent and when it left.
type InputRecord struct {
	Input  messages.PlayerInput
	SentAt time.Time
}

// InputHistory is a ring buffer of recent inputs, used to tell which ones
// the server has not applied yet and how long acknowledgement took.
type InputHistory struct {
	history [historySize]InputRecord
	nextSeq uint32
	acked   uint32
}

// Next stamps input with the next sequence number and stores it.
func (h *InputHistory) Next(input messages.PlayerInput, now time.Time) messages.PlayerInput {
	if h.nextSeq == 0 {
		h.nextSeq = 1
	}
	input.Sequence = h.nextSeq
	h.history[input.Sequence%historySize] = InputRecord{Input: input, SentAt: now}
	h.nextSeq++
	return input
}

// Get retrieves a stored record by sequence number. Returns false if not
// found or if the slot has been overwritten.
func (h *InputHistory) Get(seq uint32) (InputRecord, bool) {
	record := h.history[seq%historySize]
	if seq == 0 || record.Input.Sequence != seq {
		return InputRecord{}, false
	}
	return record, true
}

// Ack records the newest sequence the server applied and returns how long
// ago it was sent. Acknowledgements for inputs this client never sent, or
// older than the last one, report false.
func (h *InputHistory) Ack(seq uint32, now time.Time) (time.Duration, bool) {
	if seq <= h.acked || seq >= h.nextSeq {
		return 0, false
	}
	h.acked = seq
	record, ok := h.Get(seq)
	if !ok {
		return 0, false
	}
	return now.Sub(record.SentAt), true
}

// Unacknowledged returns the stored inputs the server has not confirmed.
func (h *InputHistory) Unacknowledged() []InputRecord {
	var out []InputRecord
	for seq := h.acked + 1; seq < h.nextSeq; seq++ {
		if record, ok := h.Get(seq); ok {
			out = append(out, record)
		}
	}
	return out
}
