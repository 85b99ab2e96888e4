// audiosink.go - PcmSink: the capability the audio pump writes PCM to.

package main

// PcmSink accepts interleaved stereo 16-bit little-endian PCM frames.
// WriteFrames may block until the sink has drained enough of its
// buffer to accept more (the "blocking device" case in spec.md §4.3);
// Pending reports how many fragments are still outstanding for a
// fragment-based sink.
type PcmSink interface {
	WriteFrames(samples []int16) error
	Pending() int
	Close() error
}

const pcmSampleRate = 44100
const pcmFragmentFrames = 1024 // stereo 16-bit samples per fragment
