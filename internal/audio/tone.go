// Package audio synthesizes the fallback tone returned when text-to-speech
// fails entirely.
package audio

import (
	"bytes"
	"encoding/binary"
	"math"
)

const (
	toneFrequency = 440.0
	toneSeconds   = 2
	sampleRate    = 44100
	amplitude     = 0.3
)

// FallbackTone returns a complete WAV byte stream containing a 2-second
// 440 Hz sine tone: 44.1 kHz, 16-bit signed PCM, mono.
func FallbackTone() []byte {
	return Tone(toneFrequency, toneSeconds)
}

// Tone renders a sine tone of the given frequency and duration as a WAV
// stream with a standard 44-byte RIFF header.
func Tone(frequency float64, durationSeconds int) []byte {
	samples := sampleRate * durationSeconds
	dataSize := samples * 2

	buf := bytes.NewBuffer(make([]byte, 0, 44+dataSize))

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	// fmt chunk: PCM, mono, 16-bit
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate*2))
	binary.Write(buf, binary.LittleEndian, uint16(2))
	binary.Write(buf, binary.LittleEndian, uint16(16))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(dataSize))

	for i := 0; i < samples; i++ {
		sample := math.Sin(2*math.Pi*frequency*float64(i)/sampleRate) * amplitude
		binary.Write(buf, binary.LittleEndian, int16(math.Round(sample*32767)))
	}

	return buf.Bytes()
}
