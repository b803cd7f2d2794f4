package audio

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"time"
)

// Speech synthesis returns raw 16-bit PCM at 24 kHz mono. These parameters
// are fixed by the TTS model and baked into the WAV header we emit.
const (
	Channels      = 1
	SampleRate    = 24000
	BitsPerSample = 16
)

// EncodeWAV wraps raw little-endian PCM samples in a RIFF/WAVE container.
func EncodeWAV(pcm []byte) []byte {
	blockAlign := Channels * BitsPerSample / 8
	byteRate := SampleRate * blockAlign

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16)) // PCM chunk size
	binary.Write(&buf, binary.LittleEndian, uint16(1))  // PCM format
	binary.Write(&buf, binary.LittleEndian, uint16(Channels))
	binary.Write(&buf, binary.LittleEndian, uint32(SampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(BitsPerSample))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)

	return buf.Bytes()
}

// WAVDataURI encodes PCM samples as an inline data:audio/wav URI.
func WAVDataURI(pcm []byte) string {
	wav := EncodeWAV(pcm)
	return fmt.Sprintf("data:audio/wav;base64,%s", base64.StdEncoding.EncodeToString(wav))
}

// Duration reports the playback length of raw PCM samples.
func Duration(pcm []byte) time.Duration {
	bytesPerSecond := SampleRate * Channels * BitsPerSample / 8
	if bytesPerSecond == 0 {
		return 0
	}
	return time.Duration(float64(len(pcm)) / float64(bytesPerSecond) * float64(time.Second))
}
