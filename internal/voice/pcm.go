// Package voice implements the portal's live voice call plumbing: PCM frame
// handling, playback scheduling, the bridge between a caller's socket and the
// upstream realtime audio session, and the call-request hub.
package voice

import (
	"encoding/base64"
	"fmt"
	"math"
	"time"
)

// Audio format constants for the realtime session. Microphone audio goes up
// at 16 kHz and model audio comes back at 24 kHz, both mono 16-bit PCM.
const (
	InputSampleRate  = 16000
	OutputSampleRate = 24000
	InputMimeType    = "audio/pcm;rate=16000"

	bytesPerSample = 2
)

// EncodeFrame encodes raw PCM bytes for the wire.
func EncodeFrame(pcm []byte) string {
	return base64.StdEncoding.EncodeToString(pcm)
}

// DecodeFrame decodes a base64 wire frame back to raw PCM bytes.
func DecodeFrame(data string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("decode pcm frame: %w", err)
	}
	if len(raw)%bytesPerSample != 0 {
		return nil, fmt.Errorf("pcm frame has odd length %d", len(raw))
	}
	return raw, nil
}

// Float32ToPCM16 converts normalized samples to little-endian 16-bit PCM,
// clamping out-of-range values.
func Float32ToPCM16(samples []float32) []byte {
	out := make([]byte, len(samples)*bytesPerSample)
	for i, s := range samples {
		v := int32(s * 32768)
		if v > math.MaxInt16 {
			v = math.MaxInt16
		} else if v < math.MinInt16 {
			v = math.MinInt16
		}
		out[2*i] = byte(v)
		out[2*i+1] = byte(v >> 8)
	}
	return out
}

// PCM16ToFloat32 converts little-endian 16-bit PCM to normalized samples.
func PCM16ToFloat32(pcm []byte) ([]float32, error) {
	if len(pcm)%bytesPerSample != 0 {
		return nil, fmt.Errorf("pcm data has odd length %d", len(pcm))
	}
	out := make([]float32, len(pcm)/bytesPerSample)
	for i := range out {
		v := int16(uint16(pcm[2*i]) | uint16(pcm[2*i+1])<<8)
		out[i] = float32(v) / 32768
	}
	return out, nil
}

// FrameDuration returns the playback time of a raw PCM frame at the given
// sample rate.
func FrameDuration(pcm []byte, sampleRate int) time.Duration {
	samples := len(pcm) / bytesPerSample
	return time.Duration(float64(samples) / float64(sampleRate) * float64(time.Second))
}
