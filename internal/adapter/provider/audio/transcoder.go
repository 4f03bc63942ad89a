// Package audio turns raw speech PCM into MP3 using ffmpeg.
package audio

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// Config describes the PCM input and the ffmpeg invocation.
type Config struct {
	FFmpegPath string
	Bitrate    string
	SampleRate int
	Channels   int
	BitDepth   int
	TempDir    string // empty means os.TempDir
	Timeout    time.Duration
}

// Transcoder converts PCM to MP3.
type Transcoder struct {
	cfg Config
	log *slog.Logger
}

// NewTranscoder creates a Transcoder. Zero channel count and bit depth default to mono 16-bit.
func NewTranscoder(cfg Config, logger *slog.Logger) *Transcoder {
	if cfg.Channels == 0 {
		cfg.Channels = 1
	}
	if cfg.BitDepth == 0 {
		cfg.BitDepth = 16
	}
	return &Transcoder{cfg: cfg, log: logger.With("adapter", "audio")}
}

// PCMToMP3 wraps pcm in a WAV container and encodes it with libmp3lame.
// Temporary files are removed on every path.
func (t *Transcoder) PCMToMP3(ctx context.Context, pcm []byte) ([]byte, error) {
	if len(pcm) == 0 {
		return nil, fmt.Errorf("audio: empty pcm input")
	}

	dir, err := os.MkdirTemp(t.cfg.TempDir, "softfix-audio-*")
	if err != nil {
		return nil, fmt.Errorf("audio: temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "speech.wav")
	out := filepath.Join(dir, "speech.mp3")

	wav := WAV(pcm, t.cfg.SampleRate, t.cfg.Channels, t.cfg.BitDepth)
	if err := os.WriteFile(in, wav, 0o600); err != nil {
		return nil, fmt.Errorf("audio: write wav: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, t.cfg.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, t.cfg.FFmpegPath,
		"-hide_banner", "-loglevel", "error", "-y",
		"-i", in,
		"-codec:a", "libmp3lame",
		"-b:a", t.cfg.Bitrate,
		out,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("audio: ffmpeg: %w", ctx.Err())
		}
		return nil, fmt.Errorf("audio: ffmpeg: %w: %s", err, bytes.TrimSpace(stderr.Bytes()))
	}

	mp3, err := os.ReadFile(out)
	if err != nil {
		return nil, fmt.Errorf("audio: read mp3: %w", err)
	}

	t.log.DebugContext(ctx, "audio transcoded",
		slog.Int("wav_bytes", len(wav)),
		slog.Int("mp3_bytes", len(mp3)),
		slog.Duration("duration", time.Since(start)),
	)
	return mp3, nil
}

// WAV prepends a 44-byte RIFF/WAVE PCM header to pcm.
func WAV(pcm []byte, sampleRate, channels, bitDepth int) []byte {
	blockAlign := channels * bitDepth / 8
	byteRate := sampleRate * blockAlign

	var buf bytes.Buffer
	buf.Grow(44 + len(pcm))

	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16)) // PCM chunk size
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1))  // audio format: PCM
	_ = binary.Write(&buf, binary.LittleEndian, uint16(channels))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(bitDepth))

	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)

	return buf.Bytes()
}
