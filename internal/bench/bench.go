// Package bench measures bulk encryption throughput.
package bench

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/Davincible/kuznechik/internal/timer"
	"github.com/Davincible/kuznechik/pkg/crypto/kuznechik"
	"github.com/Davincible/kuznechik/pkg/secure"
)

const (
	MB = 1 << 20

	phaseEncrypt = "encrypt"
	phaseDecrypt = "decrypt"
)

// Options configures a benchmark run.
type Options struct {
	Size   int    // payload in bytes, a positive multiple of the block size
	Seed   uint64 // seeds both payload and key
	Verify bool   // compare the decrypted payload with the original
}

// Phase is the outcome of one timed pass over the payload.
type Phase struct {
	Elapsed time.Duration `json:"-"`
	Millis  int64         `json:"elapsed_ms"`
	MBps    float64       `json:"mb_per_sec"`
}

// Report is the result of Run.
type Report struct {
	Size     int    `json:"size_bytes"`
	Seed     uint64 `json:"seed"`
	Encrypt  Phase  `json:"encrypt"`
	Decrypt  Phase  `json:"decrypt"`
	Verified bool   `json:"verified"`
}

// Run generates a seeded payload and key, encrypts then decrypts the payload
// in place and reports the throughput of each pass. With opts.Verify a
// payload that does not survive the round trip is an error.
func Run(c *kuznechik.Cipher, opts Options) (Report, error) {
	if opts.Size <= 0 || opts.Size%kuznechik.BlockSize != 0 {
		return Report{}, fmt.Errorf("%w (got %d)", kuznechik.ErrBufferSize, opts.Size)
	}

	gen, err := NewGenerator(opts.Seed)
	if err != nil {
		return Report{}, err
	}

	original := gen.Data(opts.Size)
	key := gen.Key()
	defer secure.Zero(key)

	data := make([]byte, len(original))
	copy(data, original)

	slog.Debug("Benchmark payload generated", "size", opts.Size, "seed", opts.Seed)

	tm := timer.New()
	report := Report{Size: opts.Size, Seed: opts.Seed}

	if report.Encrypt, err = timed(tm, phaseEncrypt, opts.Size, func() error {
		return c.Encrypt(data, key)
	}); err != nil {
		return Report{}, err
	}

	if report.Decrypt, err = timed(tm, phaseDecrypt, opts.Size, func() error {
		return c.Decrypt(data, key)
	}); err != nil {
		return Report{}, err
	}

	if opts.Verify {
		if !bytes.Equal(original, data) {
			return report, fmt.Errorf("round trip mismatch over %d bytes", opts.Size)
		}
		report.Verified = true
	}

	slog.Info("Benchmark finished",
		"size", opts.Size,
		"encrypt_ms", report.Encrypt.Millis,
		"encrypt_mbps", report.Encrypt.MBps,
		"decrypt_ms", report.Decrypt.Millis,
		"decrypt_mbps", report.Decrypt.MBps,
		"verified", report.Verified)

	return report, nil
}

func timed(tm *timer.Timer, label string, size int, fn func() error) (Phase, error) {
	tm.Start(label)
	if err := fn(); err != nil {
		return Phase{}, fmt.Errorf("%s: %w", label, err)
	}

	if _, err := tm.Finish(label); err != nil {
		return Phase{}, err
	}

	d, err := tm.Result(label)
	if err != nil {
		return Phase{}, err
	}

	slog.Debug("Benchmark phase done", "phase", label, "elapsed", d)
	return newPhase(d, size), nil
}

func newPhase(d time.Duration, size int) Phase {
	p := Phase{Elapsed: d, Millis: d.Milliseconds()}
	if d > 0 {
		p.MBps = float64(size) / MB / d.Seconds()
	}
	return p
}
