package hashcheck

import (
	"crypto/md5"  //nolint:gosec // MD5 support is intentional for legacy use
	"crypto/sha1" //nolint:gosec // SHA1 support is intentional for legacy use
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/vertti/envread/pkg/check"
)

// FileOpener abstracts file operations for testability.
type FileOpener interface {
	Open(name string) (io.ReadCloser, error)
}

// RealFileOpener implements FileOpener using the real filesystem.
type RealFileOpener struct{}

func (r *RealFileOpener) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// Algorithm represents supported digest algorithms.
type Algorithm string

const (
	AlgorithmSHA256 Algorithm = "sha256"
	AlgorithmSHA384 Algorithm = "sha384"
	AlgorithmSHA512 Algorithm = "sha512"
	AlgorithmSHA1   Algorithm = "sha1"
	AlgorithmMD5    Algorithm = "md5"
	AlgorithmBLAKE3 Algorithm = "blake3"
)

// Algorithms lists every supported algorithm name.
func Algorithms() []string {
	return []string{
		string(AlgorithmSHA256), string(AlgorithmSHA384), string(AlgorithmSHA512),
		string(AlgorithmSHA1), string(AlgorithmMD5), string(AlgorithmBLAKE3),
	}
}

// Valid reports whether a names a supported algorithm. The empty string
// is valid and means the default (SHA256).
func (a Algorithm) Valid() bool {
	switch a {
	case "", AlgorithmSHA256, AlgorithmSHA384, AlgorithmSHA512, AlgorithmSHA1, AlgorithmMD5, AlgorithmBLAKE3:
		return true
	}
	return false
}

func (a Algorithm) NewHasher() hash.Hash {
	switch a {
	case AlgorithmSHA384:
		return sha512.New384()
	case AlgorithmSHA512:
		return sha512.New()
	case AlgorithmSHA1:
		return sha1.New() //nolint:gosec // SHA1 support is intentional for legacy use
	case AlgorithmMD5:
		return md5.New() //nolint:gosec // MD5 support is intentional for legacy use
	case AlgorithmBLAKE3:
		return blake3.New()
	default:
		return sha256.New()
	}
}

func (a Algorithm) ExpectedHexLength() int {
	switch a {
	case AlgorithmSHA512:
		return 128
	case AlgorithmSHA384:
		return 96
	case AlgorithmSHA1:
		return 40
	case AlgorithmMD5:
		return 32
	default:
		return 64 // SHA256 and BLAKE3 are both 256-bit
	}
}

// Sum computes the hex digest of r using a.
func Sum(r io.Reader, a Algorithm) (string, error) {
	h := a.NewHasher()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Check computes an env file's digest and optionally verifies it
// against an expected hex value.
type Check struct {
	File      string
	Algorithm Algorithm  // SHA256 when empty
	Expected  string     // optional expected hex digest
	Opener    FileOpener // injected for testing
}

func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("hash: %s", c.File),
	}

	if c.File == "" {
		return result.Failf("file path is required")
	}

	algorithm := c.Algorithm
	if algorithm == "" {
		algorithm = AlgorithmSHA256
	}
	if !algorithm.Valid() {
		return result.Failf("unsupported algorithm %q (supported: %s)", string(c.Algorithm), strings.Join(Algorithms(), ", "))
	}

	expected := strings.ToLower(c.Expected)
	if expected != "" {
		if err := validateHex(expected, algorithm); err != nil {
			return result.Failf("invalid hash: %v", err)
		}
	}

	opener := c.Opener
	if opener == nil {
		opener = &RealFileOpener{}
	}

	f, err := opener.Open(c.File)
	if err != nil {
		if os.IsNotExist(err) {
			return result.Failf("file not found")
		}
		if os.IsPermission(err) {
			return result.Failf("permission denied")
		}
		return result.Failf("failed to open file: %v", err)
	}
	defer func() { _ = f.Close() }()

	actual, err := Sum(f, algorithm)
	if err != nil {
		return result.Failf("failed to compute hash: %v", err)
	}

	if expected != "" && actual != expected {
		return result.Failf("hash mismatch\n       expected: %s\n       actual:   %s", expected, actual)
	}

	result.Status = check.StatusOK
	result.AddDetailf("algorithm: %s", algorithm)
	result.AddDetailf("hash: %s", actual)
	return result
}

func validateHex(hashStr string, algorithm Algorithm) error {
	if _, err := hex.DecodeString(hashStr); err != nil {
		return fmt.Errorf("not valid hexadecimal")
	}

	expectedLen := algorithm.ExpectedHexLength()
	if len(hashStr) != expectedLen {
		return fmt.Errorf("expected %d characters for %s, got %d", expectedLen, algorithm, len(hashStr))
	}

	return nil
}
