package sources

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/nets"
	"github.com/zeebo/blake3"
)

type Source struct {
	Location string
	Text     string
	// Digest is the BLAKE3-256 of Text
	Digest [32]byte
}

func (s *Source) DigestHex() string {
	return hex.EncodeToString(s.Digest[:])
}

// Open reads program text from a file path, an http(s) URL, or "-" for stdin.
// Errors read as a single line; the stack-traced form goes to the debug log.
type Open func(ctx context.Context, location string) (*Source, error)

func (Module) Open(
	client nets.HTTPClient,
	stdin Stdin,
	logger logs.Logger,
) Open {
	return func(ctx context.Context, location string) (*Source, error) {
		var data []byte
		var err error

		switch {
		case location == "-":
			data, err = decode(stdin)
		case strings.HasPrefix(location, "http://"),
			strings.HasPrefix(location, "https://"):
			data, err = fetch(ctx, client, location)
		default:
			data, err = readFile(location)
		}
		if err != nil {
			err = fmt.Errorf("read program %s: %w", location, err)
			logger.DebugContext(ctx, "read program failed",
				"location", location,
				"error", wrap(err),
			)
			return nil, err
		}

		source := &Source{
			Location: location,
			Text:     string(data),
			Digest:   blake3.Sum256(data),
		}
		logger.InfoContext(ctx, "program loaded",
			"location", location,
			"bytes", len(data),
			"blake3", source.DigestHex(),
		)
		return source, nil
	}
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decode(f)
}

func fetch(ctx context.Context, client nets.HTTPClient, location string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %s", resp.Status)
	}
	return decode(resp.Body)
}
