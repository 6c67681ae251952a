package reconcile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/locbundle-backend/internal/domain"
)

// ScanSource reads a source file line by line and calls fn with the 1-based
// line number and the parsed pair of every significant line. A leading UTF-8
// BOM is dropped. Lines longer than maxLineBytes (zero means 1 MiB) fail with
// a *domain.ValidationError. Errors returned by fn stop the scan unchanged.
func ScanSource(ctx context.Context, r io.Reader, maxLineBytes int, fn func(lineNumber int, parsed domain.ParsedLine) error) error {
	if maxLineBytes <= 0 {
		maxLineBytes = defaultMaxLineBytes
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(64*1024, maxLineBytes)), maxLineBytes)

	lineNumber := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Text()
		lineNumber++
		if lineNumber == 1 {
			line = strings.TrimPrefix(line, utf8BOM)
		}
		if !IsSignificant(line) {
			continue
		}

		if err := fn(lineNumber, ParseLine(line)); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return domain.NewValidationError("file",
				fmt.Sprintf("line %d exceeds %d bytes", lineNumber+1, maxLineBytes))
		}
		return fmt.Errorf("read source line %d: %w", lineNumber+1, err)
	}
	return nil
}
