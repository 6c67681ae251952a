package reconcile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path"

	"github.com/klauspost/compress/zip"

	"github.com/heartmarshall/locbundle-backend/internal/domain"
)

// EncodeBundle renders a bundle as an indented JSON object whose members
// follow the bundle's insertion order. Unicode escapes are resolved to
// literal characters.
func EncodeBundle(b domain.Bundle) ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, item := range b.Content {
		if i > 0 {
			compact.WriteByte(',')
		}
		key, err := json.Marshal(item.Key)
		if err != nil {
			return nil, fmt.Errorf("encode key %q: %w", item.Key, err)
		}
		text, err := json.Marshal(item.Text)
		if err != nil {
			return nil, fmt.Errorf("encode text for key %q: %w", item.Key, err)
		}
		compact.Write(key)
		compact.WriteByte(':')
		compact.Write(text)
	}
	compact.WriteByte('}')

	decoded := DecodeUnicodeEscapes(compact.String())

	var out bytes.Buffer
	if err := json.Indent(&out, []byte(decoded), "", "  "); err != nil {
		return nil, fmt.Errorf("indent %s: %w", b.Filename, err)
	}
	return out.Bytes(), nil
}

// AssembleArchive writes bundles as zip entries to w, one entry per bundle
// in input order. The zip writer is closed on every path.
func AssembleArchive(w io.Writer, bundles []domain.Bundle) (err error) {
	zw := zip.NewWriter(w)
	defer func() {
		if cerr := zw.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close archive: %w", cerr)
		}
	}()

	for _, b := range bundles {
		if b.Filename == "" || path.Base(b.Filename) != b.Filename {
			return fmt.Errorf("archive entry %q: must be a flat file name", b.Filename)
		}

		content, err := EncodeBundle(b)
		if err != nil {
			return err
		}

		fw, err := zw.Create(b.Filename)
		if err != nil {
			return fmt.Errorf("create archive entry %s: %w", b.Filename, err)
		}
		if _, err := fw.Write(content); err != nil {
			return fmt.Errorf("write archive entry %s: %w", b.Filename, err)
		}
	}

	return nil
}

// Assemble returns the zip archive of bundles as bytes.
func Assemble(bundles []domain.Bundle) ([]byte, error) {
	var buf bytes.Buffer
	if err := AssembleArchive(&buf, bundles); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
