package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grovekit/grove/pkg/forest"
)

// Supported interchange formats.
const (
	formatNested = "nested" // versioned envelope with recursive roots
	formatFlat   = "flat"   // array of {value, parentId} records
	formatPlain  = "plain"  // bare recursive array, no version field
)

// allFormats lists the accepted values for --from/--to style flags.
var allFormats = []string{formatNested, formatFlat, formatPlain}

// validFormat reports whether name is a known interchange format.
func validFormat(name string) bool {
	for _, f := range allFormats {
		if f == name {
			return true
		}
	}
	return false
}

// readForest loads a forest from path in the given format.
// A path of "-" reads from stdin.
func readForest(path, format string) (*forest.Forest[forest.Item], error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	f := forest.New[forest.Item]()
	switch format {
	case formatNested:
		err = f.Deserialize(data)
	case formatFlat:
		err = f.UnmarshalFlat(data)
	case formatPlain:
		err = f.UnmarshalPlain(data)
	default:
		return nil, fmt.Errorf("unknown format %q (expected %s)", format, strings.Join(allFormats, ", "))
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s as %s: %w", path, format, err)
	}
	return f, nil
}

// encodeForest serializes f in the given format.
func encodeForest(f *forest.Forest[forest.Item], format string) ([]byte, error) {
	switch format {
	case formatNested:
		return f.Serialize()
	case formatFlat:
		return f.MarshalFlat()
	case formatPlain:
		return f.MarshalPlain()
	default:
		return nil, fmt.Errorf("unknown format %q (expected %s)", format, strings.Join(allFormats, ", "))
	}
}

// writeOutput writes data to path, or to stdout when path is empty or "-".
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
