package dataset

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"github.com/placementhub/joblist/internal/listing"
)

// SupportedVersions is the constraint an envelope "version" must satisfy.
const SupportedVersions = "^1.0.0"

// maxLineBytes bounds a single NDJSON line.
const maxLineBytes = 4 << 20

// Envelope keys shared by JSON and YAML documents.
const (
	versionKey = "version"
	recordsKey = "records"
)

// DecodeFile reads a dataset file, choosing the decoder from its extension.
func DecodeFile(path string) (listing.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset %s: %w", path, err)
	}
	defer f.Close()

	r, format, err := decompress(f, path)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", path, err)
	}
	defer r.Close()

	records, err := Decode(r, format)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return records, nil
}

// decompress wraps r according to a .gz or .zst suffix and returns the
// remaining format extension.
func decompress(r io.Reader, path string) (io.ReadCloser, string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	inner := strings.ToLower(filepath.Ext(strings.TrimSuffix(path, filepath.Ext(path))))

	switch ext {
	case ".gz":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, "", err
		}
		return gz, inner, nil
	case ".zst":
		dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, "", err
		}
		return dec.IOReadCloser(), inner, nil
	default:
		return io.NopCloser(r), ext, nil
	}
}

// Decode reads records from r in the given format (".json", ".ndjson",
// ".jsonl", ".yaml" or ".yml").
func Decode(r io.Reader, format string) (listing.Dataset, error) {
	switch format {
	case ".json":
		return decodeJSON(r)
	case ".ndjson", ".jsonl":
		return decodeNDJSON(r)
	case ".yaml", ".yml":
		return decodeYAML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func decodeJSON(r io.Reader) (listing.Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return listing.Dataset{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var top any
	if decodeErr := dec.Decode(&top); decodeErr != nil {
		return nil, decodeErr
	}
	var extra any
	if trailErr := dec.Decode(&extra); !errors.Is(trailErr, io.EOF) {
		return nil, fmt.Errorf("%w at offset %d", ErrTrailingData, dec.InputOffset())
	}
	return fromTopLevel(top)
}

func decodeNDJSON(r io.Reader) (listing.Dataset, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	ds := listing.Dataset{}
	line := 0
	for scanner.Scan() {
		line++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}
		dec := json.NewDecoder(bytes.NewReader(text))
		dec.UseNumber()
		var obj map[string]any
		if err := dec.Decode(&obj); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		ds = append(ds, listing.Record(obj))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ds, nil
}

func decodeYAML(r io.Reader) (listing.Dataset, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return listing.Dataset{}, nil
		}
		return nil, err
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	var top any
	if err := root.Decode(&top); err != nil {
		return nil, err
	}
	return fromTopLevel(top)
}

// fromTopLevel accepts a bare list of records or an envelope object with a
// "records" list and an optional "version".
func fromTopLevel(top any) (listing.Dataset, error) {
	switch v := top.(type) {
	case nil:
		return listing.Dataset{}, nil
	case []any:
		return toRecords(v)
	case map[string]any:
		return fromEnvelope(v)
	default:
		return nil, fmt.Errorf("%w: top level is %T", ErrMalformedRecord, top)
	}
}

func fromEnvelope(doc map[string]any) (listing.Dataset, error) {
	raw, ok := doc[recordsKey]
	if !ok {
		return nil, fmt.Errorf("%w: top-level object has no %q list", ErrMalformedRecord, recordsKey)
	}

	var version string
	switch v := doc[versionKey].(type) {
	case nil:
	case string:
		version = v
	default:
		version = fmt.Sprint(v)
	}
	if err := CheckVersion(version); err != nil {
		return nil, err
	}

	switch items := raw.(type) {
	case nil:
		return listing.Dataset{}, nil
	case []any:
		return toRecords(items)
	default:
		return nil, fmt.Errorf("%w: %q is %T, not a list", ErrMalformedRecord, recordsKey, raw)
	}
}

// CheckVersion validates an envelope version against SupportedVersions.
// An empty version is accepted.
func CheckVersion(version string) error {
	if version == "" {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrIncompatibleVersion, version, err)
	}
	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return err
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrIncompatibleVersion, v, SupportedVersions)
	}
	return nil
}

func toRecords(items []any) (listing.Dataset, error) {
	ds := make(listing.Dataset, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: item %d is %T", ErrMalformedRecord, i, item)
		}
		ds = append(ds, listing.Record(obj))
	}
	return ds, nil
}
