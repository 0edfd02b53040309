// Package secrets resolves the bucket identifiers the transformer writes to.
package secrets

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"gocloud.dev/runtimevar"
	_ "gocloud.dev/runtimevar/awsparamstore" // awsparamstore:// driver
	_ "gocloud.dev/runtimevar/filevar"       // file:// driver
)

// Buckets holds the resolved bucket identifiers.
type Buckets struct {
	Partitioned string `json:"partitioned"`
	Simple      string `json:"simple"`
}

// Resolve fetches bucket identifiers from a runtimevar URL (awsparamstore://
// or file://) holding a JSON document {"partitioned": ..., "simple": ...}.
// With an empty URL it falls back to the PARTITIONED_BUCKET and SIMPLE_BUCKET
// environment variables. Resolution happens once at process start; job
// arguments may still override either bucket afterwards.
func Resolve(ctx context.Context, varURL string) (Buckets, error) {
	if varURL == "" {
		return Buckets{
			Partitioned: os.Getenv("PARTITIONED_BUCKET"),
			Simple:      os.Getenv("SIMPLE_BUCKET"),
		}, nil
	}

	v, err := runtimevar.OpenVariable(ctx, varURL)
	if err != nil {
		return Buckets{}, fmt.Errorf("open secrets variable %s: %w", varURL, err)
	}
	defer v.Close()

	snap, err := v.Latest(ctx)
	if err != nil {
		return Buckets{}, fmt.Errorf("fetch secrets variable %s: %w", varURL, err)
	}

	var raw []byte
	switch val := snap.Value.(type) {
	case []byte:
		raw = val
	case string:
		raw = []byte(val)
	default:
		return Buckets{}, fmt.Errorf("unexpected secrets value type %T", snap.Value)
	}

	var b Buckets
	if err := json.Unmarshal(raw, &b); err != nil {
		return Buckets{}, fmt.Errorf("parse secrets document: %w", err)
	}
	return b, nil
}
