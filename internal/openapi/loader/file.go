package loader

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func loadFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("openapi loader: file path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("openapi loader: read %s: %w", path, err)
	}
	return data, nil
}
