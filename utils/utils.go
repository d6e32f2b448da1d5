package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
)

func Ternary[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}

func ArrayContains[T any](array []T, check func(elem T) bool) (int, bool) {
	for idx, elem := range array {
		if check(elem) {
			return idx, true
		}
	}
	return -1, false
}

// ChunkSlice splits the slice into consecutive chunks of at most size
// elements; the final chunk carries the remainder.
func ChunkSlice[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return nil
	}
	var chunks [][]T
	for size < len(items) {
		items, chunks = items[size:], append(chunks, items[0:size:size])
	}
	return append(chunks, items)
}

// UnmarshalFile reads the file and decodes it into dest.
func UnmarshalFile(path string, dest any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %s", path, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to unmarshal file %s: %s", path, err)
	}
	return nil
}

func IsJSONCompatible(data []byte) bool {
	trimmed := strings.TrimSpace(string(data))
	return json.Valid([]byte(trimmed))
}
