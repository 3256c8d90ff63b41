package tool

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Argument coercion for orchestrator-supplied payloads. JSON numbers arrive
// as float64, some models send numbers as strings, and digit fields must
// keep their leading zeros, so everything is coerced explicitly.

func stringArg(args map[string]any, key string) (string, error) {
	raw, ok := args[key]
	if !ok {
		return "", fmt.Errorf("%s is required", key)
	}
	switch v := raw.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case float64:
		if v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10), nil
		}
		return "", fmt.Errorf("%s must be a string", key)
	default:
		return "", fmt.Errorf("%s must be a string", key)
	}
}

// optionalStringArg treats an absent key as empty so downstream
// completeness checks can name every missing field at once.
func optionalStringArg(args map[string]any, key string) (string, error) {
	if _, ok := args[key]; !ok {
		return "", nil
	}
	return stringArg(args, key)
}

func optionalIntArg(args map[string]any, key string) (*int32, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, nil
	}
	var value int64
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return nil, fmt.Errorf("%s must be an integer", key)
		}
		value = int64(v)
	case int:
		value = int64(v)
	case int32:
		value = int64(v)
	case int64:
		value = v
	case json.Number:
		parsed, err := v.Int64()
		if err != nil {
			return nil, fmt.Errorf("%s must be an integer", key)
		}
		value = parsed
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%s must be an integer", key)
		}
		value = parsed
	default:
		return nil, fmt.Errorf("%s must be an integer", key)
	}
	if value < math.MinInt32 || value > math.MaxInt32 {
		return nil, fmt.Errorf("%s is out of range", key)
	}
	out := int32(value)
	return &out, nil
}
