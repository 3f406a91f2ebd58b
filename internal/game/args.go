package game

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/osse101/AquaponicsSim_Go/internal/domain"
)

// Move arguments arrive positionally, either as Go values from bots or
// decoded from JSON where every number is a float64.

func argAt(args []any, i int) (any, bool) {
	if i >= len(args) || args[i] == nil {
		return nil, false
	}
	return args[i], true
}

func argString(args []any, i int, def string) (string, error) {
	v, ok := argAt(args, i)
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf(ErrMsgArgumentFmt, domain.ErrInvalidArgument, i, "expected a string")
	}
	return s, nil
}

func argInt(args []any, i int, def int) (int, error) {
	n, err := optionalInt(args, i)
	if err != nil {
		return 0, err
	}
	if n == nil {
		return def, nil
	}
	return *n, nil
}

func optionalInt(args []any, i int) (*int, error) {
	v, ok := argAt(args, i)
	if !ok {
		return nil, nil
	}

	var n int
	switch t := v.(type) {
	case int:
		n = t
	case int32:
		n = int(t)
	case int64:
		n = int(t)
	case float64:
		if t != math.Trunc(t) {
			return nil, fmt.Errorf(ErrMsgArgumentFmt, domain.ErrInvalidArgument, i, "expected a whole number")
		}
		n = int(t)
	case json.Number:
		parsed, err := strconv.Atoi(t.String())
		if err != nil {
			return nil, fmt.Errorf(ErrMsgArgumentFmt, domain.ErrInvalidArgument, i, "expected a whole number")
		}
		n = parsed
	case string:
		parsed, err := strconv.Atoi(t)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgArgumentFmt, domain.ErrInvalidArgument, i, "expected a whole number")
		}
		n = parsed
	default:
		return nil, fmt.Errorf(ErrMsgArgumentFmt, domain.ErrInvalidArgument, i, "expected a number")
	}
	return &n, nil
}
