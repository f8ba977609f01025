// Command squares squares a list of numbers and prints the result.
//
// Numbers come from command-line arguments; with no arguments a small
// demonstration dataset is used. Invalid input exits with status 1.
package main

import (
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/TomasMT1104/Lab-Final-IA/internal/infrastructure/logging"
	"github.com/TomasMT1104/Lab-Final-IA/internal/mathutil"
)

func main() {
	logger := logging.NewDefault()
	defer logger.Sync()

	data, err := parseArgs(os.Args[1:])
	if err != nil {
		logger.Error("invalid input", zap.Error(err))
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	logger.Info("squaring numbers", zap.Int("count", len(data)))

	squares, err := mathutil.SquareAll(data)
	if err != nil {
		logger.Error("squaring failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	fmt.Println("numbers:", format(data))
	fmt.Println("squares:", format(squares))
}

// parseArgs converts arguments to numeric values, preferring integers so
// integer inputs square without losing the integer variant.
func parseArgs(args []string) ([]mathutil.Value, error) {
	if len(args) == 0 {
		return []mathutil.Value{
			mathutil.Int(1),
			mathutil.Int(2),
			mathutil.Int(3),
			mathutil.Int(4),
			mathutil.Int(5),
		}, nil
	}

	values := make([]mathutil.Value, 0, len(args))
	for _, arg := range args {
		if i, err := strconv.ParseInt(arg, 10, 64); err == nil {
			values = append(values, mathutil.Int(i))
			continue
		}
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", arg)
		}
		values = append(values, mathutil.Real(f))
	}
	return values, nil
}

func format(values []mathutil.Value) string {
	out := "["
	for i, v := range values {
		if i > 0 {
			out += " "
		}
		out += v.String()
	}
	return out + "]"
}
