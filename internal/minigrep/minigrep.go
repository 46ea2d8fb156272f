// Package minigrep prints the lines of a file that contain a query string.
package minigrep

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// IgnoreCaseEnv switches to case-insensitive search when present, whatever
// its value.
const IgnoreCaseEnv = "IGNORE_CASE"

var (
	ErrMissingQuery = errors.New("Didn't get a query string")
	ErrMissingPath  = errors.New("Didn't get a file path")
)

type Config struct {
	Query      string
	FilePath   string
	IgnoreCase bool
}

// BuildConfig reads the query and file path from args, which exclude the
// program name. Extra arguments are ignored.
func BuildConfig(args []string, lookupEnv func(string) (string, bool)) (Config, error) {
	if len(args) < 1 {
		return Config{}, ErrMissingQuery
	}
	if len(args) < 2 {
		return Config{}, ErrMissingPath
	}
	_, ignoreCase := lookupEnv(IgnoreCaseEnv)
	return Config{Query: args[0], FilePath: args[1], IgnoreCase: ignoreCase}, nil
}

// Run searches the configured file and writes each matching line to w.
func Run(cfg Config, w io.Writer) error {
	contents, err := os.ReadFile(cfg.FilePath)
	if err != nil {
		return err
	}

	var results []string
	if cfg.IgnoreCase {
		results = SearchCaseInsensitive(cfg.Query, string(contents))
	} else {
		results = Search(cfg.Query, string(contents))
	}

	bw := bufio.NewWriter(w)
	for _, line := range results {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func Search(query, contents string) []string {
	return filterLines(contents, func(line string) bool {
		return strings.Contains(line, query)
	})
}

func SearchCaseInsensitive(query, contents string) []string {
	query = strings.ToLower(query)
	return filterLines(contents, func(line string) bool {
		return strings.Contains(strings.ToLower(line), query)
	})
}

func filterLines(contents string, keep func(string) bool) []string {
	results := make([]string, 0)
	for _, line := range lines(contents) {
		if keep(line) {
			results = append(results, line)
		}
	}
	return results
}

// lines splits on \n, dropping a trailing \r and the empty tail after a
// final newline.
func lines(contents string) []string {
	if contents == "" {
		return nil
	}
	out := strings.Split(contents, "\n")
	if out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	for i, l := range out {
		out[i] = strings.TrimSuffix(l, "\r")
	}
	return out
}
