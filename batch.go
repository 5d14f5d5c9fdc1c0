package barchart

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Summary partitions the symbols of a batch run by outcome. Every input
// symbol lands in exactly one of the three lists.
type Summary struct {
	Succeeded []string
	Failed    []string
	Skipped   []string
}

// Total returns the number of symbols processed.
func (s Summary) Total() int {
	return len(s.Succeeded) + len(s.Failed) + len(s.Skipped)
}

// LoadSymbols reads stock symbols from a text file, one per line,
// trimmed and uppercased. An unreadable file yields an empty list.
func LoadSymbols(path string) []string {
	file, err := os.Open(path)
	if err != nil {
		log.Errorf("Failed to read symbols file: %v", err)
		return nil
	}
	defer file.Close()

	var symbols []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if sym := strings.ToUpper(strings.TrimSpace(scanner.Text())); sym != "" {
			symbols = append(symbols, sym)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Errorf("Failed to read symbols file: %v", err)
		return nil
	}
	return symbols
}

// ProcessBatch captures every symbol in turn. A failing symbol never
// stops the batch; it is recorded and processing continues.
func (r *Runner) ProcessBatch(symbols []string) Summary {
	var sum Summary

	skip := make(map[string]bool, len(r.Config.SkipSymbols))
	for _, s := range r.Config.SkipSymbols {
		skip[s] = true
	}

	for i, symbol := range symbols {
		log.Infof("[%d/%d] Processing %s", i+1, len(symbols), symbol)

		if skip[strings.ToUpper(symbol)] {
			log.Infof("Skipping %s: on the skip list", symbol)
			sum.Skipped = append(sum.Skipped, symbol)
			continue
		}

		switch err := r.processOne(symbol); {
		case err == nil:
			sum.Succeeded = append(sum.Succeeded, symbol)
		case errors.Is(err, ErrDuplicate):
			sum.Skipped = append(sum.Skipped, symbol)
		default:
			log.Errorf("%s failed: %v", symbol, err)
			sum.Failed = append(sum.Failed, symbol)
		}
	}

	return sum
}

// processOne shields the batch from panics in the capture pipeline.
func (r *Runner) processOne(symbol string) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("panic: %v", v)
		}
	}()

	_, err = r.TakeScreenshot(symbol)
	return err
}
