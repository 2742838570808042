package feed

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/five82/marquee/internal/config"
)

// Parse reads one item per line in the form "title | subtitle | accent".
// Subtitle and accent are optional; blank lines and lines starting with #
// are skipped.
func Parse(r io.Reader) ([]config.Item, error) {
	var items []config.Item
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.SplitN(line, "|", 3)
		var item config.Item
		item.Title = strings.TrimSpace(fields[0])
		if len(fields) > 1 {
			item.Subtitle = strings.TrimSpace(fields[1])
		}
		if len(fields) > 2 {
			item.Accent = strings.TrimSpace(fields[2])
		}
		if item.Title == "" && item.Subtitle == "" {
			continue
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	return items, nil
}

// Read parses the items file at path.
func Read(path string) ([]config.Item, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open items: %w", err)
	}
	defer file.Close()
	return Parse(file)
}
