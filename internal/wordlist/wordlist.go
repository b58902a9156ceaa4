// Package wordlist provides the built-in typing vocabulary.
package wordlist

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/verte-zerg/monkeytype-cli/internal/model"
)

//go:embed words.txt
var embeddedWords string

var defaultWords = sync.OnceValue(func() []model.Word {
	words, err := ParseWords(strings.NewReader(embeddedWords))
	if err != nil {
		panic(fmt.Sprintf("embedded word list: %v", err))
	}
	return words
})

// Default returns the embedded vocabulary. The returned slice is shared and
// must not be modified.
func Default() []model.Word {
	return defaultWords()
}

// ParseWords reads one word per line, skipping blanks, duplicates and tokens
// rejected by Keep.
func ParseWords(r io.Reader) ([]model.Word, error) {
	var words []model.Word
	seen := map[string]struct{}{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !Keep(line) {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		words = append(words, model.Word(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}
