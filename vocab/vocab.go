// Package vocab holds the ordered word vocabulary that names are drawn from.
//
// A word's position in the list IS its index: the list and its order are part
// of the published compatibility contract, and reordering or editing a
// released list silently remaps every name ever issued. The bundled default
// list ships inside the binary via go:embed.
//
// A Vocabulary is immutable after construction and safe to share across any
// number of goroutines without locking.
package vocab

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	_ "embed"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/starhash/starhash/errors"
)

//go:embed wordlist.txt
var defaultWordlist string

var defaultOnce = sync.OnceValues(func() (*Vocabulary, error) {
	return Load(strings.NewReader(defaultWordlist))
})

// Vocabulary is an ordered, duplicate-free word list with a case-insensitive
// reverse index.
type Vocabulary struct {
	words []string
	index map[string]int
	sum   string
}

// New validates words and builds the reverse index. Words must be non-empty,
// free of whitespace and hyphens (they would collide with the name
// separator), and unique case-insensitively.
func New(words []string) (*Vocabulary, error) {
	if len(words) == 0 {
		return nil, errors.New("vocabulary is empty")
	}

	index := make(map[string]int, len(words))
	h := sha256.New()
	for i, w := range words {
		if w == "" {
			return nil, errors.Newf("empty word at position %d", i)
		}
		if strings.ContainsAny(w, " \t-") {
			return nil, errors.Newf("word %q at position %d contains whitespace or hyphen", w, i)
		}
		key := strings.ToLower(w)
		if prev, dup := index[key]; dup {
			return nil, errors.Newf("duplicate word %q at positions %d and %d", w, prev, i)
		}
		index[key] = i
		h.Write([]byte(key))
		h.Write([]byte{'\n'})
	}

	return &Vocabulary{
		words: words,
		index: index,
		sum:   hex.EncodeToString(h.Sum(nil)),
	}, nil
}

// Load reads one word per line. Blank lines and '#' comment lines are
// skipped. Diceware-style lines ("11111<TAB>word") are accepted by taking the
// field after the tab.
func Load(r io.Reader) (*Vocabulary, error) {
	words, err := readWords(r)
	if err != nil {
		return nil, err
	}
	return New(words)
}

// LoadFile loads a vocabulary from a wordlist file on disk.
func LoadFile(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open wordlist %s", path)
	}
	defer f.Close()

	v, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid wordlist %s", path)
	}
	return v, nil
}

// Default returns the vocabulary bundled with the binary. The parsed list is
// cached after the first call.
func Default() (*Vocabulary, error) {
	return defaultOnce()
}

// Size returns the number of words W.
func (v *Vocabulary) Size() int { return len(v.words) }

// Word returns the word at position i, case-preserving.
func (v *Vocabulary) Word(i int) (string, error) {
	if i < 0 || i >= len(v.words) {
		return "", errors.Newf("word index %d not in [0, %d)", i, len(v.words))
	}
	return v.words[i], nil
}

// Index returns the position of word, looked up case-insensitively.
func (v *Vocabulary) Index(word string) (int, bool) {
	i, ok := v.index[strings.ToLower(word)]
	return i, ok
}

// Checksum returns a hex SHA-256 over the lowercased word sequence. Two
// vocabularies with the same checksum decode names identically.
func (v *Vocabulary) Checksum() string { return v.sum }

// Collate merges several wordlist files into one sorted, lowercased,
// duplicate-free word slice, the shape a released wordlist asset is built
// from.
func Collate(paths ...string) ([]string, error) {
	set := make(map[string]struct{})
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open wordlist %s", path)
		}
		words, err := readWords(f)
		f.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read wordlist %s", path)
		}
		for _, w := range words {
			set[strings.ToLower(w)] = struct{}{}
		}
	}

	merged := make([]string, 0, len(set))
	for w := range set {
		merged = append(merged, w)
	}
	sort.Strings(merged)
	return merged, nil
}

func readWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if i := strings.LastIndexByte(line, '\t'); i >= 0 {
			line = strings.TrimSpace(line[i+1:])
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read wordlist")
	}
	return words, nil
}
