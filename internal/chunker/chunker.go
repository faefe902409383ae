// Package chunker splits raw document text into overlapping fixed-size
// segments suitable for embedding.
package chunker

import (
	"errors"
	"fmt"
)

const (
	// DefaultChunkSize is the window length in characters.
	DefaultChunkSize = 1000
	// DefaultOverlap is how many characters consecutive windows share.
	DefaultOverlap = 100
)

// ErrInvalidConfig is returned when the chunking parameters would not
// advance through the input.
var ErrInvalidConfig = errors.New("chunker: overlap must be smaller than chunk size")

// Chunk is one segment of a source document. Offset is the character
// offset of the segment within the original text.
type Chunk struct {
	Text   string
	Offset int
}

// Split cuts text into windows of size characters advancing by
// size-overlap, so consecutive chunks share overlap characters. Every
// character of the input is covered by at least one chunk and the
// final chunk may be shorter than size. Windows are rune-aligned, so
// multi-byte input never splits mid-character.
func Split(text string, size, overlap int) ([]Chunk, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w (size=%d)", ErrInvalidConfig, size)
	}
	if overlap < 0 || overlap >= size {
		return nil, fmt.Errorf("%w (size=%d overlap=%d)", ErrInvalidConfig, size, overlap)
	}
	runes := []rune(text)
	if len(runes) == 0 {
		return nil, nil
	}

	step := size - overlap
	var chunks []Chunk
	for i := 0; i < len(runes); i += step {
		end := i + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, Chunk{Text: string(runes[i:end]), Offset: i})
		if end == len(runes) {
			break
		}
	}
	return chunks, nil
}

// SplitDefault applies the default window parameters.
func SplitDefault(text string) ([]Chunk, error) {
	return Split(text, DefaultChunkSize, DefaultOverlap)
}

// Texts returns just the chunk contents, in order.
func Texts(chunks []Chunk) []string {
	out := make([]string, len(chunks))
	for i, c := range chunks {
		out[i] = c.Text
	}
	return out
}
