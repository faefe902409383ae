package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapses runs", "a  b\t\tc\n\nd", "a b c d"},
		{"trims edges", "  hello world  ", "hello world"},
		{"keeps single spaces", "one two three", "one two three"},
		{"empty", "   \n\t ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeText(tt.in))
		})
	}
}

func TestExtractJobText_Selector(t *testing.T) {
	html := `<html><body>
		<nav>Sign in   Join now</nav>
		<div class="show-more-less-html__markup">
			We are hiring a   Go engineer.
			You will build   backend services.
		</div>
	</body></html>`

	text, err := ExtractJobText(strings.NewReader(html))
	require.NoError(t, err)
	assert.Equal(t, "We are hiring a Go engineer. You will build backend services.", text)
	assert.NotContains(t, text, "Sign in")
}

func TestExtractJobText_BodyFallback(t *testing.T) {
	html := `<html><body><p>Generic  job   page text.</p></body></html>`

	text, err := ExtractJobText(strings.NewReader(html))
	require.NoError(t, err)
	assert.Equal(t, "Generic job page text.", text)
}

func TestExtractResumeText_Plain(t *testing.T) {
	text, err := ExtractResumeText("text/plain", []byte("Senior  engineer\n\n5 years Go"))
	require.NoError(t, err)
	assert.Equal(t, "Senior engineer 5 years Go", text)
}

func TestExtractResumeText_Unsupported(t *testing.T) {
	_, err := ExtractResumeText("image/png", []byte{0x89})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported resume type")
}
