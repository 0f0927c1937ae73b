package serialization

import (
	"bytes"
	"compress/gzip"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snippet struct {
	Text  string
	Score int
}

func gzipString(x string) []byte {
	var b bytes.Buffer
	w := gzip.NewWriter(&b)
	w.Write([]byte(x))
	w.Close()
	return b.Bytes()
}

func TestJSON(t *testing.T) {
	var snippets []*snippet
	d := []byte(`{"Text": "x", "Score": 2}{"Text": "y", "Score": 3}`)
	err := decodeAs(bytes.NewBuffer(d), "foo.json", func(s *snippet) {
		snippets = append(snippets, s)
	})
	require.NoError(t, err)
	assert.Len(t, snippets, 2)
}

func TestGzippedJSON(t *testing.T) {
	var snippets []*snippet
	d := gzipString(`{"Text": "x", "Score": 2}{"Text": "y", "Score": 3}`)
	err := decodeAs(bytes.NewBuffer(d), "bar.json.gz", func(s *snippet) {
		snippets = append(snippets, s)
	})
	require.NoError(t, err)
	assert.Len(t, snippets, 2)
}

func TestDecodeOneJSON(t *testing.T) {
	var s snippet
	d := []byte(`{"Text": "x", "Score": 2}`)
	err := decodeAs(bytes.NewBuffer(d), "foo.json", &s)
	require.NoError(t, err)
	assert.EqualValues(t, "x", s.Text)
	assert.EqualValues(t, 2, s.Score)
}

func TestUnknownExtension(t *testing.T) {
	err := decodeAs(bytes.NewBufferString("x"), "foo.csv", &snippet{})
	require.Error(t, err)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	dir, err := ioutil.TempDir("", "serialization")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	want := snippet{Text: "a fine film", Score: 4}
	for _, name := range []string{"model.json", "model.json.gz", "model.gob", "model.gob.gz"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Encode(path, want), name)

		var got snippet
		require.NoError(t, Decode(path, &got), name)
		assert.Equal(t, want, got, name)
	}
}
