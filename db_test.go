package picbin

import (
	"bytes"
	"crypto/sha1"
	"errors"
	"hash/crc32"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/picbin/canvas"
	"github.com/bodgit/picbin/image"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(filepath.Join(t.TempDir(), "picbin.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		c.Close()
	})
	return c
}

func sha1Sum(b []byte) []byte {
	sum := sha1.Sum(b)
	return sum[:]
}

func crc32Sum(b []byte) uint32 {
	return crc32.ChecksumIEEE(b)
}

func TestCatalog(t *testing.T) {
	c := newCatalog(t)

	e, err := c.Find("ABCDEF")
	require.NoError(t, err)
	assert.Nil(t, e)

	require.NoError(t, c.Record("ABCDEF", "file.bin", 1<<40, 0xdeadbeef))
	e, err = c.Find("ABCDEF")
	require.NoError(t, err)
	assert.Equal(t, &Entry{SHA1: "ABCDEF", Name: "file.bin", Length: 1 << 40, CRC: 0xdeadbeef}, e)

	require.NoError(t, c.Record("ABCDEF", "other.bin", 5, 1))
	e, err = c.Find("ABCDEF")
	require.NoError(t, err)
	assert.Equal(t, &Entry{SHA1: "ABCDEF", Name: "other.bin", Length: 5, CRC: 1}, e)
}

func TestCatalogEncodeDecode(t *testing.T) {
	dir := t.TempDir()
	p := New(newCatalog(t), discard, false)

	src := filepath.Join(dir, "src.bin")
	img := filepath.Join(dir, "img.png")
	dst := filepath.Join(dir, "dst.bin")

	in := sample(5)
	writeFile(t, src, in)
	require.NoError(t, p.Encode(src, img))

	sum := imageSHA1(sha1Sum(readFile(t, img)))
	e, err := p.catalog.Find(sum)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "src.bin", e.Name)
	assert.Equal(t, uint64(5), e.Length)

	require.NoError(t, p.Decode(img, dst))
	assert.Equal(t, in, readFile(t, dst))
}

func TestCatalogTruncates(t *testing.T) {
	dir := t.TempDir()
	c := newCatalog(t)
	p := New(c, discard, false)

	// An image with more mapped pixels than the catalog says were encoded
	in := sample(9)
	m, err := canvas.Encode(in)
	require.NoError(t, err)
	b := new(bytes.Buffer)
	require.NoError(t, image.Encode(b, m, image.PNG))

	src := filepath.Join(dir, "src.png")
	dst := filepath.Join(dir, "dst.bin")
	writeFile(t, src, b.Bytes())

	require.NoError(t, c.Record(imageSHA1(sha1Sum(b.Bytes())), "src.bin", 7, crc32Sum(in[:7])))
	require.NoError(t, p.Decode(src, dst))
	assert.Equal(t, in[:7], readFile(t, dst))
}

func TestCatalogMismatch(t *testing.T) {
	dir := t.TempDir()
	c := newCatalog(t)
	p := New(c, discard, true)

	in := sample(4)
	m, err := canvas.Encode(in)
	require.NoError(t, err)
	b := new(bytes.Buffer)
	require.NoError(t, image.Encode(b, m, image.PNG))

	src := filepath.Join(dir, "src.png")
	dst := filepath.Join(dir, "dst.bin")
	writeFile(t, src, b.Bytes())
	sum := imageSHA1(sha1Sum(b.Bytes()))

	require.NoError(t, c.Record(sum, "src.bin", 5, crc32Sum(in)))
	err = p.Decode(src, dst)
	assert.True(t, errors.Is(err, ErrLengthMismatch))

	require.NoError(t, c.Record(sum, "src.bin", 4, crc32Sum(in)+1))
	err = p.Decode(src, dst)
	assert.True(t, errors.Is(err, ErrChecksumMismatch))
}

func TestCatalogLengthExceedsImage(t *testing.T) {
	dir := t.TempDir()
	c := newCatalog(t)
	p := New(c, discard, false)

	in := sample(4)
	m, err := canvas.Encode(in)
	require.NoError(t, err)
	b := new(bytes.Buffer)
	require.NoError(t, image.Encode(b, m, image.PNG))

	src := filepath.Join(dir, "src.png")
	dst := filepath.Join(dir, "dst.bin")
	writeFile(t, src, b.Bytes())

	require.NoError(t, c.Record(imageSHA1(sha1Sum(b.Bytes())), "src.bin", 1<<62, crc32Sum(in)))
	err = p.Decode(src, dst)
	assert.True(t, errors.Is(err, ErrLengthMismatch))
	_, err = os.Stat(dst)
	assert.True(t, os.IsNotExist(err))
}
