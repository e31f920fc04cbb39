package vcxml

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/oatssss/vcxproj-stream-editor/internal/store"
)

// Check drives tokenizer and normalizer over src into the given checker,
// producing no output. A nil checker just validates that src tokenizes.
func Check(src io.Reader, checker Handler) error {
	if checker == nil {
		checker = Discard
	}
	return Tokenize(src, Normalize(checker))
}

// Transform drives the full rewrite pipeline over src: tokenizer, normalizer,
// the given filter, then line reconstruction, indent annotation, and
// rendering. The whole rendered document is buffered in memory and written to
// dst, through a BOM-prefixed UTF-8 encoder, only once the pass has fully
// succeeded; on any failure nothing is written. A nil filter is Identity.
func Transform(src io.Reader, filter Filter, dst io.Writer) error {
	if filter == nil {
		filter = Identity
	}
	enc := transform.NewWriter(dst, unicode.UTF8BOM.NewEncoder())
	r := newRenderer(enc)
	out := filter(reconstruct(&indenter{out: r}))
	if err := Tokenize(src, Normalize(out)); err != nil {
		return err
	}
	if err := r.flush(); err != nil {
		return err
	}
	return enc.Close()
}

// CheckFile runs Check over the file at path.
func CheckFile(path string, checker Handler) error {
	return checkStore(&store.File{Path: path}, checker)
}

// TransformFile runs Transform from the src file to the dst file; an empty
// dst rewrites src in place. The destination is replaced atomically on
// success and left untouched on any failure.
func TransformFile(src string, filter Filter, dst string) error {
	if dst == "" || dst == src {
		dst = src
	}
	return transformStore(&store.File{Path: src}, &store.File{Path: dst}, filter)
}

func checkStore(st store.Store, checker Handler) (rerr error) {
	r, err := st.Open()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := r.Close(); rerr == nil {
			rerr = cerr
		}
	}()
	return Check(r, checker)
}

func transformStore(in, out store.Store, filter Filter) (rerr error) {
	r, err := in.Open()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := r.Close(); rerr == nil {
			rerr = cerr
		}
	}()

	w, err := out.Update()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Cleanup(); rerr == nil {
			rerr = cerr
		}
	}()

	if err := Transform(r, filter, w); err != nil {
		return err
	}
	return w.Close()
}
