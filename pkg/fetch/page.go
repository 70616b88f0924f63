package fetch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// IndexFile is the name of the generated viewer page.
const IndexFile = "index.html"

// ImageName returns the local file name for the image at index i.
func ImageName(i int) string {
	return fmt.Sprintf("img%d.jpg", i)
}

// RenderPage writes an HTML document with one <img> element per entry of
// images, in order. Entries are used verbatim as relative src values.
func RenderPage(w io.Writer, images []string) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html)
	doc.AppendChild(root)

	head := element(atom.Head)
	title := element(atom.Title)
	title.AppendChild(&html.Node{Type: html.TextNode, Data: "logpuzzle"})
	head.AppendChild(title)
	root.AppendChild(head)

	body := element(atom.Body)
	for _, src := range images {
		img := element(atom.Img)
		img.Attr = []html.Attribute{{Key: "src", Val: src}}
		body.AppendChild(img)
	}
	root.AppendChild(body)

	if err := html.Render(w, doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WritePage writes IndexFile into dir referencing images in order and
// returns its path.
func WritePage(dir string, images []string) (string, error) {
	path := filepath.Join(dir, IndexFile)

	f, err := os.Create(path) // #nosec G304 -- path is built from the destination directory
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}

	if err := RenderPage(f, images); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}
