package pdf

import (
	"fmt"
	"io"
	"os"

	lpdf "github.com/ledongthuc/pdf"
)

// LedongthucDocument implements Document using the ledongthuc/pdf library,
// which exposes positioned text runs and rectangle geometry.
type LedongthucDocument struct {
	file     io.Closer
	reader   *lpdf.Reader
	filepath string
	pages    []Page
	metadata Metadata
}

// OpenWithLedongthuc opens a PDF file using the ledongthuc/pdf library
func OpenWithLedongthuc(filepath string) (Document, error) {
	f, r, err := lpdf.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with ledongthuc: %w", err)
	}
	return newLedongthucDocument(f, r, filepath)
}

// OpenWithLedongthucPassword opens an encrypted PDF file using the
// ledongthuc/pdf library.
func OpenWithLedongthucPassword(filepath, password string) (Document, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filepath, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat %s: %w", filepath, err)
	}

	r, err := lpdf.NewReaderEncrypted(f, info.Size(), func() string { return password })
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to open encrypted PDF with ledongthuc: %w", err)
	}
	return newLedongthucDocument(f, r, filepath)
}

func newLedongthucDocument(f io.Closer, r *lpdf.Reader, filepath string) (Document, error) {
	doc := &LedongthucDocument{
		file:     f,
		reader:   r,
		filepath: filepath,
	}

	if err := doc.initializePages(); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to initialize pages: %w", err)
	}

	return doc, nil
}

func (d *LedongthucDocument) initializePages() error {
	pageCount := d.reader.NumPage()
	d.pages = make([]Page, pageCount)

	for i := 1; i <= pageCount; i++ {
		page, err := newLedongthucPage(d.reader, i)
		if err != nil {
			return fmt.Errorf("failed to initialize page %d: %w", i, err)
		}
		d.pages[i-1] = page
	}

	return nil
}

// GetMetadata returns the PDF metadata
func (d *LedongthucDocument) GetMetadata() Metadata {
	return d.metadata
}

// GetPages returns all pages in the document
func (d *LedongthucDocument) GetPages() []Page {
	return d.pages
}

// GetPage returns a specific page by index (0-based)
func (d *LedongthucDocument) GetPage(index int) (Page, error) {
	if index < 0 || index >= len(d.pages) {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", index, len(d.pages))
	}
	return d.pages[index], nil
}

// PageCount returns the total number of pages
func (d *LedongthucDocument) PageCount() int {
	return len(d.pages)
}

// Close releases resources associated with the document
func (d *LedongthucDocument) Close() error {
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}

// LedongthucPage implements the Page interface using ledongthuc/pdf
type LedongthucPage struct {
	pageNumber int
	width      float64
	height     float64
	objects    Objects
}

func newLedongthucPage(reader *lpdf.Reader, pageNumber int) (Page, error) {
	if pageNumber < 1 || pageNumber > reader.NumPage() {
		return nil, fmt.Errorf("invalid page number: %d", pageNumber)
	}

	page := reader.Page(pageNumber)

	// US Letter unless the MediaBox says otherwise
	width := 612.0
	height := 792.0

	mediaBox := page.V.Key("MediaBox")
	if mediaBox.Kind() == lpdf.Array && mediaBox.Len() == 4 {
		x0 := mediaBox.Index(0).Float64()
		y0 := mediaBox.Index(1).Float64()
		x1 := mediaBox.Index(2).Float64()
		y1 := mediaBox.Index(3).Float64()
		width = x1 - x0
		height = y1 - y0
	}

	p := &LedongthucPage{
		pageNumber: pageNumber,
		width:      width,
		height:     height,
	}
	p.extractObjects(page.Content())

	return p, nil
}

// extractObjects converts the library's content model into page objects,
// flipping Y from PDF bottom-up to top-down coordinates.
func (p *LedongthucPage) extractObjects(content lpdf.Content) {
	for _, text := range content.Text {
		p.appendCharRun(text.S, text.Font, text.FontSize, text.X, text.Y, text.W)
	}

	for _, rect := range content.Rect {
		r := RectObject{
			X0: rect.Min.X,
			Y0: p.height - rect.Max.Y,
			X1: rect.Max.X,
			Y1: p.height - rect.Min.Y,
		}
		p.objects.Rects = append(p.objects.Rects, r)
	}
}

// appendCharRun splits a text run into per-character boxes. The run gives
// only the total advance, so character widths are approximated evenly;
// downstream word grouping tolerates the error.
func (p *LedongthucPage) appendCharRun(s, font string, fontSize, x, y, w float64) {
	runes := []rune(s)
	if len(runes) == 0 {
		return
	}

	// The run Y is the baseline; the visual top sits roughly 80% of the
	// font height above it.
	top := p.height - (y + fontSize*0.8)
	charWidth := w / float64(len(runes))

	for _, ch := range runes {
		if ch != ' ' {
			p.objects.Chars = append(p.objects.Chars, CharObject{
				Text:     string(ch),
				Font:     font,
				FontSize: fontSize,
				X0:       x,
				Y0:       top,
				X1:       x + charWidth,
				Y1:       top + fontSize,
				Width:    charWidth,
				Height:   fontSize,
			})
		}
		x += charWidth
	}
}

// GetPageNumber returns the page number (1-based)
func (p *LedongthucPage) GetPageNumber() int {
	return p.pageNumber
}

// GetWidth returns the page width
func (p *LedongthucPage) GetWidth() float64 {
	return p.width
}

// GetHeight returns the page height
func (p *LedongthucPage) GetHeight() float64 {
	return p.height
}

// GetBBox returns the page bounding box
func (p *LedongthucPage) GetBBox() BoundingBox {
	return BoundingBox{X0: 0, Y0: 0, X1: p.width, Y1: p.height}
}

// GetObjects returns all objects on the page
func (p *LedongthucPage) GetObjects() Objects {
	return p.objects
}

// ExtractText extracts the page text in reading order
func (p *LedongthucPage) ExtractText() string {
	return textFromWords(p.ExtractWords())
}

// ExtractWords extracts positioned words from the page
func (p *LedongthucPage) ExtractWords(opts ...WordExtractionOption) []Word {
	return assembleWords(p.objects.Chars, opts...)
}
