package pdf

import (
	"fmt"

	gopdf "github.com/dslipak/pdf"
)

// DslipakDocument implements Document using the dslipak/pdf library. It is
// the fallback backend: some malformed files open here when the primary
// reader rejects them.
type DslipakDocument struct {
	reader   *gopdf.Reader
	filepath string
	pages    []Page
	metadata Metadata
}

// OpenWithDslipak opens a PDF file using the dslipak/pdf library
func OpenWithDslipak(filepath string) (Document, error) {
	r, err := gopdf.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with dslipak: %w", err)
	}

	doc := &DslipakDocument{
		reader:   r,
		filepath: filepath,
	}

	if err := doc.initializePages(); err != nil {
		return nil, fmt.Errorf("failed to initialize pages: %w", err)
	}

	return doc, nil
}

func (d *DslipakDocument) initializePages() error {
	pageCount := d.reader.NumPage()
	d.pages = make([]Page, pageCount)

	for i := 1; i <= pageCount; i++ {
		page, err := newDslipakPage(d.reader, i)
		if err != nil {
			return fmt.Errorf("failed to initialize page %d: %w", i, err)
		}
		d.pages[i-1] = page
	}

	return nil
}

// GetMetadata returns the PDF metadata
func (d *DslipakDocument) GetMetadata() Metadata {
	return d.metadata
}

// GetPages returns all pages in the document
func (d *DslipakDocument) GetPages() []Page {
	return d.pages
}

// GetPage returns a specific page by index (0-based)
func (d *DslipakDocument) GetPage(index int) (Page, error) {
	if index < 0 || index >= len(d.pages) {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", index, len(d.pages))
	}
	return d.pages[index], nil
}

// PageCount returns the total number of pages
func (d *DslipakDocument) PageCount() int {
	return len(d.pages)
}

// Close releases resources associated with the document
func (d *DslipakDocument) Close() error {
	d.reader = nil
	d.pages = nil
	return nil
}

// DslipakPage implements the Page interface using dslipak/pdf
type DslipakPage struct {
	pageNumber int
	width      float64
	height     float64
	objects    Objects
}

func newDslipakPage(reader *gopdf.Reader, pageNumber int) (Page, error) {
	if pageNumber < 1 || pageNumber > reader.NumPage() {
		return nil, fmt.Errorf("invalid page number: %d", pageNumber)
	}

	page := reader.Page(pageNumber)

	width := 612.0
	height := 792.0

	mediaBox := page.V.Key("MediaBox")
	if mediaBox.Kind() == gopdf.Array && mediaBox.Len() == 4 {
		width = mediaBox.Index(2).Float64() - mediaBox.Index(0).Float64()
		height = mediaBox.Index(3).Float64() - mediaBox.Index(1).Float64()
	}

	p := &DslipakPage{
		pageNumber: pageNumber,
		width:      width,
		height:     height,
	}

	content := page.Content()
	for _, text := range content.Text {
		p.appendCharRun(text.S, text.Font, text.FontSize, text.X, text.Y, text.W)
	}
	for _, rect := range content.Rect {
		p.objects.Rects = append(p.objects.Rects, RectObject{
			X0: rect.Min.X,
			Y0: p.height - rect.Max.Y,
			X1: rect.Max.X,
			Y1: p.height - rect.Min.Y,
		})
	}

	return p, nil
}

func (p *DslipakPage) appendCharRun(s, font string, fontSize, x, y, w float64) {
	runes := []rune(s)
	if len(runes) == 0 {
		return
	}

	top := p.height - (y + fontSize*0.8)
	charWidth := w / float64(len(runes))

	for _, ch := range runes {
		if ch != ' ' && ch != '\n' && ch != '\r' {
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
func (p *DslipakPage) GetPageNumber() int {
	return p.pageNumber
}

// GetWidth returns the page width
func (p *DslipakPage) GetWidth() float64 {
	return p.width
}

// GetHeight returns the page height
func (p *DslipakPage) GetHeight() float64 {
	return p.height
}

// GetBBox returns the page bounding box
func (p *DslipakPage) GetBBox() BoundingBox {
	return BoundingBox{X0: 0, Y0: 0, X1: p.width, Y1: p.height}
}

// GetObjects returns all objects on the page
func (p *DslipakPage) GetObjects() Objects {
	return p.objects
}

// ExtractText extracts the page text in reading order
func (p *DslipakPage) ExtractText() string {
	return textFromWords(p.ExtractWords())
}

// ExtractWords extracts positioned words from the page
func (p *DslipakPage) ExtractWords(opts ...WordExtractionOption) []Word {
	return assembleWords(p.objects.Chars, opts...)
}
