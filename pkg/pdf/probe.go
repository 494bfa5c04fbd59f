package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ProbeInfo summarizes the structural state of a PDF file as seen by
// pdfcpu, independent of whether a text backend can read it.
type ProbeInfo struct {
	PageCount int
	Encrypted bool
}

// Probe validates a PDF with pdfcpu and reports structural information.
// It distinguishes encrypted files from corrupt ones, which the text
// backends cannot, so callers get an actionable error message.
func Probe(filepath, password string) (ProbeInfo, error) {
	conf := model.NewDefaultConfiguration()
	if password != "" {
		conf.UserPW = password
		conf.OwnerPW = password
	}

	f, err := os.Open(filepath)
	if err != nil {
		return ProbeInfo{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	ctx, err := api.ReadContext(f, conf)
	if err != nil {
		if isEncryptionError(err) {
			return ProbeInfo{Encrypted: true}, fmt.Errorf("PDF is password-protected: %w", err)
		}
		return ProbeInfo{}, fmt.Errorf("failed to read PDF structure: %w", err)
	}

	if err := api.ValidateContext(ctx); err != nil {
		return ProbeInfo{PageCount: ctx.PageCount}, fmt.Errorf("invalid PDF: %w", err)
	}

	return ProbeInfo{
		PageCount: ctx.PageCount,
		Encrypted: ctx.E != nil,
	}, nil
}

func isEncryptionError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "password") || strings.Contains(msg, "encrypt")
}
