package extractor

import (
	"fmt"
	"mime"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/legalmindhq/legalmind-api/internal/models"
)

const (
	mimePlainText = "text/plain"
	mimePDF       = "application/pdf"
)

// Extract produces the text payload for a document. Plain text is decoded
// verbatim; every other content type yields a fixed placeholder embedding the
// file name. No real extraction happens for binary formats: that is an
// intentional boundary, and adding PDF/DOC parsing here would change the
// observable output of every analysis endpoint.
func Extract(doc *models.UploadedDocument) (string, error) {
	switch normalizeContentType(doc.ContentType) {
	case mimePlainText:
		text, err := decodeText(doc.Data)
		if err != nil {
			return "", fmt.Errorf("failed to decode text file %q: %w", doc.Name, err)
		}
		return text, nil
	case mimePDF:
		return fmt.Sprintf("PDF Document: %s\n\nThis document contains legal content that requires analysis for compliance, risk assessment, and improvement recommendations.", doc.Name), nil
	default:
		return fmt.Sprintf("Document: %s\n\nLegal document content for analysis.", doc.Name), nil
	}
}

// ExtractForComparison is the comparison-side variant: non-text documents
// reduce to a one-line placeholder naming their position.
func ExtractForComparison(doc *models.UploadedDocument, position int) (string, error) {
	if normalizeContentType(doc.ContentType) == mimePlainText {
		text, err := decodeText(doc.Data)
		if err != nil {
			return "", fmt.Errorf("failed to decode text file %q: %w", doc.Name, err)
		}
		return text, nil
	}
	return fmt.Sprintf("Document %d: %s", position, doc.Name), nil
}

// normalizeContentType strips parameters such as "; charset=utf-8".
func normalizeContentType(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return contentType
	}
	return mt
}

func decodeText(data []byte) (string, error) {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return string(data[3:]), nil
	}

	if len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE {
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		decoded, _, err := transform.Bytes(decoder, data)
		if err != nil {
			return "", err
		}
		return string(decoded), nil
	}

	if len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF {
		decoder := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		decoded, _, err := transform.Bytes(decoder, data)
		if err != nil {
			return "", err
		}
		return string(decoded), nil
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	decoder := charmap.Windows1252.NewDecoder()
	decoded, _, err := transform.Bytes(decoder, data)
	if err == nil {
		return string(decoded), nil
	}

	decoder = charmap.ISO8859_1.NewDecoder()
	decoded, _, err = transform.Bytes(decoder, data)
	if err == nil {
		return string(decoded), nil
	}

	return string(data), nil
}
