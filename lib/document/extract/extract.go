package textextract

import (
	"bytes"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"unicode/utf8"

	apperrors "devassist-backend/lib/utils/app-errors"

	"github.com/ledongthuc/pdf"
	"github.com/pkg/errors"
)

const (
	MimePDF  = "application/pdf"
	MimeText = "text/plain"
)

const unsupportedMessage = "Only PDF and TXT files are supported"

// DetectType нормализует content-type загрузки. Для пустого или
// application/octet-stream тип определяется по расширению файла.
func DetectType(contentType, filename string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType == "" || mediaType == "application/octet-stream" {
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".pdf":
			return MimePDF
		case ".txt":
			return MimeText
		}
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return strings.ToLower(mediaType)
}

// Extract возвращает текст документа. Ошибки классифицированы как validation.
func Extract(mediaType string, data []byte) (string, error) {
	var (
		text string
		err  error
	)
	switch mediaType {
	case MimeText:
		text = plainText(data)
	case MimePDF:
		text, err = pdfText(data)
		if err != nil {
			return "", apperrors.New(apperrors.KindValidation, "Failed to read the PDF file", err.Error(), err)
		}
	default:
		return "", apperrors.Validation(unsupportedMessage)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", apperrors.Validation("The document contains no readable text")
	}
	return text, nil
}

func plainText(data []byte) string {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if utf8.Valid(data) {
		return string(data)
	}
	return strings.ToValidUTF8(string(data), "�")
}

func pdfText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("pdf reader panic recover: %v", r)
		}
	}()
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.Wrap(err, "ошибка открытия PDF")
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", errors.Wrap(err, "ошибка извлечения текста из PDF")
	}
	buf, err := io.ReadAll(plain)
	if err != nil {
		return "", errors.Wrap(err, "ошибка чтения текста PDF")
	}
	return string(buf), nil
}
