package round

import (
	"encoding/base64"
	"path"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

const (
	maxSafeBaseLen  = 40
	defaultSafeBase = "foto"
)

var (
	dataURLPattern = regexp.MustCompile(`(?s)^data:([^;]+);base64,(.+)$`)
	unsafeNameChar = regexp.MustCompile(`[^a-z0-9_-]`)
)

// image is a decoded data-URL payload.
type image struct {
	MimeType string
	Data     []byte
}

// parseImageDataURL decodes data:<mime>;base64,<payload>. The mime type must
// be image/* and the payload must not be empty.
func parseImageDataURL(raw string) (image, error) {
	m := dataURLPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return image{}, domain.ErrInvalidImage
	}

	mime := strings.ToLower(strings.TrimSpace(m[1]))
	if !strings.HasPrefix(mime, "image/") {
		return image{}, domain.ErrInvalidImage
	}

	data, err := decodeBase64(m[2])
	if err != nil || len(data) == 0 {
		return image{}, domain.ErrInvalidImage
	}
	return image{MimeType: mime, Data: data}, nil
}

// decodeBase64 accepts padded or unpadded standard base64 with embedded
// whitespace, as browsers and mobile clients produce.
func decodeBase64(payload string) ([]byte, error) {
	payload = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\n', '\r', '\t':
			return -1
		}
		return r
	}, payload)
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
}

// extensionByMime maps an image mime type to a file extension.
func extensionByMime(mime string) string {
	switch mime {
	case "image/jpeg":
		return "jpg"
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	case "image/svg+xml":
		return "svg"
	default:
		return "bin"
	}
}

// safeBaseName reduces a client file name to a short slug usable in a key.
func safeBaseName(fileName string) string {
	base := path.Base(strings.ReplaceAll(strings.TrimSpace(fileName), `\`, "/"))
	if ext := path.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	base = unsafeNameChar.ReplaceAllString(strings.ToLower(base), "-")
	if len(base) > maxSafeBaseLen {
		base = base[:maxSafeBaseLen]
	}
	if strings.Trim(base, "-") == "" {
		return defaultSafeBase
	}
	return base
}

// photoKey builds rondas/{round}/{itens/{item}|geral}/{base}-{uuid}.{ext}.
func photoKey(roundID uuid.UUID, itemAnswerID *uuid.UUID, fileName, mime string) string {
	scope := "geral"
	if itemAnswerID != nil {
		scope = "itens/" + itemAnswerID.String()
	}
	return "rondas/" + roundID.String() + "/" + scope + "/" +
		safeBaseName(fileName) + "-" + uuid.NewString() + "." + extensionByMime(mime)
}
