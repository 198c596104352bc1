package models

// Book is a normalized search result mapped from an OpenLibrary record.
// It is built once at the upstream boundary and discarded after the
// response is rendered; history rows are derived from it, the Book itself
// is never persisted.
type Book struct {
	Title       string   `json:"title"`
	Author      string   `json:"author,omitempty"`
	PublishYear *int     `json:"publish_year,omitempty"`
	Publisher   string   `json:"publisher,omitempty"`
	Language    string   `json:"language,omitempty"`
	CoverURL    string   `json:"cover_url,omitempty"`
	SourceURL   string   `json:"source_url,omitempty"`
	Format      string   `json:"format,omitempty"`
	Subjects    []string `json:"subjects,omitempty"`
}

// Access-mode format tags derived from OpenLibrary's ebook_access field.
const (
	FormatLendableEbook = "lendable ebook"
	FormatReadOnlyEbook = "read-only ebook"
	FormatPublicEbook   = "public ebook"
	FormatPrintOnly     = "print-only"
	FormatUnspecified   = "unspecified"
)

// FormatFromEbookAccess maps OpenLibrary's ebook_access enumeration to a
// user-facing format tag.
func FormatFromEbookAccess(access string) string {
	switch access {
	case "borrowable":
		return FormatLendableEbook
	case "printdisabled":
		return FormatReadOnlyEbook
	case "public":
		return FormatPublicEbook
	case "no_ebook":
		return FormatPrintOnly
	default:
		return FormatUnspecified
	}
}
