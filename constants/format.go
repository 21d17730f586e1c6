package constants

import (
	"path/filepath"
	"strings"
)

// Format is the detected document format driving extractor selection.
type Format string

// Stable values (store these exact strings in DB).
const (
	FormatCSV     Format = "csv"
	FormatExcel   Format = "excel"
	FormatPDFText Format = "pdf-text"
	FormatPDFScan Format = "pdf-scan"
)

// Formats holds the allowed values for the format field on documents.
var Formats = []string{
	string(FormatCSV),
	string(FormatExcel),
	string(FormatPDFText),
	string(FormatPDFScan),
}

// AllowedExtensions holds the file extensions accepted for statement upload.
var AllowedExtensions = map[string]struct{}{
	"csv":  {},
	"xls":  {},
	"xlsx": {},
	"pdf":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// ExtOf returns the normalized extension of a path.
func ExtOf(path string) string {
	return NormalizeExt(filepath.Ext(path))
}

// IsPDFExt reports whether the extension routes into the PDF probe.
func IsPDFExt(ext string) bool {
	return NormalizeExt(ext) == "pdf"
}

// IsExcelExt reports whether the extension maps to a spreadsheet extractor.
func IsExcelExt(ext string) bool {
	e := NormalizeExt(ext)
	return e == "xls" || e == "xlsx"
}
