package parse

import (
	"path/filepath"
	"strings"

	"github.com/yumyai/bgctable/pkg/model"
)

// Format of an annotation file.
type Format int

const (
	FormatUnknown Format = iota
	FormatAntismashJSON
	FormatGenBank
)

func (f Format) String() string {
	switch f {
	case FormatAntismashJSON:
		return "antismash-json"
	case FormatGenBank:
		return "genbank"
	default:
		return "unknown"
	}
}

// DetectFormat guesses the format from the file extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatAntismashJSON
	case ".gbk", ".gb", ".gbff", ".genbank":
		return FormatGenBank
	default:
		return FormatUnknown
	}
}

// LoadFormat is the reader Load uses for path. GenBank extensions get the GenBank
// reader; anything else (no extension, .txt, /dev/fd/N) is read as antiSMASH JSON.
func LoadFormat(path string) Format {
	if DetectFormat(path) == FormatGenBank {
		return FormatGenBank
	}
	return FormatAntismashJSON
}

// Load reads all records of an annotation file.
func Load(path string) ([]*model.Record, error) {
	if LoadFormat(path) == FormatGenBank {
		return ReadGenBankFile(path)
	}
	return ReadAntismashJSONFile(path)
}
