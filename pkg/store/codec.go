package store

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// codec converts between the collection and its serialized document.
type codec interface {
	Name() string
	Encode(records []books.Book) ([]byte, error)
	Decode(data []byte) ([]books.Book, error)
}

// codecFor picks the document format from the file extension.
func codecFor(path string) codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlCodec{}
	default:
		return jsonCodec{}
	}
}

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Encode(records []books.Book) ([]byte, error) {
	data, err := json.MarshalIndent(clone(records), "", constants.JSONIndent)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (jsonCodec) Decode(data []byte) ([]books.Book, error) {
	var records []books.Book
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.WrapParse("json", "", err)
	}
	return clone(records), nil
}

type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }

func (yamlCodec) Encode(records []books.Book) ([]byte, error) {
	return yaml.MarshalWithOptions(clone(records),
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
}

func (yamlCodec) Decode(data []byte) ([]books.Book, error) {
	var records []books.Book
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, errors.WrapParse("yaml", "", err)
	}
	return clone(records), nil
}

// isBlank reports whether data holds no document at all.
func isBlank(data []byte) bool {
	return len(bytes.TrimSpace(data)) == 0
}
