package books_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/errors"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    books.Status
		wantErr bool
	}{
		{in: "available", want: books.StatusAvailable},
		{in: "  Borrowed ", want: books.StatusBorrowed},
		{in: "в наличии", want: books.StatusAvailable},
		{in: "Выдана", want: books.StatusBorrowed},
		{in: "lost", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := books.ParseStatus(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseField(t *testing.T) {
	tests := []struct {
		in      string
		want    books.Field
		wantErr bool
	}{
		{in: "title", want: books.FieldTitle},
		{in: "AUTHOR", want: books.FieldAuthor},
		{in: "год", want: books.FieldYear},
		{in: "название", want: books.FieldTitle},
		{in: "status", wantErr: true},
		{in: "id", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := books.ParseField(tc.in)
			if tc.wantErr {
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestFieldValue(t *testing.T) {
	b := books.Book{ID: "1", Title: "1984", Author: "George Orwell", Year: 1949, Status: books.StatusAvailable}

	assert.Equal(t, "1984", books.FieldTitle.Value(b))
	assert.Equal(t, "George Orwell", books.FieldAuthor.Value(b))
	assert.Equal(t, "1949", books.FieldYear.Value(b))
	assert.Panics(t, func() { books.Field("status").Value(b) })
	assert.False(t, books.Field("status").Valid())
}

func TestNumericID(t *testing.T) {
	n, ok := books.Book{ID: "17"}.NumericID()
	assert.True(t, ok)
	assert.Equal(t, 17, n)

	_, ok = books.Book{ID: "abc"}.NumericID()
	assert.False(t, ok)
}

func TestVocabularies(t *testing.T) {
	assert.Equal(t, []books.Status{books.StatusAvailable, books.StatusBorrowed}, books.Statuses())
	assert.Equal(t, []books.Field{books.FieldTitle, books.FieldAuthor, books.FieldYear}, books.Fields())
	assert.Equal(t, "borrowed", books.StatusBorrowed.String())
}
