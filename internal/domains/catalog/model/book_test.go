package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func priceOf(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestBookEquality(t *testing.T) {
	book1 := &Book{ID: idOf(1), Title: strOf("first")}
	book2 := &Book{}

	assert.False(t, book1.Equals(book2))

	book2.ID = idOf(1)
	assert.True(t, book1.Equals(book2))

	book2 = &Book{ID: idOf(2)}
	assert.False(t, book1.Equals(book2))

	unsaved := &Book{Title: strOf("same")}
	assert.True(t, unsaved.Equals(unsaved))
	assert.False(t, unsaved.Equals(&Book{Title: strOf("same")}))
}

func TestBookSetAuthor(t *testing.T) {
	book := &Book{ID: idOf(20)}
	author := &Author{ID: idOf(10)}

	book.SetAuthor(author)
	assert.True(t, book.Author.Equals(author))
	assert.True(t, author.Books.Contains(book))

	book.SetAuthor(nil)
	assert.Nil(t, book.Author)
	assert.False(t, author.Books.Contains(book))
}

func TestBookSetAuthorReplacesOwner(t *testing.T) {
	book := &Book{ID: idOf(20)}
	author1 := &Author{ID: idOf(1)}
	author2 := &Author{ID: idOf(2)}

	book.SetAuthor(author1)
	book.SetAuthor(author2)

	assert.False(t, author1.Books.Contains(book))
	assert.True(t, author2.Books.Contains(book))
	assert.True(t, book.Author.Equals(author2))
}

func TestBookPriceEqualityIgnoresScale(t *testing.T) {
	a := &Book{Price: priceOf("10.0")}
	b := &Book{Price: priceOf("10.00")}
	c := &Book{Price: priceOf("10.01")}

	assert.True(t, a.PriceEquals(b))
	assert.False(t, a.PriceEquals(c))
	assert.False(t, a.PriceEquals(&Book{}))
	assert.True(t, (&Book{}).PriceEquals(&Book{}))
}

func TestBookJSONShape(t *testing.T) {
	book := &Book{
		ID:              idOf(5),
		Title:           strOf("Title"),
		PublicationDate: dateOf(2020, time.June, 1),
		Price:           priceOf("19.99"),
		Author:          &Author{ID: idOf(1), Name: strOf("Writer")},
	}

	data, err := json.Marshal(book)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "2020-06-01", decoded["publicationDate"])
	author, ok := decoded["author"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), author["id"])
	// The author's book set is a back-reference and never serialized.
	assert.NotContains(t, author, "books")
	assert.NotContains(t, author, "Books")
}

func TestBookValidate(t *testing.T) {
	assert.NoError(t, Book{Title: strOf("ok"), Price: priceOf("1.50")}.Validate())
	assert.NoError(t, Book{}.Validate())

	long := make([]byte, 4001)
	for i := range long {
		long[i] = 'd'
	}
	assert.Error(t, Book{Description: strOf(string(long))}.Validate())
}
