package search

import (
	"testing"

	"github.com/fulldump/biff"
)

func anna() []any {
	return []any{"Anna", true, ""}
}

const annaJSON = `{"firstName":"Anna","business":true,"email":""}`

func TestMatches(t *testing.T) {

	cases := []struct {
		query    string
		expected bool
	}{
		{"", true},
		{"  ", true},
		{"\t\n", true},
		{"anna", true},
		{"ANNA", true},
		{"ann", true},
		{"nn", true},
		{"true", false},
		{"xyz", false},
		{"anna xyz", false},
		{"anna   ann", true},
	}

	for _, c := range cases {
		t.Run(c.query, func(t *testing.T) {
			biff.AssertEqual(Matches(anna(), c.query), c.expected)
			biff.AssertEqual(MatchesJSON([]byte(annaJSON), c.query), c.expected)
		})
	}
}

func TestMatches_PhrasesDoNotSpanFields(t *testing.T) {

	values := []any{"Jan", "Kowalski"}

	biff.AssertTrue(Matches(values, "jan kowal"))
	biff.AssertFalse(Matches(values, "jankowalski"))
	biff.AssertFalse(Matches(values, "n k"))
}

func TestMatches_Numbers(t *testing.T) {

	biff.AssertTrue(Matches([]any{int64(12)}, "12"))
	biff.AssertTrue(Matches([]any{int64(12)}, "2"))
	biff.AssertTrue(Matches([]any{float64(1.5)}, "1.5"))
	biff.AssertFalse(Matches([]any{0}, "0"))

	biff.AssertTrue(MatchesJSON([]byte(`{"id":12,"name":"Eva"}`), "12 eva"))
	biff.AssertFalse(MatchesJSON([]byte(`{"id":0}`), "0"))
}

func TestMatches_SkipsUnstringifiable(t *testing.T) {

	biff.AssertFalse(Matches([]any{map[string]any{"a": "anna"}}, "anna"))
	biff.AssertFalse(Matches([]any{[]string{"anna"}}, "anna"))
	biff.AssertFalse(Matches([]any{nil}, "nil"))

	biff.AssertFalse(MatchesJSON([]byte(`{"nested":{"a":"anna"},"list":["anna"],"n":null}`), "anna"))
	biff.AssertFalse(MatchesJSON([]byte(`{"n":null}`), "null"))
}

func TestMatches_NoValues(t *testing.T) {

	biff.AssertTrue(Matches(nil, ""))
	biff.AssertFalse(Matches(nil, "a"))
	biff.AssertFalse(MatchesJSON([]byte(`{}`), "a"))
}

func TestPhrases(t *testing.T) {

	biff.AssertEqual(Phrases("  Jan\tKOWALSKI \n"), []string{"jan", "kowalski"})
	biff.AssertEqual(len(Phrases("   ")), 0)
	biff.AssertTrue(Compile(" ").Empty())
}

func TestMatches_SameAsJSON(t *testing.T) {

	values := []any{int64(3), "Jan", "Kowalski", "600100200", true, false, ""}
	doc := []byte(`{"id":3,"firstName":"Jan","lastName":"Kowalski","phoneNumber":"600100200","business":true,"marketing":false,"email":""}`)

	for _, query := range []string{"", "jan", "3 kowal", "600 JAN", "true", "false", "jan eva", "0"} {
		biff.AssertEqual(Matches(values, query), MatchesJSON(doc, query))
	}
}
