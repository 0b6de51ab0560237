// Package search implements the phrase filter used to narrow a full scan.
//
// A query is split on whitespace into phrases. A record matches when every
// phrase is a case-insensitive substring of at least one of its values.
// Empty, zero, null and boolean values never match, and neither do nested
// objects or arrays.
package search

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

type Query struct {
	phrases []string
}

func Compile(query string) Query {
	return Query{
		phrases: Phrases(query),
	}
}

// Phrases returns the lowercased whitespace separated tokens of query.
func Phrases(query string) []string {
	phrases := strings.Fields(query)
	for i, phrase := range phrases {
		phrases[i] = strings.ToLower(phrase)
	}
	return phrases
}

func (q Query) Phrases() []string {
	return q.phrases
}

func (q Query) Empty() bool {
	return len(q.phrases) == 0
}

func (q Query) match(values []any) bool {
	if q.Empty() {
		return true
	}

	texts := make([]string, 0, len(values))
	for _, value := range values {
		text, ok := stringify(value)
		if !ok {
			continue
		}
		texts = append(texts, strings.ToLower(text))
	}

	return q.matchTexts(texts)
}

// MatchJSON reports whether the top level values of a JSON object satisfy
// every phrase. The document is read in place, it is not decoded.
func (q Query) MatchJSON(doc []byte) bool {
	if q.Empty() {
		return true
	}

	texts := []string{}
	gjson.ParseBytes(doc).ForEach(func(_, value gjson.Result) bool {
		if text, ok := stringifyResult(value); ok {
			texts = append(texts, strings.ToLower(text))
		}
		return true
	})

	return q.matchTexts(texts)
}

func (q Query) matchTexts(texts []string) bool {
	for _, phrase := range q.phrases {
		matched := false
		for _, text := range texts {
			if strings.Contains(text, phrase) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// Matches reports whether values, already decoded, satisfy every phrase of
// query.
func Matches(values []any, query string) bool {
	return Compile(query).match(values)
}

func MatchesJSON(doc []byte, query string) bool {
	return Compile(query).MatchJSON(doc)
}

// stringify returns the searchable text of value. ok is false for values
// that must be skipped.
func stringify(value any) (text string, ok bool) {

	switch v := value.(type) {
	case nil, bool:
		return "", false
	case string:
		return v, v != ""
	case int:
		return strconv.Itoa(v), v != 0
	case int32:
		return strconv.FormatInt(int64(v), 10), v != 0
	case int64:
		return strconv.FormatInt(v, 10), v != 0
	case uint:
		return strconv.FormatUint(uint64(v), 10), v != 0
	case uint64:
		return strconv.FormatUint(v, 10), v != 0
	case float32:
		return formatFloat(float64(v))
	case float64:
		return formatFloat(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil || f == 0 {
			return "", false
		}
		return v.String(), true
	case fmt.Stringer:
		s := v.String()
		return s, s != ""
	}

	return "", false
}

func formatFloat(f float64) (string, bool) {
	if f == 0 || math.IsNaN(f) {
		return "", false
	}
	return strconv.FormatFloat(f, 'f', -1, 64), true
}

func stringifyResult(value gjson.Result) (string, bool) {
	switch value.Type {
	case gjson.String:
		return value.Str, value.Str != ""
	case gjson.Number:
		return formatFloat(value.Num)
	}
	return "", false
}
