// File: path.go
// Title: Dot-Notation Key Paths
// Description: Splits dot-notation keys into table names and walks nested
//              maps along them.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation on fixstr

package config

import (
	"strings"

	"github.com/msto63/fixstr/foundation/utils/fixstr"
)

// splitKey cuts "a.b.c" into ["a", "b", "c"]. Empty segments are kept so
// that "a..b" never aliases "a.b".
func splitKey(key string) []string {
	s := fixstr.Of(key)
	parts := make([]string, 0, s.Count('.')+1)
	for {
		i := s.IndexUnit('.')
		if i == fixstr.NPos {
			return append(parts, s.String())
		}
		head, tail := s.MustSplit(i)
		parts = append(parts, head.String())
		s = tail
	}
}

// splitList cuts a comma-separated value, trimming blanks and dropping empty items.
func splitList(value string) []string {
	var out []string
	s := fixstr.Of(value)
	for !s.IsEmpty() {
		var item fixstr.Narrow
		if i := s.IndexUnit(','); i == fixstr.NPos {
			item, s = s, fixstr.Narrow{}
		} else {
			item, s = s.MustSplit(i)
		}
		if v := strings.TrimSpace(item.String()); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getPath(data map[string]interface{}, key string) interface{} {
	keys := splitKey(key)
	current := data
	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

func setPath(data map[string]interface{}, key string, value interface{}) {
	keys := splitKey(key)
	current := data
	for _, k := range keys[:len(keys)-1] {
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
	current[keys[len(keys)-1]] = value
}
