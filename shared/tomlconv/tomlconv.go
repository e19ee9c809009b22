// Package tomlconv decodes TOML documents with go-toml, accepting integer
// literals for float fields so `tile_size = 16` reads the same as `16.0`.
package tomlconv

import (
	"reflect"
	"strings"

	"github.com/pelletier/go-toml"
)

// Unmarshal decodes data into v, a pointer to a struct.
func Unmarshal(data []byte, v interface{}) error {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return err
	}
	widenTable(tree, reflect.TypeOf(v))
	return tree.Unmarshal(v)
}

// widenTable rewrites integer values in tree whose destination in t is a
// float. Keys with no destination are left alone.
func widenTable(tree *toml.Tree, t reflect.Type) {
	t = deref(t)
	switch t.Kind() {
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.PkgPath != "" {
				continue
			}
			if key, ok := fieldKey(tree, f); ok {
				widenKey(tree, key, f.Type)
			}
		}
	case reflect.Map:
		for _, key := range tree.Keys() {
			widenKey(tree, key, t.Elem())
		}
	}
}

func widenKey(tree *toml.Tree, key string, t reflect.Type) {
	path := []string{key}
	t = deref(t)
	switch v := tree.GetPath(path).(type) {
	case int64:
		if k := t.Kind(); k == reflect.Float64 || k == reflect.Float32 {
			tree.SetPath(path, float64(v))
		}
	case *toml.Tree:
		widenTable(v, t)
	case []*toml.Tree:
		if k := t.Kind(); k == reflect.Slice || k == reflect.Array {
			for _, sub := range v {
				widenTable(sub, t.Elem())
			}
		}
	}
}

// fieldKey finds the key go-toml would match to f: the tag name, else the
// field name or its lower-case form.
func fieldKey(tree *toml.Tree, f reflect.StructField) (string, bool) {
	name := strings.Split(f.Tag.Get("toml"), ",")[0]
	if name == "-" {
		return "", false
	}
	if name != "" {
		return name, tree.HasPath([]string{name})
	}
	for _, key := range []string{f.Name, strings.ToLower(f.Name)} {
		if tree.HasPath([]string{key}) {
			return key, true
		}
	}
	return "", false
}

func deref(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
