package console

import (
	"fmt"
	"io"
	"reflect"
	"runtime"
	"sort"
)

// Ls lists the contents of one or more objects to w: the exported methods
// and struct fields of each value, laid out with Pretty, one block per
// object. A function value is instead reported by its name and definition
// site.
func Ls(w io.Writer, objects ...interface{}) error {
	if len(objects) == 0 {
		return fmt.Errorf("Nothing to list")
	}
	for _, obj := range objects {
		if obj == nil {
			continue
		}
		val := reflect.ValueOf(obj)
		if val.Kind() == reflect.Func {
			fn := runtime.FuncForPC(val.Pointer())
			if fn == nil {
				return fmt.Errorf("Function has no runtime information")
			}
			file, line := fn.FileLine(fn.Entry())
			if _, err := fmt.Fprintf(w, "%s\n\t%s:%d\n", fn.Name(), file, line); err != nil {
				return err
			}
			continue
		}
		if err := Pretty(w, dir(val.Type()), nil); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// dir collects the exported method and field names reachable from a type,
// including pointer-receiver methods for non-pointer values
func dir(t reflect.Type) []string {
	seen := make(map[string]bool)
	collect := func(typ reflect.Type) {
		for i := 0; i < typ.NumMethod(); i++ {
			seen[typ.Method(i).Name] = true
		}
	}
	collect(t)
	if t.Kind() != reflect.Ptr {
		collect(reflect.PointerTo(t))
	}
	elem := t
	if elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}
	if elem.Kind() == reflect.Struct {
		for i := 0; i < elem.NumField(); i++ {
			field := elem.Field(i)
			if field.PkgPath == "" {
				seen[field.Name] = true
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
