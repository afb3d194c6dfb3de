// Package ffi exposes the key-derivation, search-string, and collection
// search operations as a C ABI, for consumers that embed pwdx as a shared
// library rather than linking it as a Go module. It mirrors the original
// implementation's parse-ffi crate: a null or otherwise invalid input never
// panics across the FFI boundary, it logs a warning and returns an empty
// result instead.
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"os"
	"strings"
	"unicode/utf8"
	"unsafe"

	"github.com/pwdx/pwdx/internal/keys"
	"github.com/pwdx/pwdx/internal/pwdxlog"
	"github.com/pwdx/pwdx/internal/search"
	"github.com/pwdx/pwdx/internal/shard"
)

const logTarget = "ffi"

// cStringSlice converts a Go string slice into a NULL-terminated array of
// C strings, the shape callers of indices_of and find_lines_in_index_collection
// in the original FFI expect. The caller owns the result and must free it.
func cStringSlice(items []string) **C.char {
	out := C.malloc(C.size_t(len(items)+1) * C.size_t(unsafe.Sizeof(uintptr(0))))
	array := (*[1 << 30]*C.char)(out)[: len(items)+1 : len(items)+1]
	for i, item := range items {
		array[i] = C.CString(item)
	}
	array[len(items)] = nil
	return (**C.char)(out)
}

// pwdx_indices_of returns the NULL-terminated array of keys the
// key-derivation pipeline would emit for input, using the package-default
// key length and depth. Returns NULL if input is NULL or not valid UTF-8.
//
//export pwdx_indices_of
func pwdx_indices_of(input *C.char) **C.char {
	if input == nil {
		pwdxlog.Get().Warn("ffi: received a null pointer for input", "target", logTarget)
		return nil
	}

	goInput := C.GoString(input)
	if !utf8.ValidString(goInput) {
		pwdxlog.Get().Warn("ffi: input is not valid UTF-8", "target", logTarget)
		return nil
	}
	return cStringSlice(keys.All([]byte(goInput)))
}

// pwdx_as_search_string applies a SearchStyle's query transform to query and
// returns the single transformed result. Returns NULL on a null or
// unrecognized argument.
//
//export pwdx_as_search_string
func pwdx_as_search_string(query, styleName *C.char) *C.char {
	if query == nil || styleName == nil {
		pwdxlog.Get().Warn("ffi: received a null pointer for query or style", "target", logTarget)
		return nil
	}

	style, err := search.ParseStyle(C.GoString(styleName))
	if err != nil {
		pwdxlog.Get().Warn("ffi: unrecognized search style", "target", logTarget, "error", err)
		return nil
	}

	transformed := style.TransformQueries([]string{C.GoString(query)})
	return C.CString(transformed[0])
}

// pwdx_find_lines_in_index_collection searches the index rooted at dir for
// query under the named style and returns a NULL-terminated array of
// matching lines. Returns NULL on a null or invalid argument, or an empty
// (single-NULL) array if the search completed but found nothing.
//
//export pwdx_find_lines_in_index_collection
func pwdx_find_lines_in_index_collection(dir, query, styleName *C.char) **C.char {
	if dir == nil || query == nil || styleName == nil {
		pwdxlog.Get().Warn("ffi: received a null pointer for dir, query, or style", "target", logTarget)
		return nil
	}

	style, err := search.ParseStyle(C.GoString(styleName))
	if err != nil {
		pwdxlog.Get().Warn("ffi: unrecognized search style", "target", logTarget, "error", err)
		return nil
	}

	goDir := strings.TrimSpace(C.GoString(dir))
	if goDir == "" {
		pwdxlog.Get().Warn("ffi: received an empty directory", "target", logTarget)
		return nil
	}
	if info, err := os.Stat(goDir); err != nil || !info.IsDir() {
		pwdxlog.Get().Warn("ffi: directory argument is not a directory", "target", logTarget, "dir", goDir)
		return nil
	}

	collection := shard.New(goDir)
	lines, err := collection.FindLinesContaining(C.GoString(query), style)
	if err != nil {
		pwdxlog.Get().Warn("ffi: search failed", "target", logTarget, "error", err)
	}

	result := make([]string, 0, len(lines))
	for line := range lines {
		result = append(result, line)
	}
	return cStringSlice(result)
}

// pwdx_free_string_array releases an array returned by pwdx_indices_of or
// pwdx_find_lines_in_index_collection.
//
//export pwdx_free_string_array
func pwdx_free_string_array(array **C.char) {
	if array == nil {
		return
	}
	for p := array; *p != nil; p = (**C.char)(unsafe.Add(unsafe.Pointer(p), unsafe.Sizeof(p))) {
		C.free(unsafe.Pointer(*p))
	}
	C.free(unsafe.Pointer(array))
}

// pwdx_free_string releases a string returned by pwdx_as_search_string.
//
//export pwdx_free_string
func pwdx_free_string(s *C.char) {
	if s == nil {
		return
	}
	C.free(unsafe.Pointer(s))
}

func main() {}
