package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Display turns a decoded JSON value into the text shown on the page.
// Strings are shown verbatim and null as nothing; every other value is
// shown as compact JSON.
func Display(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false) // renderers escape for their own medium
	if err := enc.Encode(v); err != nil {
		return fmt.Sprint(v)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
