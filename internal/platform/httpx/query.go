package httpx

import (
	"net/http"
	"strconv"
)

// ListParams maps query parameter names to the store setters they drive.
type ListParams map[string]func(value string)

// ApplyListParams calls the setter of every parameter present in the URL and
// reports whether any was applied. "page" is parsed as an integer by
// PageSetter.
func ApplyListParams(r *http.Request, params ListParams) bool {
	values := r.URL.Query()
	applied := false
	for name, set := range params {
		if !values.Has(name) {
			continue
		}
		set(values.Get(name))
		applied = true
	}
	return applied
}

// PageSetter adapts an int setter; unparseable input selects page 1.
func PageSetter(set func(int)) func(string) {
	return func(raw string) {
		page, err := strconv.Atoi(raw)
		if err != nil {
			page = 1
		}
		set(page)
	}
}

// SafeReturn returns target when it is a local absolute path, else fallback.
func SafeReturn(target, fallback string) string {
	if len(target) > 1 && target[0] == '/' && target[1] != '/' && target[1] != '\\' {
		return target
	}
	if target == "/" {
		return target
	}
	return fallback
}
