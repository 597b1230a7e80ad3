package util

import (
	"encoding/json"
	"net/url"
)

func IsJSON(str string) bool {
	var js json.RawMessage
	return json.Unmarshal([]byte(str), &js) == nil
}

func IsValidURL(addr string) bool {
	u, err := url.ParseRequestURI(addr)
	if err != nil {
		return false
	}
	return len(u.Scheme) > 0 && len(u.Host) > 0
}

// ArgAt returns args[i], or an empty string when fewer arguments were given.
func ArgAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
