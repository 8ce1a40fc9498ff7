package session

import (
	"net/http"
)

// HTTPCookieJar reads cookies from the incoming request and writes them on
// the response. Cookies written during the request are visible to later reads.
type HTTPCookieJar struct {
	request *http.Request
	writer  http.ResponseWriter
	written map[string]*http.Cookie
}

func NewHTTPCookieJar(w http.ResponseWriter, r *http.Request) *HTTPCookieJar {
	return &HTTPCookieJar{
		request: r,
		writer:  w,
		written: make(map[string]*http.Cookie),
	}
}

func (j *HTTPCookieJar) Cookie(name string) (string, bool) {
	if cookie, ok := j.written[name]; ok {
		if cookie.MaxAge < 0 || cookie.Value == "" {
			return "", false
		}
		return cookie.Value, true
	}

	cookie, err := j.request.Cookie(name)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func (j *HTTPCookieJar) SetCookie(cookie *http.Cookie) {
	j.written[cookie.Name] = cookie
	http.SetCookie(j.writer, cookie)
}
