package driver

import (
	"github.com/tidwall/gjson"
)

// nextPage reads the pagination envelope of a list response. It returns the
// page number to request next and false once the API reports no further
// pages. Responses without a page_context block are single pages.
func nextPage(body []byte) (int, bool) {
	context := gjson.GetBytes(body, "page_context")
	if !context.Exists() || !context.Get("has_more_page").Bool() {
		return 0, false
	}
	page := context.Get("page").Int()
	if page <= 0 {
		page = 1
	}
	return int(page) + 1, true
}

// extractRecords pulls the record payload out of a response body. A missing
// key or an empty body yields no records; a single object is wrapped so
// detail-shaped endpoints and list endpoints share one path.
func extractRecords(body []byte, recordsPath string) []gjson.Result {
	if len(body) == 0 {
		return nil
	}
	value := gjson.GetBytes(body, recordsPath)
	if !value.Exists() {
		return nil
	}
	if value.IsArray() {
		return value.Array()
	}
	if value.IsObject() {
		return []gjson.Result{value}
	}
	return nil
}
