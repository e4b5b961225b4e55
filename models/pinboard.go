package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Pinboard literals and limits.
const (
	PinboardLiteralYes   = "yes"
	PinboardLiteralNo    = "no"
	PinboardTagSeparator = " "

	// PinboardResultDone is the result code of a successful mutation.
	PinboardResultDone = "done"
	// PinboardResultItemAlreadyExists is returned by posts/add without replace.
	PinboardResultItemAlreadyExists = "item already exists"
	// PinboardResultMissingURL is returned when the url is not known.
	PinboardResultMissingURL = "missing url"
)

// PinboardPost is a post as returned by posts/all and posts/get.
type PinboardPost struct {
	Href        string `json:"href"`
	Description string `json:"description"`
	Extended    string `json:"extended,omitempty"`
	Hash        string `json:"hash"`
	Time        string `json:"time"`
	Shared      string `json:"shared"`
	ToRead      string `json:"toread,omitempty"`
	Tags        string `json:"tags"`
}

// PinboardUpdate is the posts/update response.
type PinboardUpdate struct {
	UpdateTime string `json:"update_time"`
}

// PinboardGenericResponse carries the result of mutating endpoints.
// posts/* answer with result_code, tags/* with result.
type PinboardGenericResponse struct {
	ResultCode string `json:"result_code,omitempty"`
	Result     string `json:"result,omitempty"`
}

// Code returns whichever of the two result fields is set.
func (r PinboardGenericResponse) Code() string {
	if r.ResultCode != "" {
		return r.ResultCode
	}
	return r.Result
}

// PinboardGetPostResponse is the posts/get response.
type PinboardGetPostResponse struct {
	Date  string         `json:"date"`
	User  string         `json:"user"`
	Posts []PinboardPost `json:"posts"`
}

// PinboardAddRequest holds the posts/add query parameters.
// Empty optional values are not sent.
type PinboardAddRequest struct {
	URL         string
	Title       string
	Description string
	Shared      string
	ToRead      string
	Tags        string
	Replace     string
}

// PinboardTagCount is a usage count from tags/get. The API sends it either
// as a JSON number or as a numeric string.
type PinboardTagCount int

func (c *PinboardTagCount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*c = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid tag count %s: %w", data, err)
	}
	*c = PinboardTagCount(n)
	return nil
}
