// Package models contains the JSON shapes returned by the handlers
package models

import "time"

// ObjectInfo represents a stored object with display metadata
type ObjectInfo struct {
	Key           string    `json:"key"`
	Extension     string    `json:"extension,omitempty"`
	Size          int64     `json:"size"`
	FormattedSize string    `json:"formattedSize"`
	LastModified  time.Time `json:"lastModified"`
	Modified      string    `json:"modified"`
	ContentType   string    `json:"contentType,omitempty"`
}

// ObjectPage is one page of a bucket listing
type ObjectPage struct {
	URL         string       `json:"url"`
	Bucket      string       `json:"bucket"`
	Objects     []ObjectInfo `json:"objects"`
	IsTruncated bool         `json:"isTruncated"`
	NextToken   string       `json:"nextToken,omitempty"`
}

// DriveInfo reports the capacity of one disk in the requested unit
type DriveInfo struct {
	Path      string `json:"path"`
	Endpoint  string `json:"endpoint,omitempty"`
	State     string `json:"state"`
	Unit      string `json:"unit"`
	Total     int64  `json:"total"`
	Used      int64  `json:"used"`
	Free      int64  `json:"free"`
	Formatted string `json:"formatted"`
}
