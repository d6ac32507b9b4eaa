package models

// BinaryPayload is the JSON envelope returned by image endpoints.
// Data is an array of byte values rather than a base64 string, so it is
// decoded into ints and range-checked by the client.
type BinaryPayload struct {
	Data []int `json:"data"`
}

// TextPayload is the JSON envelope returned by text endpoints.
type TextPayload struct {
	Text string `json:"text"`
}
