package qfxconvert

import (
	"encoding/json"
	"io/ioutil"
)

// WriteJSON writes a single JSON document with a transactions array and,
// only when position records exist, a positions array. Pretty output uses
// 2-space indentation, compact output is a single line.
func WriteJSON(path string, transactions, positions []Record, compact bool) error {
	doc := map[string]interface{}{"transactions": transactions}
	if len(positions) > 0 {
		doc["positions"] = positions
	}
	var (
		data []byte
		err  error
	)
	if compact {
		data, err = json.Marshal(doc)
	} else {
		data, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, data, 0644)
}
