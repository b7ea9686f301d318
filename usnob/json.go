package usnob

import (
	"encoding/json"
	"os"
)

// DumpJSON renders any decoded value — a Star, a slice of Stars, a
// DecodeStats summary — as a compact JSON string.
func DumpJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DumpJSONIndent renders v as an indented (four-space) JSON string.
func DumpJSONIndent(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// WriteJSONFile writes v to path as indented JSON, creating or
// truncating the file as needed.
func WriteJSONFile(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	return enc.Encode(v)
}
