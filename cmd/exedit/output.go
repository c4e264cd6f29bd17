package main

import (
	"encoding/json"
	"os"
)

// jsonPrint writes v to stdout as indented JSON.
func jsonPrint(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
