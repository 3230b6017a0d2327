package preset_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/aegispass/aegispass/preset"
)

// ExampleDecode parses a preset from JSON configuration data.
func ExampleDecode() {
	doc := `{
	  "name": "Work",
	  "version": 1,
	  "hashAlgorithm": "argon2id",
	  "rngAlgorithm": "hc128",
	  "shuffleAlgorithm": "fisherYates",
	  "length": 20,
	  "platformId": "corp.example",
	  "charsets": ["abcdef", "012345"]
	}`

	p, err := preset.Decode(strings.NewReader(doc))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(p.Name, p.HashAlgorithm, p.Length)
	// Output: Work argon2id 20
}

// ExampleDefault shows the stock preset used when no file is supplied.
func ExampleDefault() {
	p := preset.Default()
	fmt.Println(p.HashAlgorithm, p.RNGAlgorithm, p.Length, len(p.Charsets))
	// Output: sha256 chaCha20 16 4
}
