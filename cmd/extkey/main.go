// extkey prints a fresh manifest.json "key" value and the Chrome extension
// ID it pins, for wiring into the extension manifest before publishing.
package main

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"os"
)

func main() {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generating key: %v\n", err)
		os.Exit(1)
	}

	pubDER, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "encoding public key: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("NEW_KEY=%s\n", base64.StdEncoding.EncodeToString(pubDER))
	fmt.Printf("NEW_ID=%s\n", extensionID(pubDER))
}

// extensionID derives the Chrome extension ID: the first 16 bytes of the
// SHA-256 of the DER public key, each nibble mapped onto 'a'..'p'.
func extensionID(pubDER []byte) string {
	hash := sha256.Sum256(pubDER)

	id := make([]byte, 0, 32)
	for _, b := range hash[:16] {
		id = append(id, 'a'+(b>>4), 'a'+(b&0x0f))
	}
	return string(id)
}
