package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// Prints a bcrypt hash for the given password, for migrating legacy
// plaintext accounts by hand.
func main() {
	password := "dbsismovil2026"
	if len(os.Args) > 1 {
		password = os.Args[1]
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(h))
}
