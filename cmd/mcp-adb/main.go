package main

import (
	"log"
	"os"

	mcpadb "github.com/isseikz/mcp-adb"
)

func main() {
	if err := mcpadb.Run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
