package main

import (
	"context"
	"log"
	"os"

	"github.com/smallyu/go-ecdsa/internal/command"
)

func main() {
	if err := command.App().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
