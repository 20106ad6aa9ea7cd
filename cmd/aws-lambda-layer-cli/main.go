package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/lambdalayer/aws-lambda-layer-cli/internal/cli"
)

func main() {
	log.SetFlags(0)
	if err := cli.Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Err != nil {
				fmt.Fprintln(os.Stderr, exitErr.Err)
			}
			os.Exit(exitErr.Code)
		}
		log.Fatal(err)
	}
}
