package main

import (
	"os"

	"masterg.app/glot/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:]))
}
