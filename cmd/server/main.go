package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fuzumoe/alarm-service/internal/app"
)

// @title       Alarm Service API
// @version     1.0
// @description User accounts with paginated listing.
// @BasePath    /api/v1

// run is a variable so it can be overridden in tests.
var run = app.Run

// exitFunc is a variable wrapping os.Exit so it can be overridden in tests.
var exitFunc = os.Exit

func main() {
	if err := run(); err != nil {
		log.Printf("error: %v", err)
		exitFunc(1)
		return
	}
	fmt.Println("Server shut down cleanly")
}
