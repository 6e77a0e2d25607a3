package main

import (
	"os"

	"github.com/campuslaf/laf-backend/lafservice"
)

func main() {
	if err := lafservice.Run(); err != nil {
		os.Exit(1)
	}
}
