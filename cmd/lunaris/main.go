package main

import (
	"context"
	"os"

	// Embedded zone database, so --tz works on hosts without one.
	_ "time/tzdata"

	"github.com/agbru/lunaris/internal/app"
)

func main() {
	application := app.New()
	exitCode := application.Run(context.Background(), os.Args[1:])
	os.Exit(exitCode)
}
