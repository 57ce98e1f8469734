package main

import (
	"github.com/tarantool/permrank/internal/permrank/app"
)

var (
	version string
)

func main() {
	application := app.NewApp(version)
	application.Run()
}
