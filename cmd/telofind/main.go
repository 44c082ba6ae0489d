// cmd/telofind/main.go
package main

import (
	"telofind/internal/app"
	"telofind/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
